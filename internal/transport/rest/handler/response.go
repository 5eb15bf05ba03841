package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/katiamach/humidity-dashboard/internal/logger"
)

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Code    int
	Message string
}

// respond encodes payload as JSON before touching the response, so an
// encoding failure can still be reported as a 500.
func respond(w http.ResponseWriter, code int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		logger.Error(fmt.Errorf("failed to encode response: %w", err))
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		logger.WithFields(logger.Fields{"status": code}).Errorf("failed to write response: %v", err)
	}
}

func respondErr(w http.ResponseWriter, code int, err error) {
	respond(w, code, errorResponse{Code: code, Message: err.Error()})
}
