package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/humidity-dashboard/internal/aligner"
	"github.com/katiamach/humidity-dashboard/internal/client"
	"github.com/katiamach/humidity-dashboard/internal/config"
	"github.com/katiamach/humidity-dashboard/internal/logger"
	"github.com/katiamach/humidity-dashboard/internal/service"
	"github.com/katiamach/humidity-dashboard/internal/transport/rest/handler"
)

// RunAPI runs the humidity dashboard API.
func RunAPI(cfg config.Config) error {
	router, err := NewRouter(cfg)
	if err != nil {
		return err
	}

	logger.Info(fmt.Sprintf("Starting humidity dashboard at port %s", cfg.Port))

	return http.ListenAndServe(":"+cfg.Port, router)
}

// NewRouter wires the dashboard handlers and middleware for the given config.
func NewRouter(cfg config.Config) (http.Handler, error) {
	labels := aligner.DefaultLabels()
	if cfg.LabelsFile != "" {
		overrides, err := aligner.LoadLabels(cfg.LabelsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load display labels: %w", err)
		}
		labels = labels.Merge(overrides)
		logger.Infof("Loaded %d display labels from %s", len(overrides), cfg.LabelsFile)
	}

	a := aligner.New(aligner.Options{
		SortByGeography: cfg.SortByGeography,
		Labels:          labels,
	})
	svc := service.New(client.New(cfg.ReadingsURL, nil), a, cfg.Locale)
	server := handler.NewDashboardServer(svc, cfg.ClockInterval)

	r := mux.NewRouter()

	r.HandleFunc("/", server.GetDashboardPageHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/readings", server.GetReadingsHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/chart", server.GetChartHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/markers", server.GetMarkersHandler).Methods(http.MethodGet)
	r.HandleFunc("/api/clock", server.ClockStreamHandler).Methods(http.MethodGet)

	options := setupCorsOptions(cfg.Origin)
	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(handlers.CORS(options...)(r)), nil
}
