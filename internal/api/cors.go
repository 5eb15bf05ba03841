package api

import (
	"github.com/gorilla/handlers"
)

func setupCorsOptions(origin string) []handlers.CORSOption {
	methods := handlers.AllowedMethods([]string{"GET", "OPTIONS"})
	headers := handlers.AllowedHeaders([]string{"Content-Type"})

	options := []handlers.CORSOption{methods, headers}
	if origin != "" {
		options = append(options, handlers.AllowedOrigins([]string{origin}))
	}

	return options
}
