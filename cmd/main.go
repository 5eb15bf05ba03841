package main

import (
	"fmt"

	"github.com/katiamach/humidity-dashboard/internal/api"
	"github.com/katiamach/humidity-dashboard/internal/config"
	"github.com/katiamach/humidity-dashboard/internal/logger"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	err = logger.SetLevel(cfg.LogLevel)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to set log level: %v", err))
	}

	err = api.RunAPI(cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run humidity dashboard: %v", err))
	}
}
