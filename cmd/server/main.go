// Package main - Entry point for the WiFi estimator server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"wifi-estimator/api"
	"wifi-estimator/core/analytics"
	"wifi-estimator/core/catalog"
	"wifi-estimator/core/portfolio"
	"wifi-estimator/internal/config"
	"wifi-estimator/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", "", "listen address (overrides config)")
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	cat := catalog.Default()
	if cfg.Estimator.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.Estimator.CatalogPath)
		if err != nil {
			logging.Error("failed to load catalog file", zap.Error(err))
			os.Exit(1)
		}
		cat = loaded
	}

	filters := cfg.Portfolio.Filters
	if len(filters) == 0 {
		filters = portfolio.DefaultFilters()
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	apiServer := api.NewServerWith(version, cat, filters, analytics.LogTracker{})

	server := &http.Server{
		Addr:         listen,
		Handler:      apiServer,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	logging.Info("starting wifi-estimator server",
		zap.String("addr", listen),
		zap.String("version", version))

	if err := server.ListenAndServe(); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
