// Package main - Entry point for the webdev-cost API server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	"webdev-cost/adapters/pdf"
	"webdev-cost/api"
	"webdev-cost/internal/config"
	"webdev-cost/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgFile := flag.String("config", "", "config file")
	addr := flag.String("addr", "", "server address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	cfg.Logging.Format = "json"
	if cfg.Logging.Level == "warn" {
		cfg.Logging.Level = "info"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := api.NewServer(api.Options{
		Version:        version,
		Report:         cfg.Report.Options,
		ReportFilename: filepath.Base(cfg.Report.OutputPath),
		Renderer:       pdf.New(),
		Logger:         logging.Logger,
	})

	if err := server.ListenAndServe(ctx, cfg.Server.Addr); err != nil {
		logging.Error("server failed", zap.Error(err))
		os.Exit(1)
	}
}
