package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/jobpulse/jobpulse/internal/app"
	"github.com/jobpulse/jobpulse/internal/config"
	"github.com/jobpulse/jobpulse/internal/sink"
	"github.com/jobpulse/jobpulse/pkg/logging"
	"github.com/jobpulse/jobpulse/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	out, err := os.OpenFile(cfg.Ingest.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Error("failed to open output file", "path", cfg.Ingest.Output, "err", err)
		os.Exit(1)
	}
	defer func() { _ = out.Close() }()

	application, err := app.InitializeApplication(cfg, logger, sink.NewNDJSON(out))
	if err != nil {
		logger.Error("failed to initialize application", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := application.Scheduler.Start(ctx); err != nil {
		logger.Error("failed to start ingestion schedule", "err", err)
		os.Exit(1)
	}

	logger.Info("ingestion daemon started",
		"schedule", cfg.Ingest.Schedule, "output", cfg.Ingest.Output)

	shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		application.Scheduler,
	)
}
