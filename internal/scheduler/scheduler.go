// Package scheduler wires up the cron loop that periodically triggers an
// ingestion run.
package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/jobpulse/jobpulse/internal/domain/job"
	"github.com/jobpulse/jobpulse/pkg/logging"
)

// Scheduler wraps robfig/cron and manages the ingestion loop.
type Scheduler struct {
	cron *cron.Cron
	svc  job.Service
	spec string // cron spec, e.g. "@every 6h"
	log  *logging.Logger
}

// New creates a Scheduler firing on the given cron spec.
func New(svc job.Service, spec string, log *logging.Logger) *Scheduler {
	if log == nil {
		log = logging.NewNop()
	}
	return &Scheduler{
		cron: cron.New(),
		svc:  svc,
		spec: spec,
		log:  log.Named("scheduler"),
	}
}

// Start registers the job and starts the loop. Also runs one ingestion
// immediately so output exists without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduler: register ingestion job: %w", err)
	}

	s.cron.Start()
	s.log.Info("ingestion schedule started", "spec", s.spec)

	go s.runOnce(ctx)

	return nil
}

// Shutdown stops the loop, waiting for an in-flight run to finish or the
// context to expire.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
		s.log.Info("ingestion schedule stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler: stop: %w", ctx.Err())
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	report, err := s.svc.Ingest(ctx)
	if err != nil {
		s.log.Error("ingestion run failed", "run_id", report.RunID, "error", err)
		return
	}
	s.log.Info("ingestion run complete",
		"run_id", report.RunID,
		"fetched", report.Fetched,
		"stored", report.Stored,
		"duration", report.FinishedAt.Sub(report.StartedAt),
	)
}
