package job

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jobpulse/jobpulse/internal/domain"
)

// Service runs ingestion over the configured providers.
type Service interface {
	Ingest(ctx context.Context) (domain.IngestReport, error)
}

// Option configures Service
type Option func(*config)

type config struct {
	providers []Provider
	sink      Sink
	clock     func() time.Time
}

// WithProviders sets the job sources
func WithProviders(providers ...Provider) Option {
	return func(c *config) {
		c.providers = providers
	}
}

// WithSink sets where ingested jobs are delivered
func WithSink(sink Sink) Option {
	return func(c *config) {
		c.sink = sink
	}
}

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(c *config) {
		c.clock = clock
	}
}

// NewService builds Service from options
func NewService(opts ...Option) (Service, error) {
	cfg := &config{
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.sink == nil {
		return nil, fmt.Errorf("job.Service: sink is required")
	}
	if len(cfg.providers) == 0 {
		return nil, fmt.Errorf("job.Service: at least one provider is required")
	}

	return &service{
		providers: cfg.providers,
		sink:      cfg.sink,
		clock:     cfg.clock,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies (Wire-compatible)
func NewServiceWithDeps(sink Sink, providers []Provider) (Service, error) {
	if sink == nil {
		return nil, fmt.Errorf("job.Service: sink is required")
	}
	if len(providers) == 0 {
		return nil, fmt.Errorf("job.Service: at least one provider is required")
	}

	return &service{
		providers: providers,
		sink:      sink,
		clock:     time.Now,
	}, nil
}

type service struct {
	providers []Provider
	sink      Sink
	clock     func() time.Time
}

// Ingest collects jobs from every provider in turn, drops records without
// a {source, external id} key, deduplicates on that key keeping the first
// occurrence, and hands the batch to the sink in upstream order. Records
// missing an id or fetch timestamp are stamped here so providers do not
// each reinvent that.
func (s *service) Ingest(ctx context.Context) (domain.IngestReport, error) {
	started := s.clock()

	report := domain.IngestReport{
		RunID:     uuid.NewString(),
		StartedAt: started,
	}

	type key struct {
		source     string
		externalID string
	}
	seen := make(map[key]struct{})
	var batch []domain.Job

	for _, p := range s.providers {
		jobs := p.Fetch(ctx)
		report.Sources = append(report.Sources, domain.SourceReport{
			Source:  p.Name(),
			Fetched: len(jobs),
		})
		report.Fetched += len(jobs)

		for _, j := range jobs {
			if j.Source == "" || j.ExternalID == "" {
				continue
			}
			k := key{source: j.Source, externalID: j.ExternalID}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}

			if j.ID == uuid.Nil {
				j.ID = uuid.New()
			}
			if j.FetchedAt.IsZero() {
				j.FetchedAt = started
			}
			batch = append(batch, j)
		}
	}

	if len(batch) > 0 {
		if err := s.sink.Store(ctx, batch); err != nil {
			return report, fmt.Errorf("job.Service: store batch: %w", err)
		}
	}

	report.Stored = len(batch)
	report.FinishedAt = s.clock()
	return report, nil
}
