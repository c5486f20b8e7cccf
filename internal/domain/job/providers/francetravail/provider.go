package francetravail

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jobpulse/jobpulse/internal/domain"
	jobdomain "github.com/jobpulse/jobpulse/internal/domain/job"
	"github.com/jobpulse/jobpulse/internal/normalize"
	ftapi "github.com/jobpulse/jobpulse/pkg/francetravail"
	"github.com/jobpulse/jobpulse/pkg/logging"
	"github.com/jobpulse/jobpulse/pkg/resilience"
)

const defaultMaxResults = 150

// searchClient describes the subset of the France Travail client used by the connector.
type searchClient interface {
	Search(ctx context.Context, params ftapi.SearchParams, maxResults int) ([]ftapi.Offer, error)
}

// Settings configure what the connector asks the API for.
type Settings struct {
	Keywords          string
	Department        string
	DefaultMaxResults int
}

// Connector implements job.Provider using the France Travail API
type Connector struct {
	client     searchClient
	normalizer *normalize.Normalizer
	params     ftapi.SearchParams
	defaultMax int
	log        *logging.Logger
}

// NewConnector builds a France Travail connector
func NewConnector(client searchClient, normalizer *normalize.Normalizer, settings Settings, log *logging.Logger) (*Connector, error) {
	if client == nil {
		return nil, fmt.Errorf("francetravail connector: client is required")
	}
	if normalizer == nil {
		return nil, fmt.Errorf("francetravail connector: normalizer is required")
	}
	if log == nil {
		log = logging.NewNop()
	}
	defaultMax := settings.DefaultMaxResults
	if defaultMax <= 0 {
		defaultMax = defaultMaxResults
	}
	return &Connector{
		client:     client,
		normalizer: normalizer,
		params: ftapi.SearchParams{
			Keywords:   settings.Keywords,
			Department: settings.Department,
		},
		defaultMax: defaultMax,
		log:        log.Named("francetravail"),
	}, nil
}

// FetchOption adjusts a single FetchJobs run.
type FetchOption func(*fetchSettings)

type fetchSettings struct {
	maxResults int
}

// WithMaxResults overrides how many postings this run asks for. Zero
// requests nothing and yields an empty batch without touching the API.
func WithMaxResults(n int) FetchOption {
	return func(s *fetchSettings) {
		s.maxResults = n
	}
}

// FetchJobs retrieves postings, normalizes them, and reports the outcome
// through logs. Upstream failures never escape: whatever was collected
// before the failure is normalized and returned.
func (c *Connector) FetchJobs(ctx context.Context, opts ...FetchOption) []domain.Job {
	settings := fetchSettings{maxResults: -1}
	for _, opt := range opts {
		opt(&settings)
	}
	limit := settings.maxResults
	if limit < 0 {
		limit = c.defaultMax
	}
	if limit == 0 {
		return nil
	}

	log := c.log.With("run_id", uuid.NewString())

	offers, err := c.client.Search(ctx, c.params, limit)
	if err != nil {
		if errors.Is(err, resilience.ErrCircuitOpen) {
			log.Warn("skipping fetch, circuit breaker is open")
		} else {
			log.Error("fetch aborted, keeping partial results", "error", err, "fetched", len(offers))
		}
	}

	jobs := make([]domain.Job, 0, len(offers))
	var missingID, noTech int
	for _, offer := range offers {
		job, err := c.normalizer.Normalize(offer)
		if err != nil {
			switch {
			case errors.Is(err, normalize.ErrMissingID):
				missingID++
			case errors.Is(err, normalize.ErrNoTechnologies):
				noTech++
			}
			continue
		}
		jobs = append(jobs, job)
	}

	log.Info("fetch complete",
		"fetched", len(offers),
		"normalized", len(jobs),
		"rejected_missing_id", missingID,
		"rejected_no_technologies", noTech,
	)
	return jobs
}

// Fetch implements job.Provider with the configured defaults.
func (c *Connector) Fetch(ctx context.Context) []domain.Job {
	return c.FetchJobs(ctx)
}

// Name returns the source identifier stamped on every job.
func (c *Connector) Name() string {
	return ftapi.SourceName
}

var _ jobdomain.Provider = (*Connector)(nil)
