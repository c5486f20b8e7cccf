package job

import (
	"context"

	"github.com/jobpulse/jobpulse/internal/domain"
)

// Provider represents an external source of normalized jobs (France
// Travail, other labor-market APIs, fixtures in tests)
type Provider interface {
	// e.g. "france-travail"
	Name() string

	// Fetch returns normalized jobs for one ingestion run. Connectors
	// absorb their own upstream failures and report them through logs,
	// so Fetch never fails: on unrecoverable trouble it returns whatever
	// was collected, possibly nothing.
	Fetch(ctx context.Context) []domain.Job
}
