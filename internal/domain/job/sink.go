package job

import (
	"context"

	"github.com/jobpulse/jobpulse/internal/domain"
)

// Sink receives the deduplicated batch of one ingestion run
type Sink interface {
	Store(ctx context.Context, jobs []domain.Job) error
}
