// Package sink provides destinations for ingested job batches.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jobpulse/jobpulse/internal/domain"
	"github.com/jobpulse/jobpulse/internal/domain/job"
)

// NDJSON writes each job as a single JSON object per line, append-only.
type NDJSON struct {
	w io.Writer
}

// NewNDJSON builds a sink writing to w
func NewNDJSON(w io.Writer) *NDJSON {
	return &NDJSON{w: w}
}

// Store appends the batch to the underlying writer
func (s *NDJSON) Store(_ context.Context, jobs []domain.Job) error {
	enc := json.NewEncoder(s.w)
	for _, j := range jobs {
		if err := enc.Encode(j); err != nil {
			return fmt.Errorf("sink: encode job %s: %w", j.ExternalID, err)
		}
	}
	return nil
}

var _ job.Sink = (*NDJSON)(nil)
