package domain

import (
	"time"

	"github.com/google/uuid"
)

// JobID uniquely identifies a stored job
type JobID = uuid.UUID

// Job is the normalized job posting entity. Pointer fields stay nil when
// the upstream gave nothing usable and serialize as JSON null rather than
// a fabricated zero.
type Job struct {
	ID          JobID  `json:"id"`
	Source      string `json:"source"`
	ExternalID  string `json:"externalId"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`

	// Technologies is never empty: records without a recognizable
	// technology are rejected during normalization.
	Technologies []string `json:"technologies"`

	Location        string `json:"location"`
	RegionID        *int   `json:"regionId"`
	SalaryMinKEuros *int   `json:"salaryMinKEuros"`
	SalaryMaxKEuros *int   `json:"salaryMaxKEuros"`

	// ExperienceLevel is carried for downstream schema compatibility but
	// is always nil: the upstream's required-experience flag does not
	// reliably describe seniority.
	ExperienceLevel *string `json:"experienceLevel"`

	SourceURL string    `json:"sourceUrl"`
	PostedAt  time.Time `json:"postedAt"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// IngestReport summarizes one ingestion run
type IngestReport struct {
	RunID      string         `json:"runId"`
	Sources    []SourceReport `json:"sources"`
	Fetched    int            `json:"fetched"`
	Stored     int            `json:"stored"`
	StartedAt  time.Time      `json:"startedAt"`
	FinishedAt time.Time      `json:"finishedAt"`
}

// SourceReport counts what one provider contributed to a run
type SourceReport struct {
	Source  string `json:"source"`
	Fetched int    `json:"fetched"`
}
