// Package normalize turns raw France Travail offers into normalized job
// records: technology detection, salary parsing, region resolution and
// deterministic fallbacks for missing fields.
package normalize

import (
	"errors"
	"strings"
	"time"

	"github.com/jobpulse/jobpulse/internal/domain"
	"github.com/jobpulse/jobpulse/internal/region"
	"github.com/jobpulse/jobpulse/pkg/francetravail"
	"github.com/jobpulse/jobpulse/pkg/logging"
)

// Fallbacks for absent upstream fields. Normalized records never carry an
// empty string in these positions.
const (
	fallbackTitle       = "Titre non précisé"
	fallbackCompany     = "Entreprise confidentielle"
	fallbackDescription = "Description non fournie"
	fallbackLocation    = "France"
)

// Rejection reasons for structurally unusable records. Everything else
// degrades to a fallback instead of failing.
var (
	ErrMissingID      = errors.New("normalize: missing id")
	ErrNoTechnologies = errors.New("normalize: no technologies detected")
)

// Normalizer maps raw offers onto domain jobs.
type Normalizer struct {
	regions *region.Resolver
	now     func() time.Time
	log     *logging.Logger
}

// NewNormalizer builds a Normalizer. A nil resolver falls back to the
// built-in region catalog, a nil logger to a no-op one.
func NewNormalizer(regions *region.Resolver, log *logging.Logger) *Normalizer {
	if regions == nil {
		regions = region.NewResolver(nil)
	}
	if log == nil {
		log = logging.NewNop()
	}
	return &Normalizer{regions: regions, now: time.Now, log: log}
}

// Normalize builds a domain job from one raw offer. It returns
// ErrMissingID when the offer has no identifier and ErrNoTechnologies
// when no known technology appears in the title or description; such
// records carry nothing this pipeline can index and are dropped.
func (n *Normalizer) Normalize(offer francetravail.Offer) (domain.Job, error) {
	id := strings.TrimSpace(offer.ID)
	if id == "" {
		return domain.Job{}, ErrMissingID
	}

	techs := DetectTechnologies(offer.Title + " " + offer.Description)
	if len(techs) == 0 {
		return domain.Job{}, ErrNoTechnologies
	}

	minK, maxK := ParseSalary(offer.Salary.Label)

	return domain.Job{
		Source:          francetravail.SourceName,
		ExternalID:      id,
		Title:           fallback(offer.Title, fallbackTitle),
		Company:         fallback(offer.Company.Name, fallbackCompany),
		Description:     fallback(offer.Description, fallbackDescription),
		Technologies:    techs,
		Location:        fallback(offer.Workplace.Label, fallbackLocation),
		RegionID:        n.regions.Resolve(offer.Workplace.PostalCode, offer.Workplace.Label),
		SalaryMinKEuros: minK,
		SalaryMaxKEuros: maxK,
		SourceURL:       offer.Origin.URL,
		PostedAt:        n.postedAt(offer.CreatedAt),
	}, nil
}

func fallback(v, def string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return def
}

// postedAt parses the upstream creation timestamp. Missing, malformed and
// future-dated values all resolve to the current time so no record enters
// storage with a clearly invalid posting date.
func (n *Normalizer) postedAt(raw string) time.Time {
	now := n.now()
	if raw == "" {
		return now
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		n.log.Debug("unparsable creation date", "value", raw)
		return now
	}
	if ts.After(now) {
		return now
	}
	return ts
}
