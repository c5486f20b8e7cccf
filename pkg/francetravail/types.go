package francetravail

import (
	"context"
	"net/http"
	"time"

	"github.com/jobpulse/jobpulse/pkg/logging"
	"github.com/jobpulse/jobpulse/pkg/resilience"
)

// Config defines France Travail API client settings. Only ClientID and
// ClientSecret are required; zero values fall back to documented defaults.
type Config struct {
	ClientID     string
	ClientSecret string
	Scopes       []string
	TokenURL     string
	BaseURL      string
	HTTPClient   *http.Client
	PageSize     int

	MaxRetryAttempts    int
	RetryDelay          time.Duration
	BreakerThreshold    int
	BreakerResetTimeout time.Duration
	DisableBreaker      bool

	Logger *logging.Logger
}

// Client queries the France Travail "offres d'emploi" API. It refreshes its
// OAuth2 token as needed, retries transient failures with exponential
// backoff and stops calling the upstream while its circuit breaker is open.
// A Client is not safe for concurrent use.
type Client struct {
	baseURL          string
	httpClient       *http.Client
	lease            *TokenLease
	breaker          *resilience.Breaker
	backoff          resilience.Backoff
	maxRetryAttempts int
	pageSize         int
	log              *logging.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// SearchParams describe an offer search request.
type SearchParams struct {
	Keywords   string
	Department string
}

type searchResponse struct {
	Results []Offer `json:"resultats"`
}

// Offer is a raw posting as returned by the search endpoint.
type Offer struct {
	ID           string    `json:"id"`
	Title        string    `json:"intitule"`
	Description  string    `json:"description"`
	CreatedAt    string    `json:"dateCreation"`
	Company      Company   `json:"entreprise"`
	Workplace    Workplace `json:"lieuTravail"`
	Salary       Salary    `json:"salaire"`
	ContractType string    `json:"typeContrat"`
	Experience   string    `json:"experienceExige"`
	Origin       Origin    `json:"origineOffre"`
}

// Company names the hiring organization.
type Company struct {
	Name string `json:"nom"`
}

// Workplace locates an offer. Label is free text such as "33 - BORDEAUX".
type Workplace struct {
	Label      string `json:"libelle"`
	PostalCode string `json:"codePostal"`
	Commune    string `json:"commune"`
}

// Salary carries the upstream free-text salary description.
type Salary struct {
	Label string `json:"libelle"`
}

// Origin links back to the posting on the source site.
type Origin struct {
	URL string `json:"urlOrigine"`
}
