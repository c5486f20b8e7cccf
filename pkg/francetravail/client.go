// Package francetravail implements a resilient client for the France
// Travail "offres d'emploi" API: OAuth2 client-credentials token handling,
// offset-range pagination, retry with backoff, rate-limit hints and a
// circuit breaker guarding a flaky upstream.
package francetravail

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/jobpulse/jobpulse/pkg/logging"
	"github.com/jobpulse/jobpulse/pkg/resilience"
)

const (
	// DefaultBaseURL is the offres d'emploi API root.
	DefaultBaseURL = "https://api.francetravail.io/partenaire/offresdemploi"
	// DefaultTokenURL is the OAuth2 client-credentials endpoint.
	DefaultTokenURL = "https://entreprise.francetravail.fr/connexion/oauth2/access_token?realm=%2Fpartenaire"

	// SourceName identifies this upstream in normalized jobs.
	SourceName = "france-travail"

	// maxPageSize is the upstream's hard cap on one range request.
	maxPageSize = 150

	defaultPageSize         = 150
	defaultMaxRetryAttempts = 3
)

var defaultScopes = []string{"api_offresdemploiv2", "o2dsoffre"}

// NewClient instantiates a France Travail API client.
func NewClient(cfg Config) (*Client, error) {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = DefaultTokenURL
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = defaultScopes
	}

	lease, err := NewTokenLease(cfg.ClientID, cfg.ClientSecret, tokenURL, scopes)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	lease.httpClient = httpClient

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	attempts := cfg.MaxRetryAttempts
	if attempts <= 0 {
		attempts = defaultMaxRetryAttempts
	}

	log := cfg.Logger
	if log == nil {
		log = logging.NewNop()
	}

	var breakerOpts []resilience.BreakerOption
	if cfg.DisableBreaker {
		breakerOpts = append(breakerOpts, resilience.Disabled())
	}

	return &Client{
		baseURL:          baseURL,
		httpClient:       httpClient,
		lease:            lease,
		breaker:          resilience.NewBreaker(cfg.BreakerThreshold, cfg.BreakerResetTimeout, breakerOpts...),
		backoff:          resilience.Backoff{Base: cfg.RetryDelay},
		maxRetryAttempts: attempts,
		pageSize:         pageSize,
		log:              log,
		now:              time.Now,
		sleep:            sleepContext,
	}, nil
}

// Search pages through offers matching params until maxResults offers are
// collected or the upstream reports no more data. Pages are fetched
// strictly sequentially. Offers collected before a terminal failure are
// returned alongside the error.
func (c *Client) Search(ctx context.Context, params SearchParams, maxResults int) ([]Offer, error) {
	if c == nil {
		return nil, fmt.Errorf("francetravail: client is nil")
	}
	if maxResults <= 0 {
		return nil, nil
	}

	var offers []Offer
	for len(offers) < maxResults {
		count := c.pageSize
		if remaining := maxResults - len(offers); remaining < count {
			count = remaining
		}

		page, err := c.searchPage(ctx, params, len(offers), count)
		if err != nil {
			return offers, err
		}
		if len(page) == 0 {
			break
		}
		offers = append(offers, page...)
	}

	if len(offers) > maxResults {
		offers = offers[:maxResults]
	}
	return offers, nil
}

// searchPage fetches one page, retrying per the failure classification. A
// 401 forces one token refresh and an immediate retry of the same page; a
// second 401 is terminal. Retryable failures back off up to the attempt
// ceiling, other failures return immediately.
func (c *Client) searchPage(ctx context.Context, params SearchParams, offset, count int) ([]Offer, error) {
	attempt := 0
	refreshed := false
	for {
		if err := c.breaker.Allow(); err != nil {
			c.log.Warn("circuit breaker rejected page fetch", "offset", offset)
			return nil, err
		}

		page, err := c.fetchPage(ctx, params, offset, count)
		if err == nil {
			c.breaker.RecordSuccess()
			return page, nil
		}
		c.breaker.RecordFailure()

		if ctx.Err() != nil {
			return nil, err
		}

		kind := Classify(err)
		if kind == KindAuth {
			if refreshed {
				c.log.Error("credential rejected again after refresh", "offset", offset, "error", err)
				return nil, err
			}
			refreshed = true
			c.lease.Invalidate()
			c.log.Warn("credential rejected, forcing token refresh", "offset", offset)
			continue
		}
		if !kind.Retryable() {
			return nil, err
		}
		if attempt >= c.maxRetryAttempts {
			c.log.Error("page fetch retries exhausted", "offset", offset, "attempts", attempt, "error", err)
			return nil, err
		}

		delay := c.backoff.Delay(attempt, retryAfterHint(err))
		c.log.Warn("page fetch failed, backing off",
			"offset", offset, "attempt", attempt, "kind", kind.String(), "delay", delay, "error", err)
		attempt++
		if err := c.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// fetchPage performs one bounded call to the search endpoint. A 204 means
// the range is past the end of the data and yields an empty page.
func (c *Client) fetchPage(ctx context.Context, params SearchParams, offset, count int) ([]Offer, error) {
	token, err := c.lease.Token(ctx)
	if err != nil {
		return nil, err
	}

	u, err := c.searchURL(params, offset, count)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("francetravail: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindNetwork, Message: "request failed", Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{
			Kind:    statusKind(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(body)),
		}
		if apiErr.Kind == KindRateLimit {
			apiErr.RetryAfter = parseRetryAfter(resp.Header.Get("Retry-After"), c.now())
		}
		return nil, apiErr
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &APIError{Kind: KindServer, Status: resp.StatusCode, Message: "decode response", Err: err}
	}
	return payload.Results, nil
}

func (c *Client) searchURL(params SearchParams, offset, count int) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("francetravail: parse base url: %w", err)
	}

	u.Path = path.Join(u.Path, "v2", "offres", "search")

	values := url.Values{}
	if params.Keywords != "" {
		values.Set("motsCles", params.Keywords)
	}
	if params.Department != "" {
		values.Set("departement", params.Department)
	}
	values.Set("range", fmt.Sprintf("%d-%d", offset, offset+count-1))

	u.RawQuery = values.Encode()
	return u.String(), nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
