package francetravail

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokenEndpoint fakes the OAuth2 exchange and numbers the tokens it hands
// out so tests can tell a cached token from a fresh one.
type tokenEndpoint struct {
	*httptest.Server
	requests int
}

func newTokenEndpoint(t *testing.T) *tokenEndpoint {
	t.Helper()
	ep := &tokenEndpoint{}
	ep.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ep.requests++
		if r.PostFormValue("client_id") == "" || r.PostFormValue("client_secret") == "" {
			http.Error(w, "credentials must be sent in the request body", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"token-%d","token_type":"Bearer","expires_in":1499}`, ep.requests)
	}))
	t.Cleanup(ep.Close)
	return ep
}

func newTestLease(t *testing.T, tokenURL string) *TokenLease {
	t.Helper()
	lease, err := NewTokenLease("id", "secret", tokenURL, []string{"api_offresdemploiv2"})
	require.NoError(t, err)
	return lease
}

func TestNewTokenLease_RequiresCredentials(t *testing.T) {
	_, err := NewTokenLease("", "secret", DefaultTokenURL, nil)
	assert.Error(t, err)

	_, err = NewTokenLease("id", "", DefaultTokenURL, nil)
	assert.Error(t, err)
}

func TestTokenLease_ExchangesAndCaches(t *testing.T) {
	ep := newTokenEndpoint(t)
	lease := newTestLease(t, ep.URL)

	tok, err := lease.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", tok)

	tok, err = lease.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-1", tok, "second call must serve the cached token")
	assert.Equal(t, 1, ep.requests)
}

func TestTokenLease_RefreshesNearExpiry(t *testing.T) {
	ep := newTokenEndpoint(t)
	lease := newTestLease(t, ep.URL)

	_, err := lease.Token(context.Background())
	require.NoError(t, err)

	// The endpoint grants 1499s. Just inside the margin the cache still
	// holds; past it the lease exchanges again.
	lease.now = func() time.Time { return time.Now().Add(1499*time.Second - expiryMargin - 5*time.Second) }
	_, err = lease.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, ep.requests)

	lease.now = func() time.Time { return time.Now().Add(1499 * time.Second) }
	tok, err := lease.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", tok)
	assert.Equal(t, 2, ep.requests)
}

func TestTokenLease_InvalidateForcesExchange(t *testing.T) {
	ep := newTokenEndpoint(t)
	lease := newTestLease(t, ep.URL)

	_, err := lease.Token(context.Background())
	require.NoError(t, err)

	lease.Invalidate()

	tok, err := lease.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-2", tok)
	assert.Equal(t, 2, ep.requests)
}

func TestTokenLease_EndpointRejectionIsAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_client", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	lease := newTestLease(t, srv.URL)

	_, err := lease.Token(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindAuth, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestTokenLease_MissingTokenIsAuthError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"token_type":"Bearer","expires_in":1499}`)
	}))
	t.Cleanup(srv.Close)

	lease := newTestLease(t, srv.URL)

	_, err := lease.Token(context.Background())
	require.Error(t, err)
	assert.Equal(t, KindAuth, Classify(err))
}
