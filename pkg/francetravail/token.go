package francetravail

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// expiryMargin is subtracted from token lifetimes so a token is refreshed
// slightly before the server would reject it.
const expiryMargin = 30 * time.Second

// TokenLease caches an OAuth2 client-credentials token and re-exchanges
// credentials when the cached one nears expiry. A 401 from the API is
// reported back through Invalidate, which discards the cache regardless of
// the recorded expiry. Not safe for concurrent use.
type TokenLease struct {
	conf       *clientcredentials.Config
	httpClient *http.Client
	now        func() time.Time
	current    *oauth2.Token
}

// NewTokenLease validates the credentials and prepares the exchange. The
// France Travail token endpoint expects client_id and client_secret in the
// request body, not in a Basic auth header.
func NewTokenLease(clientID, clientSecret, tokenURL string, scopes []string) (*TokenLease, error) {
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("francetravail: client id and client secret are required")
	}
	return &TokenLease{
		conf: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		now: time.Now,
	}, nil
}

// Token returns a valid access token, exchanging credentials when the
// cached one is missing or about to expire. Failures surface as KindAuth.
func (l *TokenLease) Token(ctx context.Context) (string, error) {
	if l.valid() {
		return l.current.AccessToken, nil
	}
	if l.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, l.httpClient)
	}
	tok, err := l.conf.Token(ctx)
	if err != nil {
		return "", authError(err)
	}
	if tok.AccessToken == "" {
		return "", &APIError{Kind: KindAuth, Message: "token endpoint returned an empty access token"}
	}
	l.current = tok
	return tok.AccessToken, nil
}

// Invalidate discards the cached token so the next Token call re-exchanges
// credentials.
func (l *TokenLease) Invalidate() {
	l.current = nil
}

func (l *TokenLease) valid() bool {
	if l.current == nil || l.current.AccessToken == "" {
		return false
	}
	if l.current.Expiry.IsZero() {
		return true
	}
	return l.now().Add(expiryMargin).Before(l.current.Expiry)
}

func authError(err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return &APIError{
			Kind:    KindAuth,
			Status:  retrieveErr.Response.StatusCode,
			Message: strings.TrimSpace(string(retrieveErr.Body)),
			Err:     err,
		}
	}
	return &APIError{Kind: KindAuth, Message: "token exchange failed", Err: err}
}
