package francetravail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Kind classifies a failed API call by how the caller should react.
type Kind int

const (
	// KindClient covers 4xx responses other than 401/429 and anything
	// unrecognized. Never retried.
	KindClient Kind = iota
	// KindNetwork covers transport failures and timeouts.
	KindNetwork
	// KindRateLimit is a 429, carrying the server's Retry-After hint.
	KindRateLimit
	// KindServer covers 5xx responses and unreadable bodies.
	KindServer
	// KindAuth is a rejected credential, handled by the one-shot token
	// refresh rather than general backoff.
	KindAuth
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindAuth:
		return "auth"
	default:
		return "client"
	}
}

// Retryable reports whether another attempt at the same call can
// reasonably succeed.
func (k Kind) Retryable() bool {
	switch k {
	case KindNetwork, KindRateLimit, KindServer:
		return true
	default:
		return false
	}
}

// APIError carries the classification and HTTP detail of a failed call.
type APIError struct {
	Kind       Kind
	Status     int
	RetryAfter time.Duration
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status != 0 {
		return fmt.Sprintf("francetravail: %s error (%d): %s", e.Kind, e.Status, msg)
	}
	return fmt.Sprintf("francetravail: %s error: %s", e.Kind, msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Classify maps an error from a page fetch or token exchange onto the
// closed set of failure kinds. Raw transport errors and deadlines count as
// network failures; anything unrecognized is a client error and is not
// retried.
func Classify(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return KindNetwork
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return KindNetwork
	}
	return KindClient
}

func statusKind(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindAuth
	case status == http.StatusTooManyRequests:
		return KindRateLimit
	case status >= http.StatusInternalServerError:
		return KindServer
	default:
		return KindClient
	}
}

// retryAfterHint extracts the server-provided wait from err, if any.
func retryAfterHint(err error) time.Duration {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.RetryAfter
	}
	return 0
}

// parseRetryAfter reads a Retry-After header value, given either as a
// whole-second count or as an HTTP date.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
