// Package resilience provides the retry-delay policy and circuit breaker
// guarding calls to rate-limited upstream APIs.
package resilience

import "time"

// Backoff defaults, applied when the corresponding field is zero.
const (
	DefaultBackoffBase = 1 * time.Second
	DefaultBackoffMax  = 30 * time.Second
)

// Backoff computes how long to wait before retrying a failed call. The delay
// doubles with each attempt and is capped at Max. A server-supplied hint
// (Retry-After) raises the result and is honored even beyond the cap.
type Backoff struct {
	Base time.Duration
	Max  time.Duration
}

// Delay returns the wait before the next retry. attempt is zero-based:
// Delay(0, …) follows the first failed call. hint is the upstream
// Retry-After value, or zero when the response carried none.
func (b Backoff) Delay(attempt int, hint time.Duration) time.Duration {
	base := b.Base
	if base <= 0 {
		base = DefaultBackoffBase
	}
	ceil := b.Max
	if ceil <= 0 {
		ceil = DefaultBackoffMax
	}

	d := base
	for i := 0; i < attempt && d < ceil; i++ {
		d *= 2
	}
	if d > ceil {
		d = ceil
	}
	if hint > d {
		d = hint
	}
	return d
}
