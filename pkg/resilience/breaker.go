package resilience

import (
	"errors"
	"time"
)

// ErrCircuitOpen is returned by Allow while the breaker is open. The rejected
// call never reached the network.
var ErrCircuitOpen = errors.New("resilience: circuit breaker is open")

// Breaker defaults, applied when the corresponding constructor argument is
// not positive.
const (
	DefaultBreakerThreshold = 5
	DefaultBreakerReset     = 30 * time.Second
)

// State is the breaker position.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	}
	return "unknown"
}

// Breaker is a consecutive-failure circuit breaker.
//
// Closed counts failures; reaching the threshold opens the breaker. While
// open, Allow rejects every call until the reset interval has elapsed, then
// the breaker turns half-open and admits a single trial call: success closes
// it again, failure re-opens it with a restarted timer. Any success zeroes
// the consecutive-failure count.
//
// A Breaker is not safe for concurrent use. The ingestion connector drives it
// from one sequential call path; callers that share an instance across
// goroutines must synchronize externally.
type Breaker struct {
	threshold  int
	resetAfter time.Duration
	disabled   bool
	now        func() time.Time

	state    State
	failures int
	openedAt time.Time
}

// BreakerOption adjusts breaker construction.
type BreakerOption func(*Breaker)

// WithClock replaces the time source, for deterministic tests.
func WithClock(now func() time.Time) BreakerOption {
	return func(b *Breaker) {
		b.now = now
	}
}

// Disabled builds a breaker that never rejects and never opens.
func Disabled() BreakerOption {
	return func(b *Breaker) {
		b.disabled = true
	}
}

// NewBreaker builds a closed breaker. Non-positive threshold or reset
// interval fall back to the package defaults.
func NewBreaker(threshold int, resetAfter time.Duration, opts ...BreakerOption) *Breaker {
	if threshold <= 0 {
		threshold = DefaultBreakerThreshold
	}
	if resetAfter <= 0 {
		resetAfter = DefaultBreakerReset
	}
	b := &Breaker{
		threshold:  threshold,
		resetAfter: resetAfter,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Allow reports whether a call may proceed. It returns ErrCircuitOpen while
// the breaker is open and the reset interval has not elapsed; once it has,
// the breaker moves to half-open and lets the trial call through.
func (b *Breaker) Allow() error {
	if b.disabled {
		return nil
	}
	if b.state == StateOpen {
		if b.now().Sub(b.openedAt) < b.resetAfter {
			return ErrCircuitOpen
		}
		b.state = StateHalfOpen
	}
	return nil
}

// RecordSuccess closes the breaker and zeroes the failure count.
func (b *Breaker) RecordSuccess() {
	if b.disabled {
		return
	}
	b.state = StateClosed
	b.failures = 0
}

// RecordFailure counts one failed call. Reaching the threshold, or failing
// the half-open trial, opens the breaker and restarts the reset timer.
func (b *Breaker) RecordFailure() {
	if b.disabled {
		return
	}
	b.failures++
	if b.state == StateHalfOpen || b.failures >= b.threshold {
		b.state = StateOpen
		b.openedAt = b.now()
	}
}

// State returns the current breaker position, for logging.
func (b *Breaker) State() State {
	return b.state
}
