package resilience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func failTimes(b *Breaker, n int) {
	for i := 0; i < n; i++ {
		b.RecordFailure()
	}
}

func TestBreaker_OpensAfterThresholdFailures(t *testing.T) {
	clock := newFakeClock()
	b := NewBreaker(3, 30*time.Second, WithClock(clock.Now))

	failTimes(b, 2)
	require.NoError(t, b.Allow(), "below threshold the breaker stays closed")
	assert.Equal(t, StateClosed, b.State())

	b.RecordFailure()
	assert.Equal(t, StateOpen, b.State())
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	b := NewBreaker(3, 30*time.Second)

	failTimes(b, 2)
	b.RecordSuccess()
	failTimes(b, 2)

	assert.NoError(t, b.Allow(), "counter must restart after a success")
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_HalfOpenAfterResetInterval(t *testing.T) {
	clock := newFakeClock()
	b := NewBreaker(3, 30*time.Second, WithClock(clock.Now))

	failTimes(b, 3)
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	clock.Advance(29 * time.Second)
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen, "still open just before the interval elapses")

	clock.Advance(1 * time.Second)
	require.NoError(t, b.Allow(), "reset interval elapsed, one trial is admitted")
	assert.Equal(t, StateHalfOpen, b.State())
}

func TestBreaker_TrialSuccessCloses(t *testing.T) {
	clock := newFakeClock()
	b := NewBreaker(3, 30*time.Second, WithClock(clock.Now))

	failTimes(b, 3)
	clock.Advance(30 * time.Second)
	require.NoError(t, b.Allow())

	b.RecordSuccess()
	assert.Equal(t, StateClosed, b.State())
	assert.NoError(t, b.Allow())
}

func TestBreaker_TrialFailureReopensAndRestartsTimer(t *testing.T) {
	clock := newFakeClock()
	b := NewBreaker(3, 30*time.Second, WithClock(clock.Now))

	failTimes(b, 3)
	clock.Advance(30 * time.Second)
	require.NoError(t, b.Allow())

	b.RecordFailure()
	assert.Equal(t, StateOpen, b.State())

	// The timer restarted at the trial failure, not at the original opening.
	clock.Advance(29 * time.Second)
	assert.ErrorIs(t, b.Allow(), ErrCircuitOpen)
	clock.Advance(1 * time.Second)
	assert.NoError(t, b.Allow())
}

func TestBreaker_DisabledNeverOpens(t *testing.T) {
	b := NewBreaker(3, 30*time.Second, Disabled())

	failTimes(b, 100)
	assert.NoError(t, b.Allow())
	assert.Equal(t, StateClosed, b.State())
}

func TestBreaker_DefaultsApplied(t *testing.T) {
	clock := newFakeClock()
	b := NewBreaker(0, 0, WithClock(clock.Now))

	failTimes(b, DefaultBreakerThreshold-1)
	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	clock.Advance(DefaultBreakerReset)
	assert.NoError(t, b.Allow())
}
