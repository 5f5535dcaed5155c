package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

func intPtr(v int) *int { return &v }

func durPtr(v time.Duration) *time.Duration { return &v }

// fixedClock returns a now func pinned to the given epoch second.
func fixedClock(epoch int64) func() time.Time {
	return func() time.Time { return time.Unix(epoch, 0) }
}

func TestRateLimiter_CheckWithBudget(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(3), durPtr(time.Second))

	slept := false
	limiter.sleep = func(time.Duration) { slept = true }

	require.NoError(t, limiter.Check())
	assert.False(t, slept, "check must not sleep while budget remains")
	assert.Equal(t, 100, limiter.Remaining())
}

func TestRateLimiter_CheckExhaustedNoDelay(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(3), nil)
	limiter.now = fixedClock(1_000)

	limiter.Update("0", "1060")

	err := limiter.Check()
	require.Error(t, err)

	rateErr := &teable.RateLimitError{}
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, int64(1060), rateErr.ResetTime)
}

func TestRateLimiter_CheckExhaustedPastReset(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(3), nil)
	limiter.now = fixedClock(2_000)

	limiter.Update("0", "1060")

	// Reset window already passed: treat as replenished.
	require.NoError(t, limiter.Check())
}

func TestRateLimiter_CheckExhaustedSleeps(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(3), durPtr(2*time.Second))
	limiter.now = fixedClock(1_000)

	var slept time.Duration

	limiter.sleep = func(d time.Duration) { slept = d }

	limiter.Update("0", "1060")

	require.NoError(t, limiter.Check())
	// min(60s until reset, 2s retry delay)
	assert.Equal(t, 2*time.Second, slept)
}

func TestRateLimiter_CheckSleepCappedByReset(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(3), durPtr(30*time.Second))
	limiter.now = fixedClock(1_000)

	var slept time.Duration

	limiter.sleep = func(d time.Duration) { slept = d }

	limiter.Update("0", "1005")

	require.NoError(t, limiter.Check())
	assert.Equal(t, 5*time.Second, slept)
}

func TestRateLimiter_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		remaining     string
		reset         string
		wantRemaining int
		wantReset     int64
	}{
		{"both headers", "42", "1700000000", 42, 1700000000},
		{"negative remaining clamps to zero", "-5", "1700000000", 0, 1700000000},
		{"non-numeric remaining ignored", "lots", "1700000000", 100, 1700000000},
		{"non-numeric reset ignored", "42", "soon", 42, 0},
		{"missing headers leave state untouched", "", "", 100, 0},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			limiter := NewRateLimiter(intPtr(3), nil)
			limiter.Update(testCase.remaining, testCase.reset)

			assert.Equal(t, testCase.wantRemaining, limiter.Remaining())
			assert.Equal(t, testCase.wantReset, limiter.ResetTime())
		})
	}
}

func TestRateLimiter_UpdatePreservesPreviousValue(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(3), nil)

	limiter.Update("7", "1000")
	limiter.Update("garbage", "")

	assert.Equal(t, 7, limiter.Remaining())
	assert.Equal(t, int64(1000), limiter.ResetTime())
}

func TestRateLimiter_Handle429Retries(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(2), durPtr(10*time.Millisecond))

	var slept time.Duration

	limiter.sleep = func(d time.Duration) { slept += d }

	retry, err := limiter.Handle429(0, 1234)
	require.NoError(t, err)
	assert.True(t, retry)

	retry, err = limiter.Handle429(1, 1234)
	require.NoError(t, err)
	assert.True(t, retry)

	assert.Equal(t, 20*time.Millisecond, slept)
}

func TestRateLimiter_Handle429Exhausted(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(2), durPtr(10*time.Millisecond))
	limiter.sleep = func(time.Duration) {}

	retry, err := limiter.Handle429(2, 4321)
	assert.False(t, retry)
	require.Error(t, err)

	rateErr := &teable.RateLimitError{}
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, int64(4321), rateErr.ResetTime)
	assert.Equal(t, 429, rateErr.StatusCode)
}

func TestRateLimiter_Handle429Disabled(t *testing.T) {
	t.Parallel()

	// nil maxRetries disables retries entirely.
	limiter := NewRateLimiter(nil, durPtr(10*time.Millisecond))
	limiter.sleep = func(time.Duration) {}

	retry, err := limiter.Handle429(0, 99)
	assert.False(t, retry)
	require.Error(t, err)
	assert.True(t, teable.IsRateLimit(err))
}

func TestRateLimiter_Handle429DefaultDelay(t *testing.T) {
	t.Parallel()

	limiter := NewRateLimiter(intPtr(1), nil)

	var slept time.Duration

	limiter.sleep = func(d time.Duration) { slept = d }

	retry, err := limiter.Handle429(0, 0)
	require.NoError(t, err)
	assert.True(t, retry)
	assert.Equal(t, time.Second, slept)
}
