package http

import (
	"strconv"
	"sync"
	"time"

	"github.com/fivetwenty-io/teable-client/internal/constants"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// RateLimiter tracks the server's self-reported rate-limit budget and decides
// whether a call may proceed, must wait, or must fail.
//
// The tracker is optimistic: it assumes capacity until real response headers
// say otherwise, and only throttles after the remaining count hits zero or an
// explicit 429 arrives. All timestamps are UTC epoch seconds.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	reset     int64

	maxRetries *int
	retryDelay *time.Duration

	// Injectable for tests.
	now   func() time.Time
	sleep func(time.Duration)
}

// NewRateLimiter creates a tracker with the optimistic default budget.
// maxRetries bounds 429 retries (nil disables them); retryDelay is the sleep
// between retries and the cap on rate-limit backoff (nil means an exhausted
// budget fails instead of waiting).
func NewRateLimiter(maxRetries *int, retryDelay *time.Duration) *RateLimiter {
	return &RateLimiter{
		remaining:  constants.DefaultRateLimitBudget,
		reset:      0,
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		now:        time.Now,
		sleep:      time.Sleep,
	}
}

// Update ingests rate-limit response headers. Parsing is defensive: missing
// or non-numeric values leave the previous state untouched, and a negative
// remaining count clamps to zero.
func (r *RateLimiter) Update(remaining, reset string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining != "" {
		if value, err := strconv.Atoi(remaining); err == nil {
			if value < 0 {
				value = 0
			}

			r.remaining = value
		}
	}

	if reset != "" {
		if value, err := strconv.ParseInt(reset, 10, 64); err == nil {
			r.reset = value
		}
	}
}

// Check gates an outbound call. With budget left, or with a reset moment that
// has already passed, it returns immediately. Otherwise it sleeps for
// min(time until reset, retry delay) when a retry delay is configured, or
// fails with a RateLimitError carrying the reset time when it is not.
func (r *RateLimiter) Check() error {
	r.mu.Lock()
	remaining := r.remaining
	reset := r.reset
	r.mu.Unlock()

	if remaining > 0 {
		return nil
	}

	untilReset := time.Duration(reset-r.now().Unix()) * time.Second
	if untilReset <= 0 {
		// Reset window passed; the server should have replenished.
		return nil
	}

	if r.retryDelay == nil {
		return &teable.RateLimitError{
			APIError: teable.APIError{
				Message:    "rate limit exceeded",
				StatusCode: 429,
			},
			ResetTime: reset,
		}
	}

	wait := untilReset
	if *r.retryDelay < wait {
		wait = *r.retryDelay
	}

	r.sleep(wait)

	return nil
}

// Handle429 decides whether an explicit 429 response should be retried.
// It sleeps the configured retry delay and reports true while retries remain;
// once they are exhausted (or retries are disabled) it returns a
// RateLimitError carrying the reset time echoed by the server.
func (r *RateLimiter) Handle429(retryCount int, resetAt int64) (bool, error) {
	if r.maxRetries != nil && retryCount < *r.maxRetries {
		delay := constants.DefaultRetryDelay
		if r.retryDelay != nil {
			delay = *r.retryDelay
		}

		r.sleep(delay)

		return true, nil
	}

	return false, &teable.RateLimitError{
		APIError: teable.APIError{
			Message:    "rate limit exceeded",
			StatusCode: 429,
		},
		ResetTime: resetAt,
	}
}

// Remaining returns the tracked remaining call count.
func (r *RateLimiter) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.remaining
}

// ResetTime returns the tracked reset timestamp in epoch seconds.
func (r *RateLimiter) ResetTime() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.reset
}
