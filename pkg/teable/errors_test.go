package teable_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &teable.APIError{Message: "server error", StatusCode: 500, Body: "boom"}
	assert.Equal(t, "server error (status: 500)", err.Error())

	noStatus := &teable.APIError{Message: "something broke"}
	assert.Equal(t, "something broke", noStatus.Error())
}

func TestResourceNotFoundError_Error(t *testing.T) {
	t.Parallel()

	err := &teable.ResourceNotFoundError{
		APIError:     teable.APIError{Message: "resource not found", StatusCode: 404},
		ResourceType: "/table/tbl1",
		ResourceID:   "viewId=viw1",
	}

	assert.Equal(t, "resource not found (/table/tbl1: viewId=viw1)", err.Error())
}

func TestRateLimitError_Error(t *testing.T) {
	t.Parallel()

	err := &teable.RateLimitError{
		APIError:  teable.APIError{Message: "rate limit exceeded", StatusCode: 429},
		ResetTime: 1700000000,
	}
	assert.Equal(t, "rate limit exceeded (resets at 1700000000)", err.Error())

	noReset := &teable.RateLimitError{
		APIError: teable.APIError{Message: "rate limit exceeded", StatusCode: 429},
	}
	assert.Equal(t, "rate limit exceeded (status: 429)", noReset.Error())
}

func TestNetworkError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &teable.NetworkError{Message: "request failed", Err: cause}

	assert.Equal(t, "request failed: connection refused", err.Error())
	require.ErrorIs(t, err, cause)
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := &teable.ResourceNotFoundError{
		APIError: teable.APIError{Message: "resource not found", StatusCode: 404},
	}
	authErr := &teable.AuthenticationError{
		APIError: teable.APIError{Message: "authentication failed", StatusCode: 401},
	}
	rateErr := &teable.RateLimitError{
		APIError: teable.APIError{Message: "rate limit exceeded", StatusCode: 429},
	}
	netErr := &teable.NetworkError{Message: "request failed"}
	valErr := teable.NewValidationError("take must be between 1 and %d", 2000)

	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{"not found", notFound, teable.IsNotFound},
		{"authentication", authErr, teable.IsAuthentication},
		{"rate limit", rateErr, teable.IsRateLimit},
		{"network", netErr, teable.IsNetwork},
		{"validation", valErr, teable.IsValidation},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tc.predicate(tc.err))

			// Wrapped errors still match.
			wrapped := fmt.Errorf("listing records: %w", tc.err)
			assert.True(t, tc.predicate(wrapped))

			// Predicates are mutually exclusive.
			for _, other := range tests {
				if other.name != tc.name {
					assert.False(t, other.predicate(tc.err), "%s matched %s", tc.name, other.name)
				}
			}
		})
	}
}

func TestRateLimitReset(t *testing.T) {
	t.Parallel()

	rateErr := &teable.RateLimitError{
		APIError:  teable.APIError{Message: "rate limit exceeded", StatusCode: 429},
		ResetTime: 1700000042,
	}

	reset, ok := teable.RateLimitReset(fmt.Errorf("creating record: %w", rateErr))
	require.True(t, ok)
	assert.Equal(t, int64(1700000042), reset)

	_, ok = teable.RateLimitReset(errors.New("unrelated"))
	assert.False(t, ok)
}

func TestValidationError_Message(t *testing.T) {
	t.Parallel()

	err := teable.NewValidationError("field %q is required", "name")
	assert.Equal(t, `field "name" is required`, err.Error())
}
