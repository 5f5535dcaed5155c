// Package constants centralizes shared limits, timeouts, and header names.
package constants

import "time"

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of 429 retries.
	DefaultRetryMax = 3

	// DefaultRetryDelay is the default sleep between 429 retries.
	DefaultRetryDelay = 1 * time.Second
)

// Rate-limit headers consumed from API responses.
const (
	// HeaderRateLimitLimit carries the total request budget.
	HeaderRateLimitLimit = "X-RateLimit-Limit"

	// HeaderRateLimitRemaining carries the remaining call count.
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"

	// HeaderRateLimitReset carries the epoch second the budget replenishes.
	HeaderRateLimitReset = "X-RateLimit-Reset"
)

// Rate-limit defaults.
const (
	// DefaultRateLimitBudget is the optimistic remaining-call count assumed
	// before the first real response headers arrive.
	DefaultRateLimitBudget = 100
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)
