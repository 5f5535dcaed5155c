package teable

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Defaults applied by NewConfig.
const (
	DefaultTimeout    = 30 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 1 * time.Second
)

// Config holds the connection settings for a Teable client. It is validated
// once at construction and treated as immutable afterwards.
//
// MaxRetries and RetryDelay are pointers because absence changes behavior:
// a nil MaxRetries disables 429 retries entirely, and a nil RetryDelay makes
// an exhausted rate-limit budget fail immediately instead of sleeping until
// the reset window.
type Config struct {
	// APIURL is the base endpoint, e.g. "https://app.teable.io". Validate
	// normalizes it to end in "/api" with no trailing slash.
	APIURL string

	// APIKey is the bearer credential. Teable keys start with "teable_".
	APIKey string

	// Timeout is the per-request network timeout.
	Timeout time.Duration

	// MaxRetries bounds the number of retries for 429 responses.
	MaxRetries *int

	// RetryDelay is the sleep between 429 retries and the upper bound on
	// rate-limit backoff sleeps.
	RetryDelay *time.Duration

	// DefaultTableID and DefaultViewID are optional defaults some callers
	// use to scope operations.
	DefaultTableID string
	DefaultViewID  string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Debug enables request/response logging when a Logger is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
}

// NewConfig creates a Config with default timeout and retry settings.
func NewConfig(apiURL, apiKey string) *Config {
	maxRetries := DefaultMaxRetries
	retryDelay := DefaultRetryDelay

	return &Config{
		APIURL:     apiURL,
		APIKey:     apiKey,
		Timeout:    DefaultTimeout,
		MaxRetries: &maxRetries,
		RetryDelay: &retryDelay,
	}
}

// Validate checks the configuration and normalizes the API URL. The URL must
// be absolute with an http or https scheme; trailing slashes are stripped and
// an "/api" suffix is appended when missing.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return ErrAPIURLRequired
	}

	if c.APIKey == "" {
		return ErrAPIKeyRequired
	}

	if !strings.HasPrefix(strings.TrimSpace(c.APIKey), "teable_") {
		return ErrInvalidAPIKey
	}

	parsed, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAPIURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidAPIURL)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidAPIURL)
	}

	base := parsed.Scheme + "://" + parsed.Host + strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}

	c.APIURL = base

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxRetries != nil && *c.MaxRetries < 0 {
		return ErrInvalidRetries
	}

	if c.RetryDelay != nil && *c.RetryDelay < 0 {
		return ErrInvalidDelay
	}

	return nil
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}
