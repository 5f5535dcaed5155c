// Package teableclient provides the main entry point for creating Teable API clients
package teableclient

import (
	"fmt"

	"github.com/fivetwenty-io/teable-client/internal/client"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// New creates a new Teable API client from the given configuration. The
// configuration is validated and its API URL normalized before the client is
// built.
func New(config *teable.Config) (teable.Client, error) {
	if config == nil {
		return nil, teable.ErrConfigRequired
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client for the given API URL and key using default
// timeout and retry settings.
func NewWithAPIKey(apiURL, apiKey string) (teable.Client, error) {
	return New(teable.NewConfig(apiURL, apiKey))
}
