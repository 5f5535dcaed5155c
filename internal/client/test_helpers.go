package client

import (
	"time"

	internalhttp "github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// NewTestClient creates a client wired straight to a test server base URL,
// bypassing config validation so test handlers see clean paths. Retry
// settings are short to keep 429 tests fast.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, "teable_test-key",
		internalhttp.WithRetryConfig(2, 10*time.Millisecond))

	client := &Client{
		httpClient: httpClient,
		tableCache: teable.NewResourceCache[*teable.Table](),
		fieldCache: teable.NewResourceCache[*teable.Field](),
		viewCache:  teable.NewResourceCache[*teable.View](),
	}

	client.initializeResourceClients()

	return client
}
