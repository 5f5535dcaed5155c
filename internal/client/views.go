package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

const cacheTypeViews = "views"

// ViewsClient implements teable.ViewsClient.
type ViewsClient struct {
	httpClient *http.Client
	cache      *teable.ResourceCache[*teable.View]
}

// NewViewsClient creates a new views client.
func NewViewsClient(httpClient *http.Client, cache *teable.ResourceCache[*teable.View]) *ViewsClient {
	cache.Register(cacheTypeViews)

	return &ViewsClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

func viewCacheKey(tableID, viewID string) string {
	return tableID + "_" + viewID
}

// Get implements teable.ViewsClient.Get. Cache hits skip the network.
func (c *ViewsClient) Get(ctx context.Context, tableID, viewID string) (*teable.View, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if viewID == "" {
		return nil, teable.ErrViewIDRequired
	}

	key := viewCacheKey(tableID, viewID)
	if cached, ok := c.cache.Get(cacheTypeViews, key); ok {
		return cached, nil
	}

	path := fmt.Sprintf("/table/%s/view/%s", tableID, viewID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting view: %w", err)
	}

	var view teable.View
	if err := json.Unmarshal(resp.Body, &view); err != nil {
		return nil, fmt.Errorf("parsing view response: %w", err)
	}

	c.cache.Set(cacheTypeViews, key, &view)

	return &view, nil
}

// ListForTable implements teable.ViewsClient.ListForTable.
func (c *ViewsClient) ListForTable(ctx context.Context, tableID string) ([]teable.View, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/table/%s/view", tableID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing views: %w", err)
	}

	var views []teable.View
	if err := json.Unmarshal(resp.Body, &views); err != nil {
		return nil, fmt.Errorf("parsing views response: %w", err)
	}

	for i := range views {
		c.cache.Set(cacheTypeViews, viewCacheKey(tableID, views[i].ID), &views[i])
	}

	return views, nil
}
