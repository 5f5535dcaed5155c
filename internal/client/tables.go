package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

const cacheTypeTables = "tables"

// TablesClient implements teable.TablesClient.
type TablesClient struct {
	httpClient *http.Client
	cache      *teable.ResourceCache[*teable.Table]
}

// NewTablesClient creates a new tables client.
func NewTablesClient(httpClient *http.Client, cache *teable.ResourceCache[*teable.Table]) *TablesClient {
	cache.Register(cacheTypeTables)

	return &TablesClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

// Get implements teable.TablesClient.Get. Cache hits skip the network.
func (c *TablesClient) Get(ctx context.Context, tableID string) (*teable.Table, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if cached, ok := c.cache.Get(cacheTypeTables, tableID); ok {
		return cached, nil
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/table/%s", tableID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting table: %w", err)
	}

	var table teable.Table
	if err := json.Unmarshal(resp.Body, &table); err != nil {
		return nil, fmt.Errorf("parsing table response: %w", err)
	}

	c.cache.Set(cacheTypeTables, tableID, &table)

	return &table, nil
}

// List implements teable.TablesClient.List.
func (c *TablesClient) List(ctx context.Context) ([]teable.Table, error) {
	resp, err := c.httpClient.Get(ctx, "/table", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}

	var tables []teable.Table
	if err := json.Unmarshal(resp.Body, &tables); err != nil {
		return nil, fmt.Errorf("parsing tables response: %w", err)
	}

	for i := range tables {
		c.cache.Set(cacheTypeTables, tables[i].ID, &tables[i])
	}

	return tables, nil
}

// Create implements teable.TablesClient.Create.
func (c *TablesClient) Create(ctx context.Context, baseID string, request *teable.TableCreateRequest) (*teable.Table, error) {
	if baseID == "" {
		return nil, teable.ErrBaseIDRequired
	}

	if request == nil {
		return nil, teable.NewValidationError("table create request is required")
	}

	if err := validateDBTableName(request.DBTableName); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/base/%s/table/", baseID), request)
	if err != nil {
		return nil, fmt.Errorf("creating table: %w", err)
	}

	var table teable.Table
	if err := json.Unmarshal(resp.Body, &table); err != nil {
		return nil, fmt.Errorf("parsing table response: %w", err)
	}

	c.cache.Set(cacheTypeTables, table.ID, &table)

	return &table, nil
}

// Update implements teable.TablesClient.Update. Each changed attribute maps
// to its own endpoint; the cache entry is invalidated after any success.
func (c *TablesClient) Update(ctx context.Context, baseID, tableID string, request *teable.TableUpdateRequest) error {
	if baseID == "" {
		return teable.ErrBaseIDRequired
	}

	if tableID == "" {
		return teable.ErrTableIDRequired
	}

	if request == nil {
		return teable.NewValidationError("table update request is required")
	}

	prefix := fmt.Sprintf("/base/%s/table/%s", baseID, tableID)

	if request.Name != nil {
		payload := map[string]string{"name": *request.Name}
		if _, err := c.httpClient.Put(ctx, prefix+"/name", payload); err != nil {
			return fmt.Errorf("updating table name: %w", err)
		}
	}

	if request.Description != nil {
		payload := map[string]string{"description": *request.Description}
		if _, err := c.httpClient.Put(ctx, prefix+"/description", payload); err != nil {
			return fmt.Errorf("updating table description: %w", err)
		}
	}

	if request.Icon != nil {
		payload := map[string]string{"icon": *request.Icon}
		if _, err := c.httpClient.Put(ctx, prefix+"/icon", payload); err != nil {
			return fmt.Errorf("updating table icon: %w", err)
		}
	}

	c.cache.Delete(cacheTypeTables, tableID)

	return nil
}

// Delete implements teable.TablesClient.Delete.
func (c *TablesClient) Delete(ctx context.Context, baseID, tableID string) error {
	if baseID == "" {
		return teable.ErrBaseIDRequired
	}

	if tableID == "" {
		return teable.ErrTableIDRequired
	}

	path := fmt.Sprintf("/base/%s/table/%s", baseID, tableID)
	if _, err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("deleting table: %w", err)
	}

	c.cache.Delete(cacheTypeTables, tableID)

	return nil
}

// PermanentDelete implements teable.TablesClient.PermanentDelete.
func (c *TablesClient) PermanentDelete(ctx context.Context, baseID, tableID string) error {
	if baseID == "" {
		return teable.ErrBaseIDRequired
	}

	if tableID == "" {
		return teable.ErrTableIDRequired
	}

	path := fmt.Sprintf("/base/%s/table/%s/permanent", baseID, tableID)
	if _, err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("permanently deleting table: %w", err)
	}

	c.cache.Delete(cacheTypeTables, tableID)

	return nil
}

// GetDefaultViewID implements teable.TablesClient.GetDefaultViewID.
func (c *TablesClient) GetDefaultViewID(ctx context.Context, baseID, tableID string) (string, error) {
	if baseID == "" {
		return "", teable.ErrBaseIDRequired
	}

	if tableID == "" {
		return "", teable.ErrTableIDRequired
	}

	path := fmt.Sprintf("/base/%s/table/%s/default-view-id", baseID, tableID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return "", fmt.Errorf("getting default view ID: %w", err)
	}

	var result struct {
		ID string `json:"id"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return "", fmt.Errorf("parsing default view response: %w", err)
	}

	return result.ID, nil
}

// validateDBTableName enforces the backend naming rules: starts with a
// letter, letters/digits/underscore only, at most 63 characters.
func validateDBTableName(name string) error {
	if name == "" || len(name) > 63 {
		return teable.NewValidationError("dbTableName must be 1-63 characters")
	}

	first := name[0]
	if !(first >= 'a' && first <= 'z') && !(first >= 'A' && first <= 'Z') {
		return teable.NewValidationError("dbTableName must start with a letter")
	}

	for i := 0; i < len(name); i++ {
		ch := name[i]
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '_' {
			continue
		}

		return teable.NewValidationError("dbTableName may contain only letters, numbers and underscore")
	}

	return nil
}
