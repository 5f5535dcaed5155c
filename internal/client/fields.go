package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

const cacheTypeFields = "fields"

// FieldsClient implements teable.FieldsClient.
type FieldsClient struct {
	httpClient *http.Client
	cache      *teable.ResourceCache[*teable.Field]
}

// NewFieldsClient creates a new fields client.
func NewFieldsClient(httpClient *http.Client, cache *teable.ResourceCache[*teable.Field]) *FieldsClient {
	cache.Register(cacheTypeFields)

	return &FieldsClient{
		httpClient: httpClient,
		cache:      cache,
	}
}

// fieldCacheKey scopes a field to its table; field IDs are only unique
// within one table.
func fieldCacheKey(tableID, fieldID string) string {
	return tableID + "_" + fieldID
}

// Get implements teable.FieldsClient.Get. Cache hits skip the network.
func (c *FieldsClient) Get(ctx context.Context, tableID, fieldID string) (*teable.Field, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if fieldID == "" {
		return nil, teable.ErrFieldIDRequired
	}

	key := fieldCacheKey(tableID, fieldID)
	if cached, ok := c.cache.Get(cacheTypeFields, key); ok {
		return cached, nil
	}

	path := fmt.Sprintf("/table/%s/field/%s", tableID, fieldID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting field: %w", err)
	}

	var field teable.Field
	if err := json.Unmarshal(resp.Body, &field); err != nil {
		return nil, fmt.Errorf("parsing field response: %w", err)
	}

	c.cache.Set(cacheTypeFields, key, &field)

	return &field, nil
}

// ListForTable implements teable.FieldsClient.ListForTable.
func (c *FieldsClient) ListForTable(ctx context.Context, tableID string) ([]teable.Field, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/table/%s/field", tableID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing fields: %w", err)
	}

	var fields []teable.Field
	if err := json.Unmarshal(resp.Body, &fields); err != nil {
		return nil, fmt.Errorf("parsing fields response: %w", err)
	}

	for i := range fields {
		c.cache.Set(cacheTypeFields, fieldCacheKey(tableID, fields[i].ID), &fields[i])
	}

	return fields, nil
}

// Update implements teable.FieldsClient.Update.
func (c *FieldsClient) Update(ctx context.Context, tableID, fieldID string, request *teable.FieldUpdateRequest) error {
	if tableID == "" {
		return teable.ErrTableIDRequired
	}

	if fieldID == "" {
		return teable.ErrFieldIDRequired
	}

	path := fmt.Sprintf("/table/%s/field/%s", tableID, fieldID)
	if _, err := c.httpClient.Patch(ctx, path, request); err != nil {
		return fmt.Errorf("updating field: %w", err)
	}

	c.cache.Delete(cacheTypeFields, fieldCacheKey(tableID, fieldID))

	return nil
}

// Delete implements teable.FieldsClient.Delete.
func (c *FieldsClient) Delete(ctx context.Context, tableID, fieldID string) error {
	if tableID == "" {
		return teable.ErrTableIDRequired
	}

	if fieldID == "" {
		return teable.ErrFieldIDRequired
	}

	path := fmt.Sprintf("/table/%s/field/%s", tableID, fieldID)
	if _, err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("deleting field: %w", err)
	}

	c.cache.Delete(cacheTypeFields, fieldCacheKey(tableID, fieldID))

	return nil
}

// Convert implements teable.FieldsClient.Convert, changing a field's type.
func (c *FieldsClient) Convert(ctx context.Context, tableID, fieldID string, request *teable.FieldConvertRequest) (*teable.Field, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if fieldID == "" {
		return nil, teable.ErrFieldIDRequired
	}

	path := fmt.Sprintf("/table/%s/field/%s/convert", tableID, fieldID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("converting field: %w", err)
	}

	var field teable.Field
	if err := json.Unmarshal(resp.Body, &field); err != nil {
		return nil, fmt.Errorf("parsing field response: %w", err)
	}

	c.cache.Delete(cacheTypeFields, fieldCacheKey(tableID, fieldID))

	return &field, nil
}
