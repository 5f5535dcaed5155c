package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// BasesClient implements teable.BasesClient.
type BasesClient struct {
	httpClient *http.Client
}

// NewBasesClient creates a new bases client.
func NewBasesClient(httpClient *http.Client) *BasesClient {
	return &BasesClient{httpClient: httpClient}
}

// List implements teable.BasesClient.List, returning every accessible base.
func (c *BasesClient) List(ctx context.Context) ([]teable.Base, error) {
	resp, err := c.httpClient.Get(ctx, "/base/access/all", nil)
	if err != nil {
		return nil, fmt.Errorf("listing bases: %w", err)
	}

	var bases []teable.Base
	if err := json.Unmarshal(resp.Body, &bases); err != nil {
		return nil, fmt.Errorf("parsing bases response: %w", err)
	}

	return bases, nil
}

// ListShared implements teable.BasesClient.ListShared.
func (c *BasesClient) ListShared(ctx context.Context) ([]teable.Base, error) {
	resp, err := c.httpClient.Get(ctx, "/base/shared-base", nil)
	if err != nil {
		return nil, fmt.Errorf("listing shared bases: %w", err)
	}

	var bases []teable.Base
	if err := json.Unmarshal(resp.Body, &bases); err != nil {
		return nil, fmt.Errorf("parsing shared bases response: %w", err)
	}

	return bases, nil
}

// ListForSpace implements teable.BasesClient.ListForSpace.
func (c *BasesClient) ListForSpace(ctx context.Context, spaceID string) ([]teable.Base, error) {
	if spaceID == "" {
		return nil, teable.ErrSpaceIDRequired
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/space/%s/base", spaceID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing bases for space: %w", err)
	}

	var bases []teable.Base
	if err := json.Unmarshal(resp.Body, &bases); err != nil {
		return nil, fmt.Errorf("parsing bases response: %w", err)
	}

	return bases, nil
}

// Get implements teable.BasesClient.Get.
func (c *BasesClient) Get(ctx context.Context, baseID string) (*teable.Base, error) {
	if baseID == "" {
		return nil, teable.ErrBaseIDRequired
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/base/%s", baseID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting base: %w", err)
	}

	var base teable.Base
	if err := json.Unmarshal(resp.Body, &base); err != nil {
		return nil, fmt.Errorf("parsing base response: %w", err)
	}

	return &base, nil
}

// Create implements teable.BasesClient.Create.
func (c *BasesClient) Create(ctx context.Context, request *teable.BaseCreateRequest) (*teable.Base, error) {
	if request == nil || request.SpaceID == "" {
		return nil, teable.ErrSpaceIDRequired
	}

	resp, err := c.httpClient.Post(ctx, "/base", request)
	if err != nil {
		return nil, fmt.Errorf("creating base: %w", err)
	}

	var base teable.Base
	if err := json.Unmarshal(resp.Body, &base); err != nil {
		return nil, fmt.Errorf("parsing base response: %w", err)
	}

	return &base, nil
}

// Duplicate implements teable.BasesClient.Duplicate.
func (c *BasesClient) Duplicate(ctx context.Context, baseID, spaceID, name string, withRecords bool) (*teable.Base, error) {
	if baseID == "" {
		return nil, teable.ErrBaseIDRequired
	}

	if spaceID == "" {
		return nil, teable.ErrSpaceIDRequired
	}

	payload := map[string]interface{}{
		"fromBaseId":  baseID,
		"spaceId":     spaceID,
		"withRecords": withRecords,
	}
	if name != "" {
		payload["name"] = name
	}

	resp, err := c.httpClient.Post(ctx, "/base/duplicate", payload)
	if err != nil {
		return nil, fmt.Errorf("duplicating base: %w", err)
	}

	var base teable.Base
	if err := json.Unmarshal(resp.Body, &base); err != nil {
		return nil, fmt.Errorf("parsing base response: %w", err)
	}

	return &base, nil
}

// PermanentDelete implements teable.BasesClient.PermanentDelete.
func (c *BasesClient) PermanentDelete(ctx context.Context, baseID string) error {
	if baseID == "" {
		return teable.ErrBaseIDRequired
	}

	path := fmt.Sprintf("/base/%s/permanent", baseID)
	if _, err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("permanently deleting base: %w", err)
	}

	return nil
}

// GetPermission implements teable.BasesClient.GetPermission.
func (c *BasesClient) GetPermission(ctx context.Context, baseID string) (map[string]bool, error) {
	if baseID == "" {
		return nil, teable.ErrBaseIDRequired
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/base/%s/permission", baseID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting base permission: %w", err)
	}

	var permissions map[string]bool
	if err := json.Unmarshal(resp.Body, &permissions); err != nil {
		return nil, fmt.Errorf("parsing permission response: %w", err)
	}

	return permissions, nil
}

// Query implements teable.BasesClient.Query, running a raw query against the
// base's backing database.
func (c *BasesClient) Query(ctx context.Context, baseID, query string) ([]map[string]interface{}, error) {
	if baseID == "" {
		return nil, teable.ErrBaseIDRequired
	}

	if query == "" {
		return nil, teable.NewValidationError("query is required")
	}

	values := map[string][]string{"query": {query}}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/base/%s/query", baseID), values)
	if err != nil {
		return nil, fmt.Errorf("querying base: %w", err)
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(resp.Body, &rows); err != nil {
		return nil, fmt.Errorf("parsing query response: %w", err)
	}

	return rows, nil
}
