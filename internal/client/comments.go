package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// CommentsClient implements teable.CommentsClient.
type CommentsClient struct {
	httpClient *http.Client
}

// NewCommentsClient creates a new comments client.
func NewCommentsClient(httpClient *http.Client) *CommentsClient {
	return &CommentsClient{httpClient: httpClient}
}

func (c *CommentsClient) validateIDs(tableID, recordID string) error {
	if tableID == "" {
		return teable.ErrTableIDRequired
	}

	if recordID == "" {
		return teable.ErrRecordIDRequired
	}

	return nil
}

// List implements teable.CommentsClient.List.
func (c *CommentsClient) List(ctx context.Context, tableID, recordID string) ([]teable.Comment, error) {
	if err := c.validateIDs(tableID, recordID); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("/comment/%s/%s/list", tableID, recordID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var result struct {
		Comments []teable.Comment `json:"comments"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing comments response: %w", err)
	}

	return result.Comments, nil
}

// Get implements teable.CommentsClient.Get.
func (c *CommentsClient) Get(ctx context.Context, tableID, recordID, commentID string) (*teable.Comment, error) {
	if err := c.validateIDs(tableID, recordID); err != nil {
		return nil, err
	}

	if commentID == "" {
		return nil, teable.NewValidationError("comment ID is required")
	}

	path := fmt.Sprintf("/comment/%s/%s/%s", tableID, recordID, commentID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting comment: %w", err)
	}

	var comment teable.Comment
	if err := json.Unmarshal(resp.Body, &comment); err != nil {
		return nil, fmt.Errorf("parsing comment response: %w", err)
	}

	return &comment, nil
}

// Create implements teable.CommentsClient.Create.
func (c *CommentsClient) Create(ctx context.Context, tableID, recordID string, content []map[string]interface{}, quoteID string) error {
	if err := c.validateIDs(tableID, recordID); err != nil {
		return err
	}

	if len(content) == 0 {
		return teable.NewValidationError("comment content is required")
	}

	payload := map[string]interface{}{"content": content}
	if quoteID != "" {
		payload["quoteId"] = quoteID
	}

	path := fmt.Sprintf("/comment/%s/%s/create", tableID, recordID)
	if _, err := c.httpClient.Post(ctx, path, payload); err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}

	return nil
}

// Update implements teable.CommentsClient.Update.
func (c *CommentsClient) Update(ctx context.Context, tableID, recordID, commentID string, content []map[string]interface{}) error {
	if err := c.validateIDs(tableID, recordID); err != nil {
		return err
	}

	if commentID == "" {
		return teable.NewValidationError("comment ID is required")
	}

	path := fmt.Sprintf("/comment/%s/%s/%s", tableID, recordID, commentID)
	payload := map[string]interface{}{"content": content}

	if _, err := c.httpClient.Patch(ctx, path, payload); err != nil {
		return fmt.Errorf("updating comment: %w", err)
	}

	return nil
}

// Delete implements teable.CommentsClient.Delete.
func (c *CommentsClient) Delete(ctx context.Context, tableID, recordID, commentID string) error {
	if err := c.validateIDs(tableID, recordID); err != nil {
		return err
	}

	if commentID == "" {
		return teable.NewValidationError("comment ID is required")
	}

	path := fmt.Sprintf("/comment/%s/%s/%s", tableID, recordID, commentID)
	if _, err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}

	return nil
}
