package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// SpacesClient implements teable.SpacesClient.
type SpacesClient struct {
	httpClient *http.Client
}

// NewSpacesClient creates a new spaces client.
func NewSpacesClient(httpClient *http.Client) *SpacesClient {
	return &SpacesClient{httpClient: httpClient}
}

// List implements teable.SpacesClient.List.
func (c *SpacesClient) List(ctx context.Context) ([]teable.Space, error) {
	resp, err := c.httpClient.Get(ctx, "/space", nil)
	if err != nil {
		return nil, fmt.Errorf("listing spaces: %w", err)
	}

	var spaces []teable.Space
	if err := json.Unmarshal(resp.Body, &spaces); err != nil {
		return nil, fmt.Errorf("parsing spaces response: %w", err)
	}

	return spaces, nil
}

// Get implements teable.SpacesClient.Get.
func (c *SpacesClient) Get(ctx context.Context, spaceID string) (*teable.Space, error) {
	if spaceID == "" {
		return nil, teable.ErrSpaceIDRequired
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/space/%s", spaceID), nil)
	if err != nil {
		return nil, fmt.Errorf("getting space: %w", err)
	}

	var space teable.Space
	if err := json.Unmarshal(resp.Body, &space); err != nil {
		return nil, fmt.Errorf("parsing space response: %w", err)
	}

	return &space, nil
}

// Create implements teable.SpacesClient.Create.
func (c *SpacesClient) Create(ctx context.Context, name string) (*teable.Space, error) {
	if name == "" {
		return nil, teable.NewValidationError("space name is required")
	}

	resp, err := c.httpClient.Post(ctx, "/space", map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("creating space: %w", err)
	}

	var space teable.Space
	if err := json.Unmarshal(resp.Body, &space); err != nil {
		return nil, fmt.Errorf("parsing space response: %w", err)
	}

	return &space, nil
}

// PermanentDelete implements teable.SpacesClient.PermanentDelete.
func (c *SpacesClient) PermanentDelete(ctx context.Context, spaceID string) error {
	if spaceID == "" {
		return teable.ErrSpaceIDRequired
	}

	path := fmt.Sprintf("/space/%s/permanent", spaceID)
	if _, err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("permanently deleting space: %w", err)
	}

	return nil
}

// ListInvitations implements teable.SpacesClient.ListInvitations.
func (c *SpacesClient) ListInvitations(ctx context.Context, spaceID string) ([]teable.Invitation, error) {
	if spaceID == "" {
		return nil, teable.ErrSpaceIDRequired
	}

	path := fmt.Sprintf("/space/%s/invitation/link", spaceID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing invitations: %w", err)
	}

	var invitations []teable.Invitation
	if err := json.Unmarshal(resp.Body, &invitations); err != nil {
		return nil, fmt.Errorf("parsing invitations response: %w", err)
	}

	return invitations, nil
}

// CreateInvitation implements teable.SpacesClient.CreateInvitation.
func (c *SpacesClient) CreateInvitation(ctx context.Context, spaceID, role string) (*teable.Invitation, error) {
	if spaceID == "" {
		return nil, teable.ErrSpaceIDRequired
	}

	path := fmt.Sprintf("/space/%s/invitation/link", spaceID)

	resp, err := c.httpClient.Post(ctx, path, map[string]string{"role": role})
	if err != nil {
		return nil, fmt.Errorf("creating invitation: %w", err)
	}

	var invitation teable.Invitation
	if err := json.Unmarshal(resp.Body, &invitation); err != nil {
		return nil, fmt.Errorf("parsing invitation response: %w", err)
	}

	return &invitation, nil
}

// DeleteInvitation implements teable.SpacesClient.DeleteInvitation.
func (c *SpacesClient) DeleteInvitation(ctx context.Context, spaceID, invitationID string) error {
	if spaceID == "" {
		return teable.ErrSpaceIDRequired
	}

	if invitationID == "" {
		return teable.NewValidationError("invitation ID is required")
	}

	path := fmt.Sprintf("/space/%s/invitation/link/%s", spaceID, invitationID)
	if _, err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("deleting invitation: %w", err)
	}

	return nil
}

// ListCollaborators implements teable.SpacesClient.ListCollaborators.
func (c *SpacesClient) ListCollaborators(ctx context.Context, spaceID string) ([]teable.Collaborator, error) {
	if spaceID == "" {
		return nil, teable.ErrSpaceIDRequired
	}

	path := fmt.Sprintf("/space/%s/collaborators", spaceID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing collaborators: %w", err)
	}

	var result struct {
		Collaborators []teable.Collaborator `json:"collaborators"`
	}

	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing collaborators response: %w", err)
	}

	return result.Collaborators, nil
}

// UpdateCollaborator implements teable.SpacesClient.UpdateCollaborator.
func (c *SpacesClient) UpdateCollaborator(ctx context.Context, spaceID, userID, role string) error {
	if spaceID == "" {
		return teable.ErrSpaceIDRequired
	}

	path := fmt.Sprintf("/space/%s/collaborators", spaceID)
	payload := map[string]string{"userId": userID, "role": role}

	if _, err := c.httpClient.Patch(ctx, path, payload); err != nil {
		return fmt.Errorf("updating collaborator: %w", err)
	}

	return nil
}

// DeleteCollaborator implements teable.SpacesClient.DeleteCollaborator.
func (c *SpacesClient) DeleteCollaborator(ctx context.Context, spaceID, userID string) error {
	if spaceID == "" {
		return teable.ErrSpaceIDRequired
	}

	req := &http.Request{
		Method: nethttp.MethodDelete,
		Path:   fmt.Sprintf("/space/%s/collaborators", spaceID),
		Body:   map[string]string{"userId": userID},
	}

	if _, err := c.httpClient.Do(ctx, req); err != nil {
		return fmt.Errorf("deleting collaborator: %w", err)
	}

	return nil
}
