package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

const minPasswordLength = 8

// AuthClient implements teable.AuthClient.
type AuthClient struct {
	httpClient *http.Client
}

// NewAuthClient creates a new auth client.
func NewAuthClient(httpClient *http.Client) *AuthClient {
	return &AuthClient{httpClient: httpClient}
}

// GetUser implements teable.AuthClient.GetUser.
func (c *AuthClient) GetUser(ctx context.Context) (*teable.User, error) {
	resp, err := c.httpClient.Get(ctx, "/auth/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user teable.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Signin implements teable.AuthClient.Signin.
func (c *AuthClient) Signin(ctx context.Context, email, password string) (*teable.User, error) {
	if email == "" {
		return nil, teable.NewValidationError("email is required")
	}

	if len(password) < minPasswordLength {
		return nil, teable.NewValidationError("password must be at least %d characters", minPasswordLength)
	}

	payload := map[string]string{"email": email, "password": password}

	resp, err := c.httpClient.Post(ctx, "/auth/signin", payload)
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}

	var user teable.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// Signout implements teable.AuthClient.Signout. The endpoint replies with an
// empty body on success.
func (c *AuthClient) Signout(ctx context.Context) error {
	if _, err := c.httpClient.Post(ctx, "/auth/signout", nil); err != nil {
		return fmt.Errorf("signing out: %w", err)
	}

	return nil
}

// ChangePassword implements teable.AuthClient.ChangePassword.
func (c *AuthClient) ChangePassword(ctx context.Context, password, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return teable.NewValidationError("password must be at least %d characters", minPasswordLength)
	}

	payload := map[string]string{
		"password":    password,
		"newPassword": newPassword,
	}

	if _, err := c.httpClient.Patch(ctx, "/auth/change-password", payload); err != nil {
		return fmt.Errorf("changing password: %w", err)
	}

	return nil
}
