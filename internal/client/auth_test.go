package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

func TestAuthClient_GetUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/user", r.URL.Path)
		assert.Equal(t, "Bearer teable_test-key", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode(teable.User{
			ID:    "usr1",
			Name:  "Alice",
			Email: "alice@example.com",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	user, err := client.Auth().GetUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "usr1", user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestAuthClient_Signin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signin", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]string

		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(teable.User{ID: "usr1", Email: body["email"]})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	user, err := client.Auth().Signin(context.Background(), "alice@example.com", "long-enough-password")
	require.NoError(t, err)
	assert.Equal(t, "usr1", user.ID)
}

func TestAuthClient_Signin_Validation(t *testing.T) {
	client := NewTestClient("http://unused")

	_, err := client.Auth().Signin(context.Background(), "", "long-enough-password")
	require.Error(t, err)
	assert.True(t, teable.IsValidation(err))

	_, err = client.Auth().Signin(context.Background(), "alice@example.com", "short")
	require.Error(t, err)
	assert.True(t, teable.IsValidation(err))
}

func TestAuthClient_Signout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signout", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		// Signout responds with an empty body.
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Auth().Signout(context.Background())
	require.NoError(t, err)
}

func TestAuthClient_ChangePassword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/change-password", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]string

		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "old-password", body["password"])
		assert.Equal(t, "new-password-123", body["newPassword"])
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Auth().ChangePassword(context.Background(), "old-password", "new-password-123")
	require.NoError(t, err)

	err = client.Auth().ChangePassword(context.Background(), "old-password", "short")
	require.Error(t, err)
	assert.True(t, teable.IsValidation(err))
}
