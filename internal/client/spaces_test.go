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

func TestSpacesClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/space", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]teable.Space{
			{ID: "spc1", Name: "Engineering", Role: "owner"},
			{ID: "spc2", Name: "Design", Role: "editor"},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	spaces, err := client.Spaces().List(context.Background())
	require.NoError(t, err)
	require.Len(t, spaces, 2)
	assert.Equal(t, "owner", spaces[0].Role)
}

func TestSpacesClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/space/spc1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(teable.Space{ID: "spc1", Name: "Engineering"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	space, err := client.Spaces().Get(context.Background(), "spc1")
	require.NoError(t, err)
	assert.Equal(t, "Engineering", space.Name)
}

func TestSpacesClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/space", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]string

		err := json.NewDecoder(r.Body).Decode(&body)
		require.NoError(t, err)
		assert.Equal(t, "New Space", body["name"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(teable.Space{ID: "spc1", Name: body["name"]})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	space, err := client.Spaces().Create(context.Background(), "New Space")
	require.NoError(t, err)
	assert.Equal(t, "spc1", space.ID)

	_, err = client.Spaces().Create(context.Background(), "")
	require.Error(t, err)
	assert.True(t, teable.IsValidation(err))
}

func TestSpacesClient_PermanentDelete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/space/spc1/permanent", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	err := client.Spaces().PermanentDelete(context.Background(), "spc1")
	require.NoError(t, err)
}

func TestSpacesClient_Invitations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case "GET":
			assert.Equal(t, "/space/spc1/invitation/link", r.URL.Path)
			_ = json.NewEncoder(w).Encode([]teable.Invitation{
				{InvitationID: "inv1", Role: "editor"},
			})
		case "POST":
			assert.Equal(t, "/space/spc1/invitation/link", r.URL.Path)

			var body map[string]string

			err := json.NewDecoder(r.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "viewer", body["role"])

			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(teable.Invitation{InvitationID: "inv2", Role: "viewer"})
		case "DELETE":
			assert.Equal(t, "/space/spc1/invitation/link/inv1", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	invitations, err := client.Spaces().ListInvitations(context.Background(), "spc1")
	require.NoError(t, err)
	require.Len(t, invitations, 1)
	assert.Equal(t, "inv1", invitations[0].InvitationID)

	created, err := client.Spaces().CreateInvitation(context.Background(), "spc1", "viewer")
	require.NoError(t, err)
	assert.Equal(t, "inv2", created.InvitationID)

	err = client.Spaces().DeleteInvitation(context.Background(), "spc1", "inv1")
	require.NoError(t, err)
}

func TestSpacesClient_Collaborators(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/space/spc1/collaborators", r.URL.Path)

		switch r.Method {
		case "GET":
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"collaborators": []teable.Collaborator{
					{UserID: "usr1", UserName: "Alice", Role: "owner"},
				},
			})
		case "PATCH":
			var body map[string]string

			err := json.NewDecoder(r.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "usr1", body["userId"])
			assert.Equal(t, "editor", body["role"])
			w.WriteHeader(http.StatusOK)
		case "DELETE":
			var body map[string]string

			err := json.NewDecoder(r.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "usr1", body["userId"])
			w.WriteHeader(http.StatusOK)
		}
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	collaborators, err := client.Spaces().ListCollaborators(context.Background(), "spc1")
	require.NoError(t, err)
	require.Len(t, collaborators, 1)
	assert.Equal(t, "usr1", collaborators[0].UserID)

	err = client.Spaces().UpdateCollaborator(context.Background(), "spc1", "usr1", "editor")
	require.NoError(t, err)

	err = client.Spaces().DeleteCollaborator(context.Background(), "spc1", "usr1")
	require.NoError(t, err)
}

func TestSpacesClient_Validation(t *testing.T) {
	client := NewTestClient("http://unused")

	_, err := client.Spaces().Get(context.Background(), "")
	require.ErrorIs(t, err, teable.ErrSpaceIDRequired)

	err = client.Spaces().DeleteInvitation(context.Background(), "spc1", "")
	require.Error(t, err)
	assert.True(t, teable.IsValidation(err))
}
