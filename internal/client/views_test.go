package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

func TestViewsClient_Get(t *testing.T) {
	var requests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/table/tbl1/view/viw1", r.URL.Path)

		_ = json.NewEncoder(w).Encode(teable.View{ID: "viw1", Name: "Grid view", Type: "grid"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	view, err := client.Views().Get(context.Background(), "tbl1", "viw1")
	require.NoError(t, err)
	assert.Equal(t, "grid", view.Type)

	_, err = client.Views().Get(context.Background(), "tbl1", "viw1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), requests.Load())
}

func TestViewsClient_ListForTable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/table/tbl1/view", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]teable.View{
			{ID: "viw1", Name: "Grid view", Type: "grid"},
			{ID: "viw2", Name: "Kanban", Type: "kanban"},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	views, err := client.Views().ListForTable(context.Background(), "tbl1")
	require.NoError(t, err)
	require.Len(t, views, 2)

	cached, err := client.Views().Get(context.Background(), "tbl1", "viw2")
	require.NoError(t, err)
	assert.Equal(t, "kanban", cached.Type)
}

func TestViewsClient_Validation(t *testing.T) {
	client := NewTestClient("http://unused")

	_, err := client.Views().Get(context.Background(), "", "viw1")
	require.ErrorIs(t, err, teable.ErrTableIDRequired)

	_, err = client.Views().Get(context.Background(), "tbl1", "")
	require.ErrorIs(t, err, teable.ErrViewIDRequired)
}
