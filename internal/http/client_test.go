package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	teablehttp "github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/table/tbl1", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Bearer teable_test-key", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "tbl1", "name": "Projects"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key")

		req := &teablehttp.Request{
			Method: "GET",
			Path:   "/table/tbl1",
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "tbl1", result["id"])
		assert.Equal(t, "Projects", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/table/tbl1/record", request.URL.Path)
			assert.Equal(t, "50", request.URL.Query().Get("take"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key")

		req := &teablehttp.Request{
			Method: "GET",
			Path:   "/table/tbl1/record",
			Query:  url.Values{"take": []string{"50"}},
		}

		resp, err := client.Do(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with JSON body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Equal(t, "Tasks", body["name"])

			writer.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "spc1"})
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key")

		resp, err := client.Post(context.Background(), "/space", map[string]string{"name": "Tasks"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("empty response body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key")

		resp, err := client.Post(context.Background(), "/auth/signout", nil)
		require.NoError(t, err)
		assert.Empty(t, resp.Body)
	})

	t.Run("custom headers override defaults", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "application/octet-stream", request.Header.Get("Accept"))
			_, _ = writer.Write([]byte{0x1, 0x2, 0x3})
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key")

		data, err := client.GetBinary(context.Background(), "/attachments/tok1", nil)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x1, 0x2, 0x3}, data)
	})
}

func TestClient_ErrorMapping(t *testing.T) {
	t.Parallel()
	t.Run("401 maps to authentication error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_bad-key")

		_, err := client.Get(context.Background(), "/auth/user", nil)
		require.Error(t, err)
		assert.True(t, teable.IsAuthentication(err))
		assert.False(t, teable.IsNotFound(err))
	})

	t.Run("404 maps to resource not found with identity", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key")

		_, err := client.Get(context.Background(), "/table/missing", url.Values{"viewId": []string{"viw1"}})
		require.Error(t, err)

		notFound := &teable.ResourceNotFoundError{}
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "/table/missing", notFound.ResourceType)
		assert.Equal(t, "viewId=viw1", notFound.ResourceID)
	})

	t.Run("other non-2xx maps to API error with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = writer.Write([]byte(`{"message":"name too long"}`))
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key")

		_, err := client.Post(context.Background(), "/space", map[string]string{"name": "x"})
		require.Error(t, err)

		apiErr := &teable.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 422, apiErr.StatusCode)
		assert.Contains(t, apiErr.Body, "name too long")
	})

	t.Run("connection failure maps to network error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key")

		_, err := client.Get(context.Background(), "/space", nil)
		require.Error(t, err)
		assert.True(t, teable.IsNetwork(err))
		assert.False(t, teable.IsRateLimit(err))
	})
}

func TestClient_RateLimitHeaders(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("X-RateLimit-Remaining", "17")
		writer.Header().Set("X-RateLimit-Reset", "1700000123")
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := teablehttp.NewClient(server.URL, "teable_test-key")

	_, err := client.Get(context.Background(), "/space", nil)
	require.NoError(t, err)

	assert.Equal(t, 17, client.RateLimiter().Remaining())
	assert.Equal(t, int64(1700000123), client.RateLimiter().ResetTime())
}

func TestClient_Retry429(t *testing.T) {
	t.Parallel()
	t.Run("retries then succeeds", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "/table/tbl1/record", request.URL.Path)

			var body map[string]interface{}

			err := json.NewDecoder(request.Body).Decode(&body)
			require.NoError(t, err)
			assert.Contains(t, body, "records")

			if attempts.Add(1) <= 2 {
				writer.Header().Set("X-RateLimit-Remaining", "0")
				writer.Header().Set("X-RateLimit-Reset", "1700000000")
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "rec1"})
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key",
			teablehttp.WithRetryConfig(2, 10*time.Millisecond))

		payload := map[string]interface{}{
			"records": []map[string]interface{}{{"fields": map[string]string{"Name": "a"}}},
		}

		start := time.Now()
		resp, err := client.Post(context.Background(), "/table/tbl1/record", payload)
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Equal(t, int32(3), attempts.Load())
		assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "rec1", result["id"])
	})

	t.Run("exhausted retries surface rate limit error", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.Header().Set("X-RateLimit-Reset", "1700000042")
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key",
			teablehttp.WithRetryConfig(1, time.Millisecond))

		_, err := client.Get(context.Background(), "/space", nil)
		require.Error(t, err)

		rateErr := &teable.RateLimitError{}
		require.ErrorAs(t, err, &rateErr)
		assert.Equal(t, int64(1700000042), rateErr.ResetTime)
		// Initial attempt plus exactly one retry.
		assert.Equal(t, int32(2), attempts.Load())
	})

	t.Run("non-429 statuses are never retried", func(t *testing.T) {
		t.Parallel()

		var attempts atomic.Int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"message":"boom"}`))
		}))
		defer server.Close()

		client := teablehttp.NewClient(server.URL, "teable_test-key",
			teablehttp.WithRetryConfig(3, time.Millisecond))

		_, err := client.Get(context.Background(), "/space", nil)
		require.Error(t, err)
		assert.Equal(t, int32(1), attempts.Load())

		// A 5xx is a terminal API error, not a transport failure.
		apiErr := &teable.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
		assert.False(t, teable.IsNetwork(err))
	})
}
