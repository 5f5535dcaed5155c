// Package http implements the transport core: every outbound API call passes
// through Client.Do, which owns authentication header injection, rate-limit
// tracking, the 429 retry loop, and the mapping of outcomes onto the typed
// error set in pkg/teable.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/teable-client/internal/constants"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

const defaultUserAgent = "teable-client-go/1.0"

// Request describes a single API call. Body is JSON-marshaled; RawBody, when
// set, is sent verbatim (multipart uploads) and suppresses the JSON
// Content-Type default. Headers override any default header.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	RawBody []byte
	Headers map[string]string
}

// Response is the outcome of a successful call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client issues every outbound request for one Teable client instance. The
// underlying connection pool is shared across calls; retry policy for 429
// responses lives entirely in Do (the retryablehttp client's own retries are
// disabled so there is a single retry authority).
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter *RateLimiter
	userAgent   string
	logger      teable.Logger
	debug       bool
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request network timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetryConfig bounds 429 retries and sets the delay between them.
func WithRetryConfig(maxRetries int, retryDelay time.Duration) Option {
	return func(c *Client) {
		c.rateLimiter = NewRateLimiter(&maxRetries, &retryDelay)
	}
}

// WithRateLimiter replaces the rate-limit tracker.
func WithRateLimiter(limiter *RateLimiter) Option {
	return func(c *Client) {
		c.rateLimiter = limiter
	}
}

// WithLogger sets the structured logger used for debug output.
func WithLogger(logger teable.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a transport client for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil

	// Do owns all retry decisions; every response, 429 and 5xx included,
	// must come back so the retry loop and classifier can see it.
	retryClient.CheckRetry = func(_ context.Context, _ *http.Response, _ error) (bool, error) {
		return false, nil
	}

	standard := retryClient.StandardClient()
	standard.Timeout = constants.DefaultHTTPTimeout

	maxRetries := constants.DefaultRetryMax
	retryDelay := constants.DefaultRetryDelay

	client := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		apiKey:      apiKey,
		httpClient:  standard,
		rateLimiter: NewRateLimiter(&maxRetries, &retryDelay),
		userAgent:   defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RateLimiter exposes the tracker, mainly for callers that surface budget
// information.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// Do executes a request. Exactly one of a parsed Response or a typed error
// results from every call: 401 maps to AuthenticationError, 404 to
// ResourceNotFoundError, 429 to a bounded retry loop ending in
// RateLimitError, any other non-2xx to APIError, and transport failures to
// NetworkError. Only 429 responses are retried.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := c.rateLimiter.Check(); err != nil {
		return nil, err
	}

	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, fmt.Errorf("building request URL: %w", err)
	}

	bodyBytes, contentType, err := c.encodeBody(req)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	for retries := 0; ; {
		httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(bodyBytes))
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}

		c.setHeaders(httpReq, req, contentType)
		c.logRequest(req, fullURL, retries)

		httpResp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, &teable.NetworkError{Message: "request failed", Err: err}
		}

		respBody, err := io.ReadAll(httpResp.Body)
		_ = httpResp.Body.Close()

		if err != nil {
			return nil, &teable.NetworkError{Message: "reading response body", Err: err}
		}

		c.rateLimiter.Update(
			httpResp.Header.Get(constants.HeaderRateLimitRemaining),
			httpResp.Header.Get(constants.HeaderRateLimitReset),
		)

		c.logResponse(req, httpResp.StatusCode, len(respBody))

		if httpResp.StatusCode == http.StatusTooManyRequests {
			resetAt := parseResetHeader(httpResp.Header.Get(constants.HeaderRateLimitReset))

			retry, err := c.rateLimiter.Handle429(retries, resetAt)
			if err != nil {
				return nil, err
			}

			if retry {
				retries++

				continue
			}
		}

		return c.classify(req, httpResp, respBody)
	}
}

// classify maps a terminal response onto a Response or one typed error.
func (c *Client) classify(req *Request, httpResp *http.Response, body []byte) (*Response, error) {
	status := httpResp.StatusCode

	if status >= 200 && status < 300 {
		return &Response{
			StatusCode: status,
			Headers:    httpResp.Header,
			Body:       body,
		}, nil
	}

	switch status {
	case http.StatusUnauthorized:
		return nil, &teable.AuthenticationError{
			APIError: teable.APIError{
				Message:    "authentication failed",
				StatusCode: status,
				Body:       string(body),
			},
		}
	case http.StatusNotFound:
		return nil, &teable.ResourceNotFoundError{
			APIError: teable.APIError{
				Message:    "resource not found",
				StatusCode: status,
				Body:       string(body),
			},
			ResourceType: req.Path,
			ResourceID:   req.Query.Encode(),
		}
	default:
		return nil, &teable.APIError{
			Message:    fmt.Sprintf("HTTP %d: %s", status, string(body)),
			StatusCode: status,
			Body:       string(body),
		}
	}
}

func (c *Client) buildURL(req *Request) (string, error) {
	full := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")

	parsed, err := url.Parse(full)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", full, err)
	}

	if len(req.Query) > 0 {
		parsed.RawQuery = req.Query.Encode()
	}

	return parsed.String(), nil
}

// encodeBody returns the request payload and the Content-Type it implies.
func (c *Client) encodeBody(req *Request) ([]byte, string, error) {
	if req.RawBody != nil {
		return req.RawBody, "", nil
	}

	if req.Body == nil {
		return nil, "", nil
	}

	encoded, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling JSON body: %w", err)
	}

	return encoded, "application/json", nil
}

func (c *Client) setHeaders(httpReq *http.Request, req *Request, contentType string) {
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Caller headers win over defaults (multipart uploads, binary downloads).
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

func (c *Client) logRequest(req *Request, fullURL string, retries int) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("api request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
		"retry":  retries,
	})
}

func (c *Client) logResponse(req *Request, status, size int) {
	if !c.debug || c.logger == nil {
		return
	}

	c.logger.Debug("api response", map[string]interface{}{
		"method": req.Method,
		"path":   req.Path,
		"status": status,
		"bytes":  size,
	})
}

// parseResetHeader reads the reset header as epoch seconds, tolerating
// fractional values. Malformed or missing headers yield zero.
func parseResetHeader(value string) int64 {
	if value == "" {
		return 0
	}

	if parsed, err := strconv.ParseFloat(value, 64); err == nil {
		return int64(parsed)
	}

	return 0
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Query: query})
}

// PostRaw issues a POST with a caller-encoded body, e.g. multipart form data.
func (c *Client) PostRaw(ctx context.Context, path string, contentType string, body []byte) (*Response, error) {
	return c.Do(ctx, &Request{
		Method:  http.MethodPost,
		Path:    path,
		RawBody: body,
		Headers: map[string]string{"Content-Type": contentType},
	})
}

// GetBinary issues a GET for a raw byte stream (file download).
func (c *Client) GetBinary(ctx context.Context, path string, query url.Values) ([]byte, error) {
	resp, err := c.Do(ctx, &Request{
		Method:  http.MethodGet,
		Path:    path,
		Query:   query,
		Headers: map[string]string{"Accept": "application/octet-stream"},
	})
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}
