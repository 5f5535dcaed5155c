// Package client provides the concrete implementation of the teable.Client
// interface: resource managers layered over the shared HTTP transport and
// resource caches.
package client

import (
	"fmt"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// Client implements the teable.Client interface.
type Client struct {
	httpClient *http.Client
	config     *teable.Config

	tableCache *teable.ResourceCache[*teable.Table]
	fieldCache *teable.ResourceCache[*teable.Field]
	viewCache  *teable.ResourceCache[*teable.View]

	tables      teable.TablesClient
	records     teable.RecordsClient
	fields      teable.FieldsClient
	views       teable.ViewsClient
	spaces      teable.SpacesClient
	bases       teable.BasesClient
	attachments teable.AttachmentsClient
	auth        teable.AuthClient
	comments    teable.CommentsClient
}

// New creates a new Teable API client. The config is validated once; the
// normalized API URL and credential are then immutable for the client's
// lifetime.
func New(config *teable.Config) (*Client, error) {
	if config == nil {
		return nil, teable.ErrConfigRequired
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	httpOpts := buildHTTPOptions(config)
	httpClient := http.NewClient(config.APIURL, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		config:     config,
		tableCache: teable.NewResourceCache[*teable.Table](),
		fieldCache: teable.NewResourceCache[*teable.Field](),
		viewCache:  teable.NewResourceCache[*teable.View](),
	}

	client.initializeResourceClients()

	return client, nil
}

// buildHTTPOptions translates config into transport options.
func buildHTTPOptions(config *teable.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithTimeout(config.Timeout),
		http.WithRateLimiter(http.NewRateLimiter(config.MaxRetries, config.RetryDelay)),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.tables = NewTablesClient(c.httpClient, c.tableCache)
	c.records = NewRecordsClient(c.httpClient)
	c.fields = NewFieldsClient(c.httpClient, c.fieldCache)
	c.views = NewViewsClient(c.httpClient, c.viewCache)
	c.spaces = NewSpacesClient(c.httpClient)
	c.bases = NewBasesClient(c.httpClient)
	c.attachments = NewAttachmentsClient(c.httpClient)
	c.auth = NewAuthClient(c.httpClient)
	c.comments = NewCommentsClient(c.httpClient)
}

// Tables implements teable.Client.Tables.
func (c *Client) Tables() teable.TablesClient {
	return c.tables
}

// Records implements teable.Client.Records.
func (c *Client) Records() teable.RecordsClient {
	return c.records
}

// Fields implements teable.Client.Fields.
func (c *Client) Fields() teable.FieldsClient {
	return c.fields
}

// Views implements teable.Client.Views.
func (c *Client) Views() teable.ViewsClient {
	return c.views
}

// Spaces implements teable.Client.Spaces.
func (c *Client) Spaces() teable.SpacesClient {
	return c.spaces
}

// Bases implements teable.Client.Bases.
func (c *Client) Bases() teable.BasesClient {
	return c.bases
}

// Attachments implements teable.Client.Attachments.
func (c *Client) Attachments() teable.AttachmentsClient {
	return c.attachments
}

// Auth implements teable.Client.Auth.
func (c *Client) Auth() teable.AuthClient {
	return c.auth
}

// Comments implements teable.Client.Comments.
func (c *Client) Comments() teable.CommentsClient {
	return c.comments
}

// ClearCache implements teable.Client.ClearCache.
func (c *Client) ClearCache() {
	c.tableCache.ClearAll()
	c.fieldCache.ClearAll()
	c.viewCache.ClearAll()
}
