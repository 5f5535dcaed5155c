package client

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/url"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// RecordsClient implements teable.RecordsClient. Records are not cached: the
// record surface is too volatile for explicit invalidation to be safe.
type RecordsClient struct {
	httpClient *http.Client
}

// NewRecordsClient creates a new records client.
func NewRecordsClient(httpClient *http.Client) *RecordsClient {
	return &RecordsClient{httpClient: httpClient}
}

// List implements teable.RecordsClient.List.
func (c *RecordsClient) List(ctx context.Context, tableID string, query *teable.RecordQuery) ([]teable.Record, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	var values url.Values

	if query != nil {
		if err := query.Validate(); err != nil {
			return nil, err
		}

		values = query.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("/table/%s/record", tableID), values)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}

	var result teable.RecordsResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing records response: %w", err)
	}

	return result.Records, nil
}

// Get implements teable.RecordsClient.Get.
func (c *RecordsClient) Get(ctx context.Context, tableID, recordID string) (*teable.Record, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if recordID == "" {
		return nil, teable.ErrRecordIDRequired
	}

	path := fmt.Sprintf("/table/%s/record/%s", tableID, recordID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting record: %w", err)
	}

	var record teable.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

// Status implements teable.RecordsClient.Status.
func (c *RecordsClient) Status(ctx context.Context, tableID, recordID string) (*teable.RecordStatus, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if recordID == "" {
		return nil, teable.ErrRecordIDRequired
	}

	path := fmt.Sprintf("/table/%s/record/%s/status", tableID, recordID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting record status: %w", err)
	}

	var status teable.RecordStatus
	if err := json.Unmarshal(resp.Body, &status); err != nil {
		return nil, fmt.Errorf("parsing record status response: %w", err)
	}

	return &status, nil
}

// Create implements teable.RecordsClient.Create. The API only exposes a bulk
// create endpoint, so a single record rides in a one-element batch.
func (c *RecordsClient) Create(ctx context.Context, tableID string, fields map[string]interface{}) (*teable.Record, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	request := &teable.RecordCreateRequest{
		Records: []teable.RecordFields{{Fields: fields}},
	}

	records, err := c.BatchCreate(ctx, tableID, request)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, &teable.APIError{Message: "create returned no records"}
	}

	return &records[0], nil
}

// Update implements teable.RecordsClient.Update.
func (c *RecordsClient) Update(ctx context.Context, tableID, recordID string, fields map[string]interface{}) (*teable.Record, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if recordID == "" {
		return nil, teable.ErrRecordIDRequired
	}

	request := &teable.RecordUpdateRequest{
		Record: teable.RecordFields{Fields: fields},
	}

	path := fmt.Sprintf("/table/%s/record/%s", tableID, recordID)

	resp, err := c.httpClient.Patch(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating record: %w", err)
	}

	var record teable.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

// Delete implements teable.RecordsClient.Delete.
func (c *RecordsClient) Delete(ctx context.Context, tableID, recordID string) error {
	if tableID == "" {
		return teable.ErrTableIDRequired
	}

	if recordID == "" {
		return teable.ErrRecordIDRequired
	}

	path := fmt.Sprintf("/table/%s/record/%s", tableID, recordID)
	if _, err := c.httpClient.Delete(ctx, path, nil); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	return nil
}

// BatchCreate implements teable.RecordsClient.BatchCreate.
func (c *RecordsClient) BatchCreate(ctx context.Context, tableID string, request *teable.RecordCreateRequest) ([]teable.Record, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if request == nil || len(request.Records) == 0 {
		return nil, teable.NewValidationError("at least one record is required")
	}

	resp, err := c.httpClient.Post(ctx, fmt.Sprintf("/table/%s/record", tableID), request)
	if err != nil {
		return nil, fmt.Errorf("creating records: %w", err)
	}

	var result teable.RecordsResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing records response: %w", err)
	}

	return result.Records, nil
}

// BatchUpdate implements teable.RecordsClient.BatchUpdate.
func (c *RecordsClient) BatchUpdate(ctx context.Context, tableID string, request *teable.RecordBatchUpdateRequest) ([]teable.Record, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if request == nil || len(request.Records) == 0 {
		return nil, teable.NewValidationError("at least one record is required")
	}

	resp, err := c.httpClient.Patch(ctx, fmt.Sprintf("/table/%s/record", tableID), request)
	if err != nil {
		return nil, fmt.Errorf("updating records: %w", err)
	}

	var records []teable.Record
	if err := json.Unmarshal(resp.Body, &records); err != nil {
		return nil, fmt.Errorf("parsing records response: %w", err)
	}

	return records, nil
}

// BatchDelete implements teable.RecordsClient.BatchDelete. Record IDs travel
// as repeated query parameters, matching the API's DELETE contract.
func (c *RecordsClient) BatchDelete(ctx context.Context, tableID string, recordIDs []string) error {
	if tableID == "" {
		return teable.ErrTableIDRequired
	}

	if len(recordIDs) == 0 {
		return teable.NewValidationError("at least one record ID is required")
	}

	query := url.Values{}
	for _, id := range recordIDs {
		query.Add("recordIds", id)
	}

	req := &http.Request{
		Method: nethttp.MethodDelete,
		Path:   fmt.Sprintf("/table/%s/record", tableID),
		Query:  query,
	}

	if _, err := c.httpClient.Do(ctx, req); err != nil {
		return fmt.Errorf("deleting records: %w", err)
	}

	return nil
}
