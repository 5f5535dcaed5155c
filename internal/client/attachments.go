package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/url"

	"github.com/fivetwenty-io/teable-client/internal/http"
	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

// AttachmentsClient implements teable.AttachmentsClient.
type AttachmentsClient struct {
	httpClient *http.Client
}

// NewAttachmentsClient creates a new attachments client.
func NewAttachmentsClient(httpClient *http.Client) *AttachmentsClient {
	return &AttachmentsClient{httpClient: httpClient}
}

// Upload implements teable.AttachmentsClient.Upload, sending file bytes as a
// multipart form to the record's attachment field.
func (c *AttachmentsClient) Upload(ctx context.Context, tableID, recordID, fieldID, filename string, data []byte) (*teable.Record, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if recordID == "" {
		return nil, teable.ErrRecordIDRequired
	}

	if fieldID == "" {
		return nil, teable.ErrFieldIDRequired
	}

	if len(data) == 0 {
		return nil, teable.NewValidationError("file data is required")
	}

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("creating multipart form: %w", err)
	}

	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("writing multipart form: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart form: %w", err)
	}

	path := fmt.Sprintf("/table/%s/record/%s/%s/uploadAttachment", tableID, recordID, fieldID)

	resp, err := c.httpClient.PostRaw(ctx, path, writer.FormDataContentType(), buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("uploading attachment: %w", err)
	}

	var record teable.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

// UploadViaURL implements teable.AttachmentsClient.UploadViaURL, letting the
// server fetch the file itself.
func (c *AttachmentsClient) UploadViaURL(ctx context.Context, tableID, recordID, fieldID, fileURL string) (*teable.Record, error) {
	if tableID == "" {
		return nil, teable.ErrTableIDRequired
	}

	if recordID == "" {
		return nil, teable.ErrRecordIDRequired
	}

	if fieldID == "" {
		return nil, teable.ErrFieldIDRequired
	}

	if fileURL == "" {
		return nil, teable.NewValidationError("file URL is required")
	}

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("fileUrl", fileURL); err != nil {
		return nil, fmt.Errorf("creating multipart form: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart form: %w", err)
	}

	path := fmt.Sprintf("/table/%s/record/%s/%s/uploadAttachment", tableID, recordID, fieldID)

	resp, err := c.httpClient.PostRaw(ctx, path, writer.FormDataContentType(), buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("uploading attachment: %w", err)
	}

	var record teable.Record
	if err := json.Unmarshal(resp.Body, &record); err != nil {
		return nil, fmt.Errorf("parsing record response: %w", err)
	}

	return &record, nil
}

// Notify implements teable.AttachmentsClient.Notify, fetching metadata for
// an uploaded file.
func (c *AttachmentsClient) Notify(ctx context.Context, token, filename string) (*teable.Attachment, error) {
	if token == "" {
		return nil, teable.NewValidationError("attachment token is required")
	}

	var query url.Values
	if filename != "" {
		query = url.Values{"filename": {filename}}
	}

	req := &http.Request{
		Method: "POST",
		Path:   fmt.Sprintf("/attachments/notify/%s", token),
		Query:  query,
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("notifying attachment: %w", err)
	}

	var attachment teable.Attachment
	if err := json.Unmarshal(resp.Body, &attachment); err != nil {
		return nil, fmt.Errorf("parsing attachment response: %w", err)
	}

	return &attachment, nil
}

// Download implements teable.AttachmentsClient.Download, returning the raw
// file bytes.
func (c *AttachmentsClient) Download(ctx context.Context, token, filename string) ([]byte, error) {
	if token == "" {
		return nil, teable.NewValidationError("attachment token is required")
	}

	var query url.Values
	if filename != "" {
		query = url.Values{"filename": {filename}}
	}

	data, err := c.httpClient.GetBinary(ctx, fmt.Sprintf("/attachments/%s", token), query)
	if err != nil {
		return nil, fmt.Errorf("downloading attachment: %w", err)
	}

	return data, nil
}
