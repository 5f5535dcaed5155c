package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/teable-client/pkg/teable"
)

func TestAttachmentsClient_Upload(t *testing.T) {
	fileData := []byte("file contents")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/table/tbl1/record/rec1/fld1/uploadAttachment", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		err := r.ParseMultipartForm(1 << 20)
		require.NoError(t, err)

		file, header, err := r.FormFile("file")
		require.NoError(t, err)

		defer func() { _ = file.Close() }()

		assert.Equal(t, "report.pdf", header.Filename)

		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, fileData, uploaded)

		_ = json.NewEncoder(w).Encode(teable.Record{
			ID: "rec1",
			Fields: map[string]interface{}{
				"Files": []map[string]interface{}{{"name": "report.pdf"}},
			},
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	record, err := client.Attachments().Upload(context.Background(), "tbl1", "rec1", "fld1", "report.pdf", fileData)
	require.NoError(t, err)
	assert.Equal(t, "rec1", record.ID)
}

func TestAttachmentsClient_Upload_EmptyData(t *testing.T) {
	client := NewTestClient("http://unused")

	_, err := client.Attachments().Upload(context.Background(), "tbl1", "rec1", "fld1", "x.txt", nil)
	require.Error(t, err)
	assert.True(t, teable.IsValidation(err))
}

func TestAttachmentsClient_UploadViaURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/table/tbl1/record/rec1/fld1/uploadAttachment", r.URL.Path)

		err := r.ParseMultipartForm(1 << 20)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/report.pdf", r.FormValue("fileUrl"))

		_ = json.NewEncoder(w).Encode(teable.Record{ID: "rec1"})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	record, err := client.Attachments().UploadViaURL(context.Background(), "tbl1", "rec1", "fld1", "https://example.com/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "rec1", record.ID)
}

func TestAttachmentsClient_Notify(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/attachments/notify/tok1", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "report.pdf", r.URL.Query().Get("filename"))

		_ = json.NewEncoder(w).Encode(teable.Attachment{
			Token:    "tok1",
			Size:     1024,
			Mimetype: "application/pdf",
		})
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	attachment, err := client.Attachments().Notify(context.Background(), "tok1", "report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "tok1", attachment.Token)
	assert.Equal(t, int64(1024), attachment.Size)
}

func TestAttachmentsClient_Download(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/attachments/tok1", r.URL.Path)

		_, _ = w.Write([]byte("binary payload"))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	data, err := client.Attachments().Download(context.Background(), "tok1", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("binary payload"), data)

	_, err = client.Attachments().Download(context.Background(), "", "")
	require.Error(t, err)
	assert.True(t, teable.IsValidation(err))
}
