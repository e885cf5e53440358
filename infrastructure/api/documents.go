package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"chainfly-client/application/ports"
	"chainfly-client/domain/records"
	pkgerrors "chainfly-client/pkg/errors"
	"chainfly-client/pkg/utils"
)

// documentDTO is the wire shape of a stored document. uploaded_at is a
// server epoch timestamp in seconds.
type documentDTO struct {
	ID            string  `json:"id"`
	TenderID      string  `json:"tender_id"`
	DocumentType  string  `json:"document_type"`
	Filename      string  `json:"filename"`
	FilePath      string  `json:"file_path"`
	SavedFilename string  `json:"saved_filename"`
	FileSize      int64   `json:"file_size"`
	UploadedAt    float64 `json:"uploaded_at"`
	Status        string  `json:"status"`
}

type documentListResponse struct {
	Documents []documentDTO `json:"documents"`
}

type uploadResponse struct {
	FilePath string `json:"file_path"`
}

// UploadDocument sends one file as multipart form data with its tender id
// and document type
func (c *Client) UploadDocument(ctx context.Context, upload ports.UploadRequest) (ports.UploadResult, error) {
	body := &bytes.Buffer{}
	form := multipart.NewWriter(body)

	part, err := form.CreateFormFile("file", upload.Filename)
	if err != nil {
		return ports.UploadResult{}, pkgerrors.NewInternalError("failed to build upload form").WithCause(err)
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return ports.UploadResult{}, pkgerrors.NewInternalError("failed to read upload content").WithCause(err)
	}
	if err := form.WriteField("tender_id", upload.TenderID); err != nil {
		return ports.UploadResult{}, pkgerrors.NewInternalError("failed to build upload form").WithCause(err)
	}
	if err := form.WriteField("document_type", upload.DocumentType); err != nil {
		return ports.UploadResult{}, pkgerrors.NewInternalError("failed to build upload form").WithCause(err)
	}
	if err := form.Close(); err != nil {
		return ports.UploadResult{}, pkgerrors.NewInternalError("failed to finalize upload form").WithCause(err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/documents/upload", nil, body)
	if err != nil {
		return ports.UploadResult{}, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	var resp uploadResponse
	if err := c.do(req, &resp); err != nil {
		return ports.UploadResult{}, err
	}
	return ports.UploadResult{FilePath: resp.FilePath}, nil
}

// ListDocuments retrieves every stored document
func (c *Client) ListDocuments(ctx context.Context) ([]records.Document, error) {
	var resp documentListResponse
	if err := c.getJSON(ctx, "/documents/list", nil, &resp); err != nil {
		return nil, err
	}

	documents := make([]records.Document, 0, len(resp.Documents))
	for _, dto := range resp.Documents {
		documents = append(documents, records.Document{
			ID:            dto.ID,
			TenderID:      dto.TenderID,
			DocumentType:  dto.DocumentType,
			Filename:      dto.Filename,
			FilePath:      dto.FilePath,
			SavedFilename: dto.SavedFilename,
			FileSize:      dto.FileSize,
			UploadedAt:    utils.FromUnixSeconds(int64(dto.UploadedAt)),
			Status:        records.DocumentStatus(dto.Status),
		})
	}
	return documents, nil
}

// FetchFile retrieves a stored file's raw bytes by its storage name
func (c *Client) FetchFile(ctx context.Context, storedFilename string) ([]byte, error) {
	if storedFilename == "" {
		return nil, pkgerrors.NewValidationError("stored filename is required")
	}
	return c.getBytes(ctx, "/files/"+url.PathEscape(storedFilename))
}
