// Package commands implements the state-changing operations of the client.
// Each file pairs a command struct (validated before any network call) with
// its handler, which talks to the remote API and applies the resulting
// store actions.
package commands

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/application/session"
	"chainfly-client/application/store"
	"chainfly-client/domain/records"
	pkgerrors "chainfly-client/pkg/errors"
	"chainfly-client/pkg/utils"
)

// FileInput is one file selected for upload
type FileInput struct {
	Filename string `validate:"required"`
	Size     int64
	Content  io.Reader
}

// UploadDocumentsCommand uploads one or more PDF documents for a tender
type UploadDocumentsCommand struct {
	TenderID     string      `validate:"required"`
	DocumentType string      `validate:"required"`
	Files        []FileInput `validate:"required,min=1"`
}

// Validate checks the command before any network call. Only PDF files are
// accepted.
func (c UploadDocumentsCommand) Validate() error {
	if err := utils.ValidateStruct(c); err != nil {
		return err
	}
	for _, file := range c.Files {
		if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
			return pkgerrors.NewValidationError(
				"file \"" + file.Filename + "\" is not a PDF. Only PDF files are allowed",
			)
		}
	}
	return nil
}

// UploadDocumentsHandler handles document uploads
type UploadDocumentsHandler struct {
	docs    ports.DocumentAPI
	session *session.Session
	logger  *zap.Logger
}

// NewUploadDocumentsHandler creates a new handler instance
func NewUploadDocumentsHandler(docs ports.DocumentAPI, sess *session.Session, logger *zap.Logger) *UploadDocumentsHandler {
	return &UploadDocumentsHandler{
		docs:    docs,
		session: sess,
		logger:  logger,
	}
}

// Handle uploads each file in turn, records it locally, then resynchronizes
// the document store from the server so local state matches exactly what
// was persisted
func (h *UploadDocumentsHandler) Handle(ctx context.Context, cmd UploadDocumentsCommand) ([]records.Document, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uploaded := make([]records.Document, 0, len(cmd.Files))
	for _, file := range cmd.Files {
		h.logger.Info("uploading document",
			zap.String("filename", file.Filename),
			zap.String("tenderID", cmd.TenderID),
			zap.String("documentType", cmd.DocumentType),
		)

		result, err := h.docs.UploadDocument(ctx, ports.UploadRequest{
			TenderID:     cmd.TenderID,
			DocumentType: cmd.DocumentType,
			Filename:     file.Filename,
			Size:         file.Size,
			Content:      file.Content,
		})
		if err != nil {
			return uploaded, pkgerrors.Wrap(err, "upload failed")
		}

		doc := records.Document{
			ID:            uuid.New().String(),
			TenderID:      cmd.TenderID,
			DocumentType:  cmd.DocumentType,
			Filename:      file.Filename,
			FilePath:      result.FilePath,
			SavedFilename: savedFilenameFrom(result.FilePath, file.Filename),
			FileSize:      file.Size,
			UploadedAt:    time.Now(),
			Status:        records.DocumentCompleted,
		}
		store.Apply(h.session.Documents, store.Add[records.Document]{Record: doc})
		uploaded = append(uploaded, doc)
	}

	// The server listing is authoritative; refresh so ids and paths match
	// what it actually stored. Failure here degrades freshness, not the
	// upload itself.
	if docs, err := h.docs.ListDocuments(ctx); err != nil {
		h.logger.Warn("failed to refresh documents after upload", zap.Error(err))
	} else {
		store.Apply(h.session.Documents, store.SetAll[records.Document]{Records: docs})
	}

	return uploaded, nil
}

// savedFilenameFrom extracts the storage name from the server's saved path,
// falling back to the uploaded filename
func savedFilenameFrom(filePath, fallback string) string {
	if i := strings.LastIndexAny(filePath, `\/`); i >= 0 && i+1 < len(filePath) {
		return filePath[i+1:]
	}
	if filePath != "" {
		return filePath
	}
	return fallback
}
