package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/application/services"
	"chainfly-client/application/session"
	"chainfly-client/domain/history"
	"chainfly-client/domain/records"
	pkgerrors "chainfly-client/pkg/errors"
	"chainfly-client/pkg/utils"
)

// DownloadDocumentsCommand bundles the selected documents into one named
// zip archive. The name is supplied without the .zip extension.
type DownloadDocumentsCommand struct {
	ZipName   string             `validate:"required"`
	Documents []records.Document `validate:"required,min=1"`
}

// Validate checks the command
func (c DownloadDocumentsCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DownloadResult reports where the archive landed and what it holds
type DownloadResult struct {
	// Location is where the sink stored the finished archive
	Location string

	// Archive is the assembled blob, including which documents survived
	Archive *services.Archive
}

// DownloadDocumentsHandler handles archive downloads
type DownloadDocumentsHandler struct {
	assembler *services.Assembler
	sink      ports.ArchiveSink
	session   *session.Session
	logger    *zap.Logger
}

// NewDownloadDocumentsHandler creates a new handler instance
func NewDownloadDocumentsHandler(
	assembler *services.Assembler,
	sink ports.ArchiveSink,
	sess *session.Session,
	logger *zap.Logger,
) *DownloadDocumentsHandler {
	return &DownloadDocumentsHandler{
		assembler: assembler,
		sink:      sink,
		session:   sess,
		logger:    logger,
	}
}

// Handle assembles the archive, saves it through the sink, and appends
// exactly one download-history entry. The entry records the documents that
// were selected, not the subset that survived fetch failures.
func (h *DownloadDocumentsHandler) Handle(ctx context.Context, cmd DownloadDocumentsCommand) (*DownloadResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	archive, err := h.assembler.Assemble(ctx, cmd.ZipName, cmd.Documents)
	if err != nil {
		return nil, err
	}

	location, err := h.sink.SaveArchive(archive.Filename, archive.Data)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "failed to save archive")
	}

	entry := history.NewDownloadEntry(cmd.ZipName, cmd.Documents, time.Now())
	if err := h.session.DownloadHistory.Append(ctx, entry); err != nil {
		h.logger.Warn("download history mirror failed", zap.Error(err))
	}

	h.logger.Info("archive downloaded",
		zap.String("filename", archive.Filename),
		zap.String("location", location),
		zap.Int("included", len(archive.Included)),
		zap.Int("failed", len(archive.Failed)),
	)

	return &DownloadResult{Location: location, Archive: archive}, nil
}
