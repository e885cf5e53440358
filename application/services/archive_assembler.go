package services

import (
	"archive/zip"
	"bytes"
	"context"

	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/domain/records"
	pkgerrors "chainfly-client/pkg/errors"
)

// Archive is one assembled zip blob ready to hand to the user
type Archive struct {
	// Filename is the archive name with the .zip extension applied
	Filename string

	// Data is the serialized archive
	Data []byte

	// Included lists the original filenames that made it into the archive
	Included []string

	// Failed lists the original filenames whose retrieval failed
	Failed []string
}

// Assembler bundles stored documents into downloadable zip archives.
// Retrieval uses each document's server-side storage name; entries inside
// the archive use the original uploaded filename, so the result looks like
// what the user uploaded.
type Assembler struct {
	files  ports.FileFetcher
	logger *zap.Logger
}

// NewAssembler creates an archive assembler
func NewAssembler(files ports.FileFetcher, logger *zap.Logger) *Assembler {
	return &Assembler{
		files:  files,
		logger: logger,
	}
}

// Assemble fetches each document and packages the results into one zip
// named "<name>.zip". A failed retrieval is logged and skipped: a partial
// archive is an acceptable outcome, not a pipeline failure. Only a failure
// to serialize the archive itself is returned as an error.
func (a *Assembler) Assemble(ctx context.Context, name string, docs []records.Document) (*Archive, error) {
	if name == "" {
		return nil, pkgerrors.NewValidationError("archive name is required")
	}

	buf := &bytes.Buffer{}
	zw := zip.NewWriter(buf)

	archive := &Archive{Filename: name + ".zip"}

	for _, doc := range docs {
		storageName := doc.StorageName()

		a.logger.Debug("fetching file for archive",
			zap.String("storedFilename", storageName),
			zap.String("filename", doc.Filename),
		)

		data, err := a.files.FetchFile(ctx, storageName)
		if err != nil {
			a.logger.Warn("skipping document after failed retrieval",
				zap.String("storedFilename", storageName),
				zap.String("filename", doc.Filename),
				zap.Error(err),
			)
			archive.Failed = append(archive.Failed, doc.Filename)
			continue
		}

		entry, err := zw.Create(doc.Filename)
		if err != nil {
			zw.Close()
			return nil, pkgerrors.NewInternalError("failed to create archive entry").WithCause(err)
		}
		if _, err := entry.Write(data); err != nil {
			zw.Close()
			return nil, pkgerrors.NewInternalError("failed to write archive entry").WithCause(err)
		}
		archive.Included = append(archive.Included, doc.Filename)
	}

	if err := zw.Close(); err != nil {
		return nil, pkgerrors.NewInternalError("failed to serialize archive").WithCause(err)
	}

	archive.Data = buf.Bytes()
	return archive, nil
}
