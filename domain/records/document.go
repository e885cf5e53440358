package records

import (
	"strings"
	"time"
)

// DocumentStatus represents the processing state of an uploaded document
type DocumentStatus string

const (
	DocumentUploaded   DocumentStatus = "uploaded"
	DocumentProcessing DocumentStatus = "processing"
	DocumentCompleted  DocumentStatus = "completed"
	DocumentError      DocumentStatus = "error"
)

// Document is one uploaded tender document.
//
// Filename is the name the user uploaded under and the name shown back to
// them (including inside downloaded archives). SavedFilename is the name the
// server stored the bytes under and the name file retrieval must use; when
// it is missing the last segment of FilePath stands in.
type Document struct {
	ID            string         `json:"id"`
	TenderID      string         `json:"tender_id"`
	DocumentType  string         `json:"document_type"`
	Filename      string         `json:"filename"`
	FilePath      string         `json:"file_path"`
	SavedFilename string         `json:"saved_filename,omitempty"`
	FileSize      int64          `json:"file_size"`
	UploadedAt    time.Time      `json:"uploaded_at"`
	Status        DocumentStatus `json:"status"`
}

// RecordID implements Record
func (d Document) RecordID() string {
	return d.ID
}

// StorageName returns the name to retrieve the document's bytes under:
// the server-assigned stored name, else the last segment of the stored
// path, else the original filename. The server records Windows-style
// paths, so both separators are handled.
func (d Document) StorageName() string {
	if d.SavedFilename != "" {
		return d.SavedFilename
	}
	if d.FilePath != "" {
		if name := lastPathSegment(d.FilePath); name != "" {
			return name
		}
	}
	return d.Filename
}

func lastPathSegment(path string) string {
	if i := strings.LastIndexAny(path, `\/`); i >= 0 {
		return path[i+1:]
	}
	return path
}
