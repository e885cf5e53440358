// Package ports declares the interfaces the application layer consumes
// from infrastructure. The remote API is a port in hexagonal architecture:
// handlers and services never see the HTTP client directly.
package ports

import (
	"context"
	"io"

	"chainfly-client/domain/history"
	"chainfly-client/domain/records"
)

// TenderAPI reads tenders from the remote server
type TenderAPI interface {
	// ListTenders retrieves every tender
	ListTenders(ctx context.Context) ([]records.Tender, error)

	// SearchTenders retrieves tenders matching the server-side query
	SearchTenders(ctx context.Context, params map[string]string) ([]records.Tender, error)
}

// UploadRequest carries one file to the document upload endpoint
type UploadRequest struct {
	TenderID     string
	DocumentType string
	Filename     string
	Size         int64
	Content      io.Reader
}

// UploadResult is the server's answer to an upload
type UploadResult struct {
	// FilePath is the server-side storage path of the saved file
	FilePath string
}

// DocumentAPI manages documents on the remote server
type DocumentAPI interface {
	// UploadDocument sends one file as multipart form data
	UploadDocument(ctx context.Context, req UploadRequest) (UploadResult, error)

	// ListDocuments retrieves every stored document
	ListDocuments(ctx context.Context) ([]records.Document, error)
}

// FileFetcher retrieves a stored file's raw bytes by its storage name
type FileFetcher interface {
	FetchFile(ctx context.Context, storedFilename string) ([]byte, error)
}

// ReminderAPI manages reminders on the remote server
type ReminderAPI interface {
	// SetReminder creates a reminder; test routes the email on a short
	// schedule for verification
	SetReminder(ctx context.Context, reminder records.Reminder, test bool) error

	// ListReminders retrieves every reminder
	ListReminders(ctx context.Context) ([]records.Reminder, error)

	// DeleteReminder removes a reminder by id
	DeleteReminder(ctx context.Context, id string) error
}

// HistoryMirror persists audit entries of one kind to the remote store.
// Mirroring is best-effort: callers keep their local state regardless of
// the outcome here.
type HistoryMirror[E history.Entry] interface {
	// Save appends one entry remotely
	Save(ctx context.Context, entry E) error

	// List retrieves the remote store's current contents, newest first
	List(ctx context.Context) ([]E, error)

	// Clear deletes every remote entry
	Clear(ctx context.Context) error
}

// ArchiveSink hands a finished archive to the user
type ArchiveSink interface {
	// SaveArchive stores the archive blob under filename and returns the
	// location the user can reach it at
	SaveArchive(filename string, data []byte) (string, error)
}

// HealthAPI reports whether the remote server is reachable
type HealthAPI interface {
	Ping(ctx context.Context) bool
}
