// Package history defines the immutable audit entries the client keeps for
// document downloads and reminder actions. Entries are created once, never
// updated, and removable only through a bulk clear.
package history

import (
	"time"

	"github.com/google/uuid"

	"chainfly-client/domain/records"
)

// Entry is any audit record a log can hold
type Entry interface {
	// EntryID returns the entry's unique identifier
	EntryID() string
}

// DocumentRef is the snapshot of a document captured in a download entry
type DocumentRef struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	TenderID     string `json:"tender_id"`
	DocumentType string `json:"document_type"`
}

// RefFor snapshots the fields of a document that download history keeps
func RefFor(doc records.Document) DocumentRef {
	return DocumentRef{
		ID:           doc.ID,
		Filename:     doc.Filename,
		TenderID:     doc.TenderID,
		DocumentType: doc.DocumentType,
	}
}

// DownloadEntry records one archive download. Documents lists the documents
// that were selected for the archive, not the subset that survived
// per-document fetch failures.
type DownloadEntry struct {
	ID           string        `json:"id"`
	ZipName      string        `json:"zip_name"`
	DownloadedAt time.Time     `json:"download_date"`
	Documents    []DocumentRef `json:"documents"`
}

// EntryID implements Entry
func (e DownloadEntry) EntryID() string {
	return e.ID
}

// NewDownloadEntry creates a download entry for the given archive name and
// selected documents
func NewDownloadEntry(zipName string, docs []records.Document, at time.Time) DownloadEntry {
	refs := make([]DocumentRef, 0, len(docs))
	for _, doc := range docs {
		refs = append(refs, RefFor(doc))
	}
	return DownloadEntry{
		ID:           uuid.New().String(),
		ZipName:      zipName,
		DownloadedAt: at,
		Documents:    refs,
	}
}

// ReminderAction tags what happened to a reminder
type ReminderAction string

const (
	ReminderCreated   ReminderAction = "created"
	ReminderSent      ReminderAction = "sent"
	ReminderCancelled ReminderAction = "cancelled"
	ReminderUpdated   ReminderAction = "updated"
)

// ReminderDetails is the snapshot of a reminder at the time of the action
type ReminderDetails struct {
	TenderID     string `json:"tender_id"`
	ReminderType string `json:"reminder_type"`
	DueDate      string `json:"due_date"`
	Email        string `json:"email"`
	Status       string `json:"status"`
}

// ReminderEntry records one action taken on a reminder
type ReminderEntry struct {
	ID         string          `json:"id"`
	ReminderID string          `json:"reminder_id"`
	Action     ReminderAction  `json:"action"`
	Timestamp  time.Time       `json:"timestamp"`
	Details    ReminderDetails `json:"details"`
}

// EntryID implements Entry
func (e ReminderEntry) EntryID() string {
	return e.ID
}

// NewReminderEntry creates an audit entry snapshotting the reminder's
// current details
func NewReminderEntry(r records.Reminder, action ReminderAction, at time.Time) ReminderEntry {
	return ReminderEntry{
		ID:         uuid.New().String(),
		ReminderID: r.ID,
		Action:     action,
		Timestamp:  at,
		Details: ReminderDetails{
			TenderID:     r.TenderID,
			ReminderType: r.ReminderType,
			DueDate:      r.DueDate.Format(time.RFC3339),
			Email:        r.Email,
			Status:       string(r.Status),
		},
	}
}
