package api

import (
	"context"
	"time"

	"chainfly-client/domain/history"
)

// DownloadHistory is the remote mirror for download-history entries. It
// satisfies ports.HistoryMirror[history.DownloadEntry].
type DownloadHistory struct {
	client *Client
}

// DownloadHistory returns the download-history mirror backed by this client
func (c *Client) DownloadHistory() *DownloadHistory {
	return &DownloadHistory{client: c}
}

type downloadEntryDTO struct {
	ID           string                `json:"id"`
	ZipName      string                `json:"zip_name"`
	DownloadDate string                `json:"download_date"`
	Documents    []history.DocumentRef `json:"documents"`
}

type downloadHistoryResponse struct {
	Downloads []downloadEntryDTO `json:"downloads"`
}

// Save appends one download entry remotely
func (h *DownloadHistory) Save(ctx context.Context, entry history.DownloadEntry) error {
	dto := downloadEntryDTO{
		ID:           entry.ID,
		ZipName:      entry.ZipName,
		DownloadDate: entry.DownloadedAt.Format(time.RFC3339),
		Documents:    entry.Documents,
	}
	return h.client.postJSON(ctx, "/documents/download-history", nil, dto, nil)
}

// List retrieves the remote download history, newest first
func (h *DownloadHistory) List(ctx context.Context) ([]history.DownloadEntry, error) {
	var resp downloadHistoryResponse
	if err := h.client.getJSON(ctx, "/documents/download-history", nil, &resp); err != nil {
		return nil, err
	}

	entries := make([]history.DownloadEntry, 0, len(resp.Downloads))
	for _, dto := range resp.Downloads {
		entries = append(entries, history.DownloadEntry{
			ID:           dto.ID,
			ZipName:      dto.ZipName,
			DownloadedAt: parseAPITime(dto.DownloadDate),
			Documents:    dto.Documents,
		})
	}
	return entries, nil
}

// Clear deletes the remote download history
func (h *DownloadHistory) Clear(ctx context.Context) error {
	return h.client.deleteJSON(ctx, "/documents/download-history")
}

// ReminderHistory is the remote mirror for reminder audit entries. It
// satisfies ports.HistoryMirror[history.ReminderEntry].
type ReminderHistory struct {
	client *Client
}

// ReminderHistory returns the reminder-history mirror backed by this client
func (c *Client) ReminderHistory() *ReminderHistory {
	return &ReminderHistory{client: c}
}

type reminderEntryDTO struct {
	ID         string                  `json:"id"`
	ReminderID string                  `json:"reminder_id"`
	Action     string                  `json:"action"`
	Timestamp  string                  `json:"timestamp"`
	Details    history.ReminderDetails `json:"details"`
}

type reminderHistoryResponse struct {
	History []reminderEntryDTO `json:"history"`
}

// Save appends one reminder entry remotely
func (h *ReminderHistory) Save(ctx context.Context, entry history.ReminderEntry) error {
	dto := reminderEntryDTO{
		ID:         entry.ID,
		ReminderID: entry.ReminderID,
		Action:     string(entry.Action),
		Timestamp:  entry.Timestamp.Format(time.RFC3339),
		Details:    entry.Details,
	}
	return h.client.postJSON(ctx, "/reminders/history", nil, dto, nil)
}

// List retrieves the remote reminder history, newest first
func (h *ReminderHistory) List(ctx context.Context) ([]history.ReminderEntry, error) {
	var resp reminderHistoryResponse
	if err := h.client.getJSON(ctx, "/reminders/history", nil, &resp); err != nil {
		return nil, err
	}

	entries := make([]history.ReminderEntry, 0, len(resp.History))
	for _, dto := range resp.History {
		entries = append(entries, history.ReminderEntry{
			ID:         dto.ID,
			ReminderID: dto.ReminderID,
			Action:     history.ReminderAction(dto.Action),
			Timestamp:  parseAPITime(dto.Timestamp),
			Details:    dto.Details,
		})
	}
	return entries, nil
}

// Clear deletes the remote reminder history
func (h *ReminderHistory) Clear(ctx context.Context) error {
	return h.client.deleteJSON(ctx, "/reminders/history")
}
