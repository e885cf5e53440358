package queries

import (
	"time"

	"chainfly-client/application/store"
	"chainfly-client/domain/records"
)

// DashboardLookaheadDays is the upcoming-reminder window the dashboard uses
const DashboardLookaheadDays = 7

// Summary aggregates the counts the dashboard shows
type Summary struct {
	TotalTenders       int
	OpenTenders        int
	PendingReminders   int
	UpcomingReminders  int
	CompletedDocuments int
	TotalFileSize      int64
}

// Summarize computes the dashboard summary from the three stores
func Summarize(
	tenders *store.Store[records.Tender],
	documents *store.Store[records.Document],
	reminders *store.Store[records.Reminder],
	now time.Time,
) Summary {
	summary := Summary{
		TotalTenders:       tenders.Len(),
		OpenTenders:        len(ByStatus(tenders, records.TenderOpen)),
		PendingReminders:   len(RemindersByStatus(reminders, records.ReminderPending)),
		UpcomingReminders:  len(UpcomingReminders(reminders, now, DashboardLookaheadDays)),
		CompletedDocuments: len(DocumentsByStatus(documents, records.DocumentCompleted)),
	}
	for _, doc := range documents.All() {
		summary.TotalFileSize += doc.FileSize
	}
	return summary
}
