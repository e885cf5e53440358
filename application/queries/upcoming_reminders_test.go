package queries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainfly-client/application/store"
	"chainfly-client/domain/records"
)

func TestUpcomingReminders_WindowAndStatus(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	s := store.New[records.Reminder]()
	store.Apply(s, store.SetAll[records.Reminder]{Records: []records.Reminder{
		{ID: "past", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, -1)},
		{ID: "soon", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, 3)},
		{ID: "far", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, 10)},
		{ID: "sent", Status: records.ReminderSent, DueDate: now.AddDate(0, 0, 2)},
		{ID: "edge", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, 7)},
	}})

	upcoming := UpcomingReminders(s, now, 7)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].ID)
	assert.Equal(t, "edge", upcoming[1].ID)
}

func TestUpcomingReminders_SortedAscendingByDueDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	s := store.New[records.Reminder]()
	store.Apply(s, store.SetAll[records.Reminder]{Records: []records.Reminder{
		{ID: "c", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, 6)},
		{ID: "a", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, 1)},
		{ID: "b", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, 4)},
	}})

	upcoming := UpcomingReminders(s, now, 7)

	require.Len(t, upcoming, 3)
	assert.Equal(t, "a", upcoming[0].ID)
	assert.Equal(t, "b", upcoming[1].ID)
	assert.Equal(t, "c", upcoming[2].ID)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	tenders := store.New[records.Tender]()
	store.Apply(tenders, store.SetAll[records.Tender]{Records: []records.Tender{
		{ID: "1", Status: records.TenderOpen},
		{ID: "2", Status: records.TenderOpen},
		{ID: "3", Status: records.TenderClosed},
	}})

	documents := store.New[records.Document]()
	store.Apply(documents, store.SetAll[records.Document]{Records: []records.Document{
		{ID: "d1", Status: records.DocumentCompleted, FileSize: 1000},
		{ID: "d2", Status: records.DocumentProcessing, FileSize: 500},
	}})

	reminders := store.New[records.Reminder]()
	store.Apply(reminders, store.SetAll[records.Reminder]{Records: []records.Reminder{
		{ID: "r1", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, 2)},
		{ID: "r2", Status: records.ReminderPending, DueDate: now.AddDate(0, 0, 30)},
		{ID: "r3", Status: records.ReminderCancelled, DueDate: now.AddDate(0, 0, 1)},
	}})

	summary := Summarize(tenders, documents, reminders, now)

	assert.Equal(t, 3, summary.TotalTenders)
	assert.Equal(t, 2, summary.OpenTenders)
	assert.Equal(t, 2, summary.PendingReminders)
	assert.Equal(t, 1, summary.UpcomingReminders)
	assert.Equal(t, 1, summary.CompletedDocuments)
	assert.Equal(t, int64(1500), summary.TotalFileSize)
}
