// Package session ties a client session together: one keyed store per
// record kind, the two mirrored history logs, and the current filter
// criteria. A Session is constructed explicitly at session start and
// discarded at session end; nothing here is a package global, so tests can
// run independent sessions side by side.
package session

import (
	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/application/queries"
	"chainfly-client/application/services"
	"chainfly-client/application/store"
	"chainfly-client/domain/history"
	"chainfly-client/domain/records"
)

// Session is the in-memory state of one client session. All mutation goes
// through store actions and the history logs; the remote API mirror is the
// authoritative copy the stores resynchronize from.
type Session struct {
	Tenders   *store.Store[records.Tender]
	Documents *store.Store[records.Document]
	Reminders *store.Store[records.Reminder]

	TenderFilters   queries.TenderCriteria
	DocumentFilters queries.DocumentCriteria
	ReminderFilters queries.ReminderCriteria

	DownloadHistory *services.Log[history.DownloadEntry]
	ReminderHistory *services.Log[history.ReminderEntry]
}

// New creates an empty session whose history logs mirror through the given
// ports
func New(
	downloads ports.HistoryMirror[history.DownloadEntry],
	reminders ports.HistoryMirror[history.ReminderEntry],
	logger *zap.Logger,
) *Session {
	return &Session{
		Tenders:         store.New[records.Tender](),
		Documents:       store.New[records.Document](),
		Reminders:       store.New[records.Reminder](),
		DownloadHistory: services.NewLog(downloads, logger),
		ReminderHistory: services.NewLog(reminders, logger),
	}
}

// FilteredTenders returns the tenders visible under the current criteria
func (s *Session) FilteredTenders() []records.Tender {
	return queries.Filtered(s.Tenders, s.TenderFilters)
}

// FilteredDocuments returns the documents visible under the current criteria
func (s *Session) FilteredDocuments() []records.Document {
	return queries.Filtered(s.Documents, s.DocumentFilters)
}

// FilteredReminders returns the reminders visible under the current criteria
func (s *Session) FilteredReminders() []records.Reminder {
	return queries.Filtered(s.Reminders, s.ReminderFilters)
}

// Close disposes of the session's state. There is no persistence beyond
// the remote mirror, so disposal is simply dropping the local copies.
func (s *Session) Close() {
	s.Tenders.SetAll(nil)
	s.Documents.SetAll(nil)
	s.Reminders.SetAll(nil)
}
