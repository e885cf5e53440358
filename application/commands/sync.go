package commands

import (
	"context"

	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/application/session"
	"chainfly-client/application/store"
	"chainfly-client/domain/records"
	pkgerrors "chainfly-client/pkg/errors"
)

// Syncer resynchronizes the session's stores from the remote server. Each
// sync replaces the whole local mapping: the server copy is authoritative
// and local-only entries disappear.
type Syncer struct {
	tenders   ports.TenderAPI
	documents ports.DocumentAPI
	reminders ports.ReminderAPI
	session   *session.Session
	logger    *zap.Logger
}

// NewSyncer creates a new syncer
func NewSyncer(
	tenders ports.TenderAPI,
	documents ports.DocumentAPI,
	reminders ports.ReminderAPI,
	sess *session.Session,
	logger *zap.Logger,
) *Syncer {
	return &Syncer{
		tenders:   tenders,
		documents: documents,
		reminders: reminders,
		session:   sess,
		logger:    logger,
	}
}

// SyncTenders replaces the tender store with the server's list
func (s *Syncer) SyncTenders(ctx context.Context) (int, error) {
	tenders, err := s.tenders.ListTenders(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to load tenders")
	}
	store.Apply(s.session.Tenders, store.SetAll[records.Tender]{Records: tenders})
	s.logger.Debug("tenders synced", zap.Int("count", len(tenders)))
	return len(tenders), nil
}

// SyncDocuments replaces the document store with the server's list
func (s *Syncer) SyncDocuments(ctx context.Context) (int, error) {
	documents, err := s.documents.ListDocuments(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to load documents")
	}
	store.Apply(s.session.Documents, store.SetAll[records.Document]{Records: documents})
	s.logger.Debug("documents synced", zap.Int("count", len(documents)))
	return len(documents), nil
}

// SyncReminders replaces the reminder store with the server's list
func (s *Syncer) SyncReminders(ctx context.Context) (int, error) {
	reminders, err := s.reminders.ListReminders(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(err, "failed to load reminders")
	}
	store.Apply(s.session.Reminders, store.SetAll[records.Reminder]{Records: reminders})
	s.logger.Debug("reminders synced", zap.Int("count", len(reminders)))
	return len(reminders), nil
}
