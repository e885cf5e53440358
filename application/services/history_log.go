// Package services holds the session-scoped application services: the
// mirrored history logs and the archive assembler.
package services

import (
	"context"

	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/domain/history"
	pkgerrors "chainfly-client/pkg/errors"
)

// Log is an append-only, newest-first audit log mirrored to the remote
// store. The local list and the mirror are two independent steps: local
// mutations always take effect and are never rolled back when the mirror
// call fails, so the two copies can diverge. Append and Clear return the
// mirror error to make that divergence detectable at the call site.
type Log[E history.Entry] struct {
	entries []E
	mirror  ports.HistoryMirror[E]
	logger  *zap.Logger
}

// NewLog creates an empty log mirrored through the given port
func NewLog[E history.Entry](mirror ports.HistoryMirror[E], logger *zap.Logger) *Log[E] {
	return &Log[E]{
		entries: []E{},
		mirror:  mirror,
		logger:  logger,
	}
}

// Append prepends the entry locally, then mirrors it remotely. The returned
// error reports the mirror outcome only; the local append has already
// happened either way.
func (l *Log[E]) Append(ctx context.Context, entry E) error {
	l.entries = append([]E{entry}, l.entries...)

	if err := l.mirror.Save(ctx, entry); err != nil {
		l.logger.Warn("failed to mirror history entry",
			zap.String("entryID", entry.EntryID()),
			zap.Error(err),
		)
		return pkgerrors.NewMirrorError("save", err)
	}
	return nil
}

// Clear empties the local list, then requests remote deletion. Same error
// contract as Append.
func (l *Log[E]) Clear(ctx context.Context) error {
	l.entries = []E{}

	if err := l.mirror.Clear(ctx); err != nil {
		l.logger.Warn("failed to clear remote history", zap.Error(err))
		return pkgerrors.NewMirrorError("clear", err)
	}
	return nil
}

// LoadAll replaces the local list with the remote store's current contents
func (l *Log[E]) LoadAll(ctx context.Context) error {
	entries, err := l.mirror.List(ctx)
	if err != nil {
		return pkgerrors.NewMirrorError("list", err)
	}
	if entries == nil {
		entries = []E{}
	}
	l.entries = entries
	return nil
}

// All returns the entries newest first. The slice is a copy.
func (l *Log[E]) All() []E {
	entries := make([]E, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Len returns the number of local entries
func (l *Log[E]) Len() int {
	return len(l.entries)
}
