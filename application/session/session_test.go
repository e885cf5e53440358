package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"chainfly-client/application/queries"
	"chainfly-client/application/store"
	"chainfly-client/domain/history"
	"chainfly-client/domain/records"
)

type nopMirror[E history.Entry] struct{}

func (nopMirror[E]) Save(context.Context, E) error { return nil }
func (nopMirror[E]) List(context.Context) ([]E, error) {
	return nil, nil
}
func (nopMirror[E]) Clear(context.Context) error { return nil }

func newSession() *Session {
	return New(
		nopMirror[history.DownloadEntry]{},
		nopMirror[history.ReminderEntry]{},
		zap.NewNop(),
	)
}

func TestSessionsAreIndependent(t *testing.T) {
	a := newSession()
	b := newSession()

	store.Apply(a.Tenders, store.Add[records.Tender]{Record: records.Tender{ID: "1"}})

	assert.Equal(t, 1, a.Tenders.Len())
	assert.Equal(t, 0, b.Tenders.Len())
}

func TestFilteredViewsUseCurrentCriteria(t *testing.T) {
	s := newSession()
	store.Apply(s.Tenders, store.SetAll[records.Tender]{Records: []records.Tender{
		{ID: "1", Status: records.TenderOpen},
		{ID: "2", Status: records.TenderClosed},
	}})

	require.Len(t, s.FilteredTenders(), 2, "no criteria shows everything")

	s.TenderFilters = queries.TenderCriteria{Status: "open"}
	filtered := s.FilteredTenders()
	require.Len(t, filtered, 1)
	assert.Equal(t, "1", filtered[0].ID)

	s.TenderFilters = queries.TenderCriteria{}
	assert.Len(t, s.FilteredTenders(), 2, "clearing criteria restores the full view")
}

func TestClose_DropsLocalState(t *testing.T) {
	s := newSession()
	store.Apply(s.Tenders, store.Add[records.Tender]{Record: records.Tender{ID: "1"}})
	store.Apply(s.Reminders, store.Add[records.Reminder]{Record: records.Reminder{ID: "r1"}})

	s.Close()

	assert.Equal(t, 0, s.Tenders.Len())
	assert.Equal(t, 0, s.Documents.Len())
	assert.Equal(t, 0, s.Reminders.Len())
}
