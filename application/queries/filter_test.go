package queries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chainfly-client/application/store"
	"chainfly-client/domain/records"
)

func seedTenders(t *testing.T) *store.Store[records.Tender] {
	t.Helper()
	s := store.New[records.Tender]()
	store.Apply(s, store.SetAll[records.Tender]{Records: []records.Tender{
		{ID: "1", Title: "Bridge renovation", Description: "steel works", Status: records.TenderOpen, Sector: "construction", Location: "Hamburg"},
		{ID: "2", Title: "Road resurfacing", Description: "asphalt", Status: records.TenderOpen, Sector: "construction", Location: "Berlin"},
		{ID: "3", Title: "IT consulting", Description: "cloud migration", Status: records.TenderClosed, Sector: "it", Location: "Hamburg"},
		{ID: "4", Title: "School canteen", Description: "catering services", Status: records.TenderAwarded, Sector: "services", Location: "Munich"},
	}})
	return s
}

func ids(tenders []records.Tender) []string {
	out := make([]string, 0, len(tenders))
	for _, t := range tenders {
		out = append(out, t.ID)
	}
	return out
}

func TestFiltered_EmptyCriteriaMatchesEverything(t *testing.T) {
	s := seedTenders(t)
	assert.Len(t, Filtered(s, TenderCriteria{}), 4)
}

func TestFiltered_StatusIsExactMatch(t *testing.T) {
	s := seedTenders(t)

	open := Filtered(s, TenderCriteria{Status: "open"})
	assert.ElementsMatch(t, []string{"1", "2"}, ids(open))

	for _, tender := range open {
		assert.Equal(t, records.TenderOpen, tender.Status)
	}
}

func TestFiltered_SearchMatchesTitleOrDescription(t *testing.T) {
	s := seedTenders(t)

	byTitle := Filtered(s, TenderCriteria{Search: "BRIDGE"})
	assert.ElementsMatch(t, []string{"1"}, ids(byTitle))

	byDescription := Filtered(s, TenderCriteria{Search: "cloud"})
	assert.ElementsMatch(t, []string{"3"}, ids(byDescription))

	assert.Empty(t, Filtered(s, TenderCriteria{Search: "railway"}))
}

func TestFiltered_CriteriaCombineAsIntersection(t *testing.T) {
	s := seedTenders(t)

	combined := Filtered(s, TenderCriteria{Status: "open", Location: "Hamburg"})

	byStatus := map[string]bool{}
	for _, id := range ids(Filtered(s, TenderCriteria{Status: "open"})) {
		byStatus[id] = true
	}
	var intersection []string
	for _, id := range ids(Filtered(s, TenderCriteria{Location: "Hamburg"})) {
		if byStatus[id] {
			intersection = append(intersection, id)
		}
	}

	assert.ElementsMatch(t, intersection, ids(combined))
	assert.ElementsMatch(t, []string{"1"}, ids(combined))
}

func TestFiltered_ReminderEmailIsSubstringMatch(t *testing.T) {
	s := store.New[records.Reminder]()
	store.Apply(s, store.SetAll[records.Reminder]{Records: []records.Reminder{
		{ID: "a", Email: "anna@example.com", Status: records.ReminderPending},
		{ID: "b", Email: "bert@other.org", Status: records.ReminderPending},
	}})

	matched := Filtered(s, ReminderCriteria{Email: "EXAMPLE"})
	require.Len(t, matched, 1)
	assert.Equal(t, "a", matched[0].ID)
}

func TestSortedByDeadline(t *testing.T) {
	base := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	unsorted := []records.Tender{
		{ID: "late", Deadline: base.AddDate(0, 0, 10)},
		{ID: "early", Deadline: base.AddDate(0, 0, 1)},
		{ID: "mid", Deadline: base.AddDate(0, 0, 5)},
	}

	sorted := SortedByDeadline(unsorted)

	assert.Equal(t, []string{"early", "mid", "late"}, ids(sorted))
	assert.Equal(t, "late", unsorted[0].ID, "input slice must stay untouched")
}
