package queries

import (
	"sort"

	"chainfly-client/application/store"
	"chainfly-client/domain/records"
)

// Filtered returns the records matching criteria. Order is unspecified;
// callers that need a stable order sort the result themselves.
func Filtered[R records.Record](s *store.Store[R], criteria Criteria[R]) []R {
	matched := make([]R, 0, s.Len())
	for _, record := range s.All() {
		if criteria.Matches(record) {
			matched = append(matched, record)
		}
	}
	return matched
}

// ByStatus returns the tenders with exactly the given status
func ByStatus(s *store.Store[records.Tender], status records.TenderStatus) []records.Tender {
	return Filtered(s, TenderCriteria{Status: string(status)})
}

// DocumentsByStatus returns the documents with exactly the given status
func DocumentsByStatus(s *store.Store[records.Document], status records.DocumentStatus) []records.Document {
	return Filtered(s, DocumentCriteria{Status: string(status)})
}

// RemindersByStatus returns the reminders with exactly the given status
func RemindersByStatus(s *store.Store[records.Reminder], status records.ReminderStatus) []records.Reminder {
	return Filtered(s, ReminderCriteria{Status: string(status)})
}

// SortedByDeadline returns tenders ascending by deadline
func SortedByDeadline(tenders []records.Tender) []records.Tender {
	sorted := make([]records.Tender, len(tenders))
	copy(sorted, tenders)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Deadline.Before(sorted[j].Deadline)
	})
	return sorted
}
