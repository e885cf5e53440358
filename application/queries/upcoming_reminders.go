package queries

import (
	"sort"
	"time"

	"chainfly-client/application/store"
	"chainfly-client/domain/records"
)

// UpcomingReminders returns the pending reminders due within the next
// lookaheadDays from now, ascending by due date. Past-due and non-pending
// reminders are excluded regardless of date.
func UpcomingReminders(s *store.Store[records.Reminder], now time.Time, lookaheadDays int) []records.Reminder {
	upcoming := make([]records.Reminder, 0)
	for _, reminder := range s.All() {
		if reminder.DueWithin(now, lookaheadDays) {
			upcoming = append(upcoming, reminder)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(upcoming[j].DueDate)
	})
	return upcoming
}
