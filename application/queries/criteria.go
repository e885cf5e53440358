// Package queries derives read-only views over the session's stores. Every
// function here is pure: identical inputs yield identical output regardless
// of call order.
package queries

import (
	"strings"

	"chainfly-client/domain/records"
)

// Criteria matches records of one kind. Fields combine with AND semantics
// and an empty field matches everything.
type Criteria[R records.Record] interface {
	Matches(record R) bool
}

// TenderCriteria narrows the tender list for display
type TenderCriteria struct {
	// Search matches case-insensitively against title or description
	Search   string
	Status   string
	Sector   string
	Location string
}

// Matches implements Criteria
func (c TenderCriteria) Matches(t records.Tender) bool {
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(t.Title), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	if c.Status != "" && string(t.Status) != c.Status {
		return false
	}
	if c.Sector != "" && t.Sector != c.Sector {
		return false
	}
	if c.Location != "" && t.Location != c.Location {
		return false
	}
	return true
}

// DocumentCriteria narrows the document list for display
type DocumentCriteria struct {
	DocumentType string
	Status       string
	TenderID     string
}

// Matches implements Criteria
func (c DocumentCriteria) Matches(d records.Document) bool {
	if c.DocumentType != "" && d.DocumentType != c.DocumentType {
		return false
	}
	if c.Status != "" && string(d.Status) != c.Status {
		return false
	}
	if c.TenderID != "" && d.TenderID != c.TenderID {
		return false
	}
	return true
}

// ReminderCriteria narrows the reminder list for display
type ReminderCriteria struct {
	Status       string
	ReminderType string
	// Email matches case-insensitively as a substring
	Email string
}

// Matches implements Criteria
func (c ReminderCriteria) Matches(r records.Reminder) bool {
	if c.Status != "" && string(r.Status) != c.Status {
		return false
	}
	if c.ReminderType != "" && r.ReminderType != c.ReminderType {
		return false
	}
	if c.Email != "" && !strings.Contains(strings.ToLower(r.Email), strings.ToLower(c.Email)) {
		return false
	}
	return true
}
