package records

import "time"

// ReminderStatus represents the delivery state of a reminder
type ReminderStatus string

const (
	ReminderPending   ReminderStatus = "pending"
	ReminderSent      ReminderStatus = "sent"
	ReminderCancelled ReminderStatus = "cancelled"
)

// Reminder schedules a deadline notification email for a tender
type Reminder struct {
	ID           string         `json:"id"`
	TenderID     string         `json:"tender_id"`
	ReminderType string         `json:"reminder_type"`
	DueDate      time.Time      `json:"due_date"`
	Email        string         `json:"email"`
	Status       ReminderStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
}

// RecordID implements Record
func (r Reminder) RecordID() string {
	return r.ID
}

// DueWithin reports whether the reminder is pending and due inside the
// window [now, now+days]. Past-due and non-pending reminders never match.
func (r Reminder) DueWithin(now time.Time, days int) bool {
	if r.Status != ReminderPending {
		return false
	}
	cutoff := now.Add(time.Duration(days) * 24 * time.Hour)
	return !r.DueDate.Before(now) && !r.DueDate.After(cutoff)
}
