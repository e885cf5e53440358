package api

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"chainfly-client/domain/records"
)

// reminderDTO is the wire shape of a reminder
type reminderDTO struct {
	ID           string `json:"id"`
	TenderID     string `json:"tender_id"`
	ReminderType string `json:"reminder_type"`
	DueDate      string `json:"due_date"`
	Email        string `json:"email"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type reminderListResponse struct {
	Reminders []reminderDTO `json:"reminders"`
}

type setReminderRequest struct {
	TenderID     string `json:"tender_id"`
	ReminderType string `json:"reminder_type"`
	DueDate      string `json:"due_date"`
	Email        string `json:"email"`
}

// SetReminder creates a reminder. The test flag routes the reminder emails
// on a short schedule so the flow can be verified in minutes.
func (c *Client) SetReminder(ctx context.Context, reminder records.Reminder, test bool) error {
	query := url.Values{"test": []string{strconv.FormatBool(test)}}
	body := setReminderRequest{
		TenderID:     reminder.TenderID,
		ReminderType: reminder.ReminderType,
		DueDate:      reminder.DueDate.Format(time.RFC3339),
		Email:        reminder.Email,
	}
	return c.postJSON(ctx, "/reminders/set", query, body, nil)
}

// ListReminders retrieves every reminder
func (c *Client) ListReminders(ctx context.Context) ([]records.Reminder, error) {
	var resp reminderListResponse
	if err := c.getJSON(ctx, "/reminders/list", nil, &resp); err != nil {
		return nil, err
	}

	reminders := make([]records.Reminder, 0, len(resp.Reminders))
	for _, dto := range resp.Reminders {
		reminders = append(reminders, records.Reminder{
			ID:           dto.ID,
			TenderID:     dto.TenderID,
			ReminderType: dto.ReminderType,
			DueDate:      parseAPITime(dto.DueDate),
			Email:        dto.Email,
			Status:       records.ReminderStatus(dto.Status),
			CreatedAt:    parseAPITime(dto.CreatedAt),
		})
	}
	return reminders, nil
}

// DeleteReminder removes a reminder by id
func (c *Client) DeleteReminder(ctx context.Context, id string) error {
	return c.deleteJSON(ctx, "/reminders/"+url.PathEscape(id))
}
