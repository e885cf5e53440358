package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/application/session"
	"chainfly-client/application/store"
	"chainfly-client/domain/history"
	"chainfly-client/domain/records"
	pkgerrors "chainfly-client/pkg/errors"
	"chainfly-client/pkg/utils"
)

// SetReminderCommand schedules a deadline reminder email for a tender
type SetReminderCommand struct {
	TenderID     string    `validate:"required"`
	ReminderType string    `validate:"required"`
	DueDate      time.Time `validate:"required"`
	Email        string    `validate:"required,email"`

	// Test routes the reminder email on a short schedule for verification
	Test bool
}

// Validate checks the command before any network call
func (c SetReminderCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// SetReminderHandler handles reminder creation
type SetReminderHandler struct {
	reminders ports.ReminderAPI
	session   *session.Session
	logger    *zap.Logger
}

// NewSetReminderHandler creates a new handler instance
func NewSetReminderHandler(reminders ports.ReminderAPI, sess *session.Session, logger *zap.Logger) *SetReminderHandler {
	return &SetReminderHandler{
		reminders: reminders,
		session:   sess,
		logger:    logger,
	}
}

// Handle creates the reminder remotely, records it locally as pending, and
// appends a "created" history entry. A failed history mirror is logged and
// swallowed; a failed create is surfaced.
func (h *SetReminderHandler) Handle(ctx context.Context, cmd SetReminderCommand) (records.Reminder, error) {
	if err := cmd.Validate(); err != nil {
		return records.Reminder{}, err
	}

	now := time.Now()
	reminder := records.Reminder{
		ID:           uuid.New().String(),
		TenderID:     cmd.TenderID,
		ReminderType: cmd.ReminderType,
		DueDate:      cmd.DueDate,
		Email:        cmd.Email,
		Status:       records.ReminderPending,
		CreatedAt:    now,
	}

	if err := h.reminders.SetReminder(ctx, reminder, cmd.Test); err != nil {
		return records.Reminder{}, pkgerrors.Wrap(err, "failed to set reminder")
	}

	store.Apply(h.session.Reminders, store.Add[records.Reminder]{Record: reminder})

	entry := history.NewReminderEntry(reminder, history.ReminderCreated, now)
	if err := h.session.ReminderHistory.Append(ctx, entry); err != nil {
		h.logger.Warn("reminder history mirror failed", zap.Error(err))
	}

	return reminder, nil
}
