package commands

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chainfly-client/application/ports"
	"chainfly-client/application/session"
	"chainfly-client/application/store"
	"chainfly-client/domain/history"
	"chainfly-client/domain/records"
	pkgerrors "chainfly-client/pkg/errors"
	"chainfly-client/pkg/utils"
)

// DeleteReminderCommand cancels and removes a reminder
type DeleteReminderCommand struct {
	ID string `validate:"required"`
}

// Validate checks the command
func (c DeleteReminderCommand) Validate() error {
	return utils.ValidateStruct(c)
}

// DeleteReminderHandler handles reminder deletion
type DeleteReminderHandler struct {
	reminders ports.ReminderAPI
	session   *session.Session
	logger    *zap.Logger
}

// NewDeleteReminderHandler creates a new handler instance
func NewDeleteReminderHandler(reminders ports.ReminderAPI, sess *session.Session, logger *zap.Logger) *DeleteReminderHandler {
	return &DeleteReminderHandler{
		reminders: reminders,
		session:   sess,
		logger:    logger,
	}
}

// Handle appends a "cancelled" history entry, deletes the reminder
// remotely, then removes it from the local store. The history entry is
// written before the delete so the snapshot still has the reminder's
// details, matching the observed ordering.
func (h *DeleteReminderHandler) Handle(ctx context.Context, cmd DeleteReminderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	reminder, ok := h.session.Reminders.Get(cmd.ID)
	if !ok {
		return pkgerrors.NewNotFoundError("reminder")
	}

	entry := history.NewReminderEntry(reminder, history.ReminderCancelled, time.Now())
	if err := h.session.ReminderHistory.Append(ctx, entry); err != nil {
		h.logger.Warn("reminder history mirror failed", zap.Error(err))
	}

	if err := h.reminders.DeleteReminder(ctx, cmd.ID); err != nil {
		return pkgerrors.Wrap(err, "failed to delete reminder")
	}

	store.Apply(h.session.Reminders, store.Delete[records.Reminder]{ID: cmd.ID})
	return nil
}
