package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chainfly-client/application/commands"
	"chainfly-client/application/queries"
	"chainfly-client/pkg/utils"
)

var reminderFilters struct {
	status       string
	reminderType string
	email        string
}

var setFlags struct {
	tenderID     string
	reminderType string
	dueDate      string
	email        string
}

var upcomingFlags struct {
	days int
}

var remindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Manage deadline reminders",
}

var remindersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reminders, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.syncer.SyncReminders(context.Background()); err != nil {
			return userError(err)
		}

		a.session.ReminderFilters = queries.ReminderCriteria{
			Status:       reminderFilters.status,
			ReminderType: reminderFilters.reminderType,
			Email:        reminderFilters.email,
		}

		reminders := a.session.FilteredReminders()
		if len(reminders) == 0 {
			fmt.Println("No reminders match.")
			return nil
		}
		for _, r := range reminders {
			fmt.Printf("%-12s  %-10s  %-12s  %s  %s\n",
				r.ID, r.Status, r.ReminderType, r.DueDate.Format("2006-01-02"), r.Email)
		}
		return nil
	},
}

var remindersSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Schedule a deadline reminder email",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		dueDate, err := utils.ParseRFC3339(setFlags.dueDate)
		if err != nil {
			// Accept a bare date too
			dueDate, err = time.Parse("2006-01-02", setFlags.dueDate)
			if err != nil {
				return fmt.Errorf("due date must be RFC3339 or YYYY-MM-DD")
			}
		}

		handler := commands.NewSetReminderHandler(a.client, a.session, a.logger)
		reminder, err := handler.Handle(context.Background(), commands.SetReminderCommand{
			TenderID:     setFlags.tenderID,
			ReminderType: setFlags.reminderType,
			DueDate:      dueDate,
			Email:        setFlags.email,
			Test:         a.cfg.ReminderTestMode,
		})
		if err != nil {
			return userError(err)
		}

		if a.cfg.ReminderTestMode {
			fmt.Printf("Reminder %s set (test mode, emails in minutes).\n", reminder.ID)
		} else {
			fmt.Printf("Reminder %s set.\n", reminder.ID)
		}
		return nil
	},
}

var remindersDeleteCmd = &cobra.Command{
	Use:   "delete <reminder-id>",
	Short: "Cancel and remove a reminder",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		if _, err := a.syncer.SyncReminders(ctx); err != nil {
			return userError(err)
		}

		handler := commands.NewDeleteReminderHandler(a.client, a.session, a.logger)
		if err := handler.Handle(ctx, commands.DeleteReminderCommand{ID: args[0]}); err != nil {
			return userError(err)
		}

		fmt.Printf("Reminder %s deleted.\n", args[0])
		return nil
	},
}

var remindersUpcomingCmd = &cobra.Command{
	Use:   "upcoming",
	Short: "List pending reminders due within the lookahead window",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		if _, err := a.syncer.SyncReminders(context.Background()); err != nil {
			return userError(err)
		}

		days := upcomingFlags.days
		if days <= 0 {
			days = a.cfg.LookaheadDays
		}

		upcoming := queries.UpcomingReminders(a.session.Reminders, time.Now(), days)
		if len(upcoming) == 0 {
			fmt.Printf("No pending reminders due within %d days.\n", days)
			return nil
		}
		for _, r := range upcoming {
			fmt.Printf("%s  tender %s  %s  %s\n",
				r.DueDate.Format("2006-01-02"), r.TenderID, r.ReminderType, r.Email)
		}
		return nil
	},
}

func init() {
	remindersListCmd.Flags().StringVar(&reminderFilters.status, "status", "", "exact status: pending, sent or cancelled")
	remindersListCmd.Flags().StringVar(&reminderFilters.reminderType, "type", "", "exact reminder type match")
	remindersListCmd.Flags().StringVar(&reminderFilters.email, "email", "", "substring match against email")

	remindersSetCmd.Flags().StringVar(&setFlags.tenderID, "tender", "", "tender the reminder is for")
	remindersSetCmd.Flags().StringVar(&setFlags.reminderType, "type", "", "reminder type label")
	remindersSetCmd.Flags().StringVar(&setFlags.dueDate, "due", "", "due date (RFC3339 or YYYY-MM-DD)")
	remindersSetCmd.Flags().StringVar(&setFlags.email, "email", "", "address the reminder is sent to")

	remindersUpcomingCmd.Flags().IntVar(&upcomingFlags.days, "days", 0, "lookahead window in days")

	remindersCmd.AddCommand(remindersListCmd)
	remindersCmd.AddCommand(remindersSetCmd)
	remindersCmd.AddCommand(remindersDeleteCmd)
	remindersCmd.AddCommand(remindersUpcomingCmd)
}
