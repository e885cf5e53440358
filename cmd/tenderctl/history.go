package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View or clear the download and reminder audit logs",
}

var historyDownloadsCmd = &cobra.Command{
	Use:   "downloads",
	Short: "Show the archive download history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		if historyClear {
			if err := a.session.DownloadHistory.Clear(ctx); err != nil {
				// Local history is already cleared; only the remote copy
				// may still hold entries.
				a.logger.Warn("remote download history not cleared")
			}
			fmt.Println("Download history cleared.")
			return nil
		}

		if err := a.session.DownloadHistory.LoadAll(ctx); err != nil {
			return userError(err)
		}
		entries := a.session.DownloadHistory.All()
		if len(entries) == 0 {
			fmt.Println("No downloads recorded.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %s.zip  (%d documents)\n",
				e.DownloadedAt.Format("2006-01-02 15:04"), e.ZipName, len(e.Documents))
		}
		return nil
	},
}

var historyRemindersCmd = &cobra.Command{
	Use:   "reminders",
	Short: "Show the reminder audit history, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		if historyClear {
			if err := a.session.ReminderHistory.Clear(ctx); err != nil {
				a.logger.Warn("remote reminder history not cleared")
			}
			fmt.Println("Reminder history cleared.")
			return nil
		}

		if err := a.session.ReminderHistory.LoadAll(ctx); err != nil {
			return userError(err)
		}
		entries := a.session.ReminderHistory.All()
		if len(entries) == 0 {
			fmt.Println("No reminder actions recorded.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %-10s  reminder %s  (%s)\n",
				e.Timestamp.Format("2006-01-02 15:04"), e.Action, e.ReminderID, e.Details.Email)
		}
		return nil
	},
}

func init() {
	historyDownloadsCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the history instead of listing it")
	historyRemindersCmd.Flags().BoolVar(&historyClear, "clear", false, "clear the history instead of listing it")
	historyCmd.AddCommand(historyDownloadsCmd)
	historyCmd.AddCommand(historyRemindersCmd)
}
