package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"chainfly-client/application/queries"
)

var tenderFilters struct {
	search   string
	status   string
	sector   string
	location string
}

var tendersCmd = &cobra.Command{
	Use:   "tenders",
	Short: "Browse and filter tenders",
}

var tendersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenders, optionally filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		if _, err := a.syncer.SyncTenders(ctx); err != nil {
			return userError(err)
		}

		a.session.TenderFilters = queries.TenderCriteria{
			Search:   tenderFilters.search,
			Status:   tenderFilters.status,
			Sector:   tenderFilters.sector,
			Location: tenderFilters.location,
		}

		tenders := queries.SortedByDeadline(a.session.FilteredTenders())
		if len(tenders) == 0 {
			fmt.Println("No tenders match.")
			return nil
		}
		for _, t := range tenders {
			fmt.Printf("%-12s  %-8s  %-10s  %12.2f  %s\n",
				t.ID, t.Status, t.Deadline.Format("2006-01-02"), t.Value, t.Title)
		}
		return nil
	},
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show summary counts across tenders, documents and reminders",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx := context.Background()
		if _, err := a.syncer.SyncTenders(ctx); err != nil {
			return userError(err)
		}
		if _, err := a.syncer.SyncDocuments(ctx); err != nil {
			return userError(err)
		}
		if _, err := a.syncer.SyncReminders(ctx); err != nil {
			return userError(err)
		}

		s := queries.Summarize(a.session.Tenders, a.session.Documents, a.session.Reminders, time.Now())
		fmt.Printf("Tenders:             %d (%d open)\n", s.TotalTenders, s.OpenTenders)
		fmt.Printf("Pending reminders:   %d (%d due within %d days)\n",
			s.PendingReminders, s.UpcomingReminders, queries.DashboardLookaheadDays)
		fmt.Printf("Completed documents: %d (%d bytes total)\n", s.CompletedDocuments, s.TotalFileSize)
		return nil
	},
}

func init() {
	tendersListCmd.Flags().StringVar(&tenderFilters.search, "search", "", "substring match against title or description")
	tendersListCmd.Flags().StringVar(&tenderFilters.status, "status", "", "exact status: open, closed or awarded")
	tendersListCmd.Flags().StringVar(&tenderFilters.sector, "sector", "", "exact sector match")
	tendersListCmd.Flags().StringVar(&tenderFilters.location, "location", "", "exact location match")
	tendersCmd.AddCommand(tendersListCmd)
}
