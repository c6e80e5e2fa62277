// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ActivityOptions captures the fields needed to create an activity.
type ActivityOptions struct {
	ActivityType string
	StartDate    string
	EndDate      string
	Status       string
	Note         string
}

// AddActivityArgs wires activity creation flags on the provided command.
func AddActivityArgs(cmd *cobra.Command, o *ActivityOptions) {
	cmd.Flags().StringVarP(&o.StartDate, "start", "s", "",
		"Start date (YYYY-MM-DD), defaults to today.")
	cmd.Flags().StringVarP(&o.EndDate, "end", "e", "",
		"End date (YYYY-MM-DD), defaults to the start date.")
	cmd.Flags().StringVar(&o.Status, "status", "ACTIVE",
		"Status: ACTIVE, IN_PROGRESS, COMPLETED or DEACTIVATED.")
	cmd.Flags().StringVar(&o.Note, "note", "",
		"Free-form note.")
}

// FilterOptions captures listing filters.
type FilterOptions struct {
	Status  string
	Month   string
	Summary bool
	ShowID  bool
}

// AddFilterArgs wires listing flags on the provided command.
func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Only show activities with this status.")
	cmd.Flags().StringVarP(&o.Month, "month", "m", "",
		"Only show activities overlapping this month (YYYY-MM).")
	cmd.Flags().BoolVar(&o.Summary, "summary", false,
		"Print per-status counts instead of rows.")
	cmd.Flags().BoolVar(&o.ShowID, "id", false,
		"Show activity IDs.")
}
