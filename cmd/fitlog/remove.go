// ABOUTME: CLI command for removing a logged exercise.
// ABOUTME: Removing a date's last exercise drops the date entirely.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var removeDate string

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a logged exercise",
	Long: `Remove an exercise from a date (today unless --date is given). The
exercise is found by name, case-insensitively. Its calories and
duration are subtracted from the running totals; if it was the last
exercise for the date, the date drops out of the statistics too.

Examples:
  fitlog remove "Morning run"
  fitlog remove Laps --date 1404-06-19`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := removeDate
		if date == "" {
			date = cal.Today()
		}

		removed, err := fitLedger.Remove(date, args[0])
		if err != nil {
			return err
		}
		label, _ := cal.Label(date)
		color.Green("✓ Removed %s from %s (%d min, %d kcal)",
			removed.ExerciseName, label, removed.Duration, removed.CaloriesBurned)
		return nil
	},
}

func init() {
	removeCmd.Flags().StringVar(&removeDate, "date", "", "date key (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(removeCmd)
}
