// ABOUTME: CLI command for listing a date's exercises.
// ABOUTME: Shows ID prefix, name, type, duration and calories per record.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listDate string

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List exercises for a date",
	Long: `List the exercises logged for a date (today unless --date is given).

OUTPUT FORMAT:

  Each line shows: ID  NAME  TYPE  DURATION  CALORIES

  The ID is an 8-character prefix for reference; edit and remove
  address records by name.

Examples:
  fitlog list
  fitlog list --date 1404-06-19`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := listDate
		if date == "" {
			date = cal.Today()
		}

		records, err := fitLedger.Get(date)
		if err != nil {
			return err
		}
		label, _ := cal.Label(date)
		if len(records) == 0 {
			fmt.Printf("No exercises logged for %s.\n", label)
			return nil
		}

		fmt.Printf("Exercises for %s:\n", label)
		faint := color.New(color.Faint)
		totalDuration, totalCalories := 0, 0
		for _, r := range records {
			fmt.Printf("%s %s %s %4d min %5d kcal\n",
				faint.Sprint(r.ID.String()[:8]),
				padRight(r.ExerciseName, 24),
				padRight(r.ExerciseType, 18),
				r.Duration,
				r.CaloriesBurned)
			totalDuration += r.Duration
			totalCalories += r.CaloriesBurned
		}
		fmt.Printf("%s %s %4d min %5d kcal\n",
			faint.Sprint("total   "), padRight("", 43),
			totalDuration, totalCalories)
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVar(&listDate, "date", "", "date key (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(listCmd)
}
