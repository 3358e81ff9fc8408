// ABOUTME: CLI command for logging an exercise.
// ABOUTME: Validates through the ledger; defaults the date to today.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/varzesh/fitlog/internal/models"
)

var addDate string

var addCmd = &cobra.Command{
	Use:     "add <name> <type> <duration> <calories>",
	Aliases: []string{"a"},
	Short:   "Log an exercise",
	Long: `Log an exercise for a date (today unless --date is given).

The name must be unique for the date; the type must be registered
(see "fitlog types"). Duration is minutes (1-1440), calories 0-10000.

Examples:
  fitlog add "Morning run" Running 30 300
  fitlog add Laps Swimming 45 400 --date 1404-06-19`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		duration, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid duration: %s", args[2])
		}
		calories, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid calories: %s", args[3])
		}

		date := addDate
		if date == "" {
			date = cal.Today()
		}

		rec := models.NewExerciseRecord(args[0], args[1], duration, calories, date)
		if err := fitLedger.Add(date, rec); err != nil {
			return err
		}

		label, _ := cal.Label(date)
		color.Green("✓ Logged %s for %s", rec.ExerciseName, label)
		fmt.Printf("  %s %s, %d min, %d kcal\n",
			color.New(color.Faint).Sprint(rec.ID.String()[:8]),
			rec.ExerciseType, rec.Duration, rec.CaloriesBurned)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "date key (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(addCmd)
}
