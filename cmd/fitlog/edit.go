// ABOUTME: CLI command for editing a logged exercise in place.
// ABOUTME: Builds a partial patch from only the flags that changed.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/varzesh/fitlog/internal/models"
)

var (
	editDate     string
	editName     string
	editType     string
	editDuration int
	editCalories int
)

var editCmd = &cobra.Command{
	Use:     "edit <name>",
	Aliases: []string{"e"},
	Short:   "Edit a logged exercise",
	Long: `Edit one or more fields of an exercise already logged for a date
(today unless --date is given). The exercise is found by name,
case-insensitively. Only the flags you pass are changed.

Examples:
  fitlog edit "Morning run" --calories 250
  fitlog edit Laps --name "Pool laps" --duration 50 --date 1404-06-19`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := editDate
		if date == "" {
			date = cal.Today()
		}

		patch := &models.Patch{}
		if cmd.Flags().Changed("name") {
			patch.ExerciseName = &editName
		}
		if cmd.Flags().Changed("type") {
			patch.ExerciseType = &editType
		}
		if cmd.Flags().Changed("duration") {
			patch.Duration = &editDuration
		}
		if cmd.Flags().Changed("calories") {
			patch.CaloriesBurned = &editCalories
		}
		if patch.IsEmpty() {
			return cmd.Help()
		}

		if err := fitLedger.Update(date, args[0], patch); err != nil {
			return err
		}
		label, _ := cal.Label(date)
		color.Green("✓ Updated %s for %s", args[0], label)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "date key (YYYY-MM-DD), defaults to today")
	editCmd.Flags().StringVar(&editName, "name", "", "new exercise name")
	editCmd.Flags().StringVar(&editType, "type", "", "new exercise type")
	editCmd.Flags().IntVar(&editDuration, "duration", 0, "new duration in minutes")
	editCmd.Flags().IntVar(&editCalories, "calories", 0, "new calories burned")
	rootCmd.AddCommand(editCmd)
}
