// ABOUTME: CLI command for setting daily calorie and duration goals.
// ABOUTME: Goals feed the comparisons in "fitlog stats".
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var goalsCmd = &cobra.Command{
	Use:     "goals <calories> <minutes>",
	Aliases: []string{"g"},
	Short:   "Set daily goals",
	Long: `Set the daily calorie and duration goals. Both must be positive;
calories up to 10000, minutes up to 1440. "fitlog stats" shows
today's progress against them.

Example:
  fitlog goals 500 60`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		calories, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid calorie goal: %s", args[0])
		}
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid duration goal: %s", args[1])
		}

		if err := fitLedger.Stats().SetGoals(calories, minutes); err != nil {
			return err
		}
		color.Green("✓ Daily goals set: %d kcal, %d min", calories, minutes)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(goalsCmd)
}
