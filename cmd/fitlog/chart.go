// ABOUTME: CLI command rendering the weekly calorie chart.
// ABOUTME: ASCII bars over a Saturday-based 7-day window, past weeks via --week.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/varzesh/fitlog/internal/chart"
)

const chartBarWidth = 40

var chartWeek int

var chartCmd = &cobra.Command{
	Use:     "chart",
	Aliases: []string{"c"},
	Short:   "Show the weekly calorie chart",
	Long: `Show a bar chart of calories burned per day over a 7-day week
starting on Saturday. --week selects an earlier week: 0 is the
current week, -1 the previous one, and so on. Days of the current
week that have not happened yet show "no data" rather than zero.

Examples:
  fitlog chart
  fitlog chart --week -1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		week, err := chart.Weekly(fitLedger, cal, chartWeek)
		if err != nil {
			return err
		}

		startLabel, _ := cal.Format(week.Start)
		endLabel, _ := cal.Format(week.End)
		fmt.Printf("Week of %s to %s\n\n", startLabel, endLabel)

		max := 0
		for _, d := range week.Days {
			if d.Calories != nil && *d.Calories > max {
				max = *d.Calories
			}
		}

		dayNames := []string{"Sat", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri"}
		faint := color.New(color.Faint)
		for i, d := range week.Days {
			if d.Calories == nil {
				fmt.Printf("  %s  %s\n", dayNames[i], faint.Sprint("no data"))
				continue
			}
			bar := ""
			if max > 0 && *d.Calories > 0 {
				width := *d.Calories * chartBarWidth / max
				if width == 0 {
					width = 1
				}
				bar = color.CyanString(strings.Repeat("█", width))
			}
			fmt.Printf("  %s  %s %d kcal\n", dayNames[i], bar, *d.Calories)
		}

		fmt.Printf("\n  Total %d kcal, average %d kcal/day, %d active day(s)\n",
			week.Total, week.Average, week.ActiveDays)
		if week.BestDay != "" {
			best, _ := cal.Format(week.BestDay)
			fmt.Printf("  Best day: %s\n", best)
		}
		return nil
	},
}

func init() {
	chartCmd.Flags().IntVar(&chartWeek, "week", 0, "week offset (0 = this week, -1 = last week)")
	rootCmd.AddCommand(chartCmd)
}
