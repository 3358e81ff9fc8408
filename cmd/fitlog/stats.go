// ABOUTME: CLI command showing the running aggregate summary.
// ABOUTME: Compares a date's sums against the tracked averages and daily goals.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statsDate string

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"st"},
	Short:   "Show running statistics",
	Long: `Show the running summary over everything logged: total calories and
minutes, active days, the tracked date range, and per-day averages.
A date's sums (today unless --date is given) are compared against
the averages and, when set, the daily goals (see "fitlog goals").`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := statsDate
		if date == "" {
			date = cal.Today()
		}

		agg := fitLedger.Stats().Current()
		dayCalories, err := fitLedger.CaloriesOn(date)
		if err != nil {
			return err
		}
		dayDuration, err := fitLedger.DurationOn(date)
		if err != nil {
			return err
		}

		faint := color.New(color.Faint)
		fmt.Println("Totals")
		fmt.Printf("  Calories burned  %6d kcal\n", agg.TotalCalories)
		fmt.Printf("  Time exercised   %6d min\n", agg.TotalDuration)
		fmt.Printf("  Active days      %6d of %d tracked\n", agg.DaysWithWorkouts, agg.DaysPassed)
		if agg.FirstDay != "" {
			first, _ := cal.Format(agg.FirstDay)
			last, _ := cal.Format(agg.LastDay)
			fmt.Printf("  Tracking since   %s", first)
			if agg.LastDay != agg.FirstDay {
				fmt.Printf("  %s", faint.Sprintf("(last activity %s)", last))
			}
			fmt.Println()
		}

		label, _ := cal.Label(date)
		fmt.Printf("\n%s vs. daily average\n", capitalize(label))
		printComparison("Calories", dayCalories, agg.AverageCalories(), "kcal")
		printComparison("Duration", dayDuration, agg.AverageDuration(), "min")

		if agg.DailyCalorieGoal > 0 || agg.DailyDurationGoal > 0 {
			fmt.Println("\nGoals")
			if agg.DailyCalorieGoal > 0 {
				printGoal("Calories", dayCalories, agg.DailyCalorieGoal, "kcal")
			}
			if agg.DailyDurationGoal > 0 {
				printGoal("Duration", dayDuration, agg.DailyDurationGoal, "min")
			}
		}
		return nil
	},
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}

func printComparison(label string, day, average int, unit string) {
	if average == 0 {
		fmt.Printf("  %-9s %5d %s (no average yet)\n", label, day, unit)
		return
	}
	diff := day - average
	pct := diff * 100 / average
	switch {
	case diff > 0:
		fmt.Printf("  %-9s %5d %s, %s\n", label, day, unit,
			color.GreenString("+%d%% over your %d %s average", pct, average, unit))
	case diff < 0:
		fmt.Printf("  %-9s %5d %s, %d%% under your %d %s average\n",
			label, day, unit, -pct, average, unit)
	default:
		fmt.Printf("  %-9s %5d %s, right on your average\n", label, day, unit)
	}
}

func printGoal(label string, day, goal int, unit string) {
	pct := day * 100 / goal
	line := fmt.Sprintf("  %-9s %5d / %d %s (%d%%)", label, day, goal, unit, pct)
	if day >= goal {
		color.Green("%s ✓", line)
	} else {
		fmt.Println(line)
	}
}

func init() {
	statsCmd.Flags().StringVar(&statsDate, "date", "", "date key (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(statsCmd)
}
