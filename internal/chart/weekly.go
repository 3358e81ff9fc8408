// ABOUTME: Weekly calorie chart computation over raw daily sums.
// ABOUTME: 7-day Saturday-based window; future days carry no data, not zero.
package chart

import (
	"fmt"

	"github.com/varzesh/fitlog/internal/caldate"
)

// CalorieSource supplies the raw calorie sum for one date. The chart
// reads daily sums from the ledger, not from the aggregate summary.
type CalorieSource interface {
	CaloriesOn(date string) (int, error)
}

// DayPoint is one day of the weekly window. Calories is nil for days
// of the current week that have not happened yet.
type DayPoint struct {
	Date     string `json:"date"`
	Calories *int   `json:"calories"`
}

// Week is a 7-day window of calorie sums plus its summary figures.
type Week struct {
	Start      string     `json:"start"`
	End        string     `json:"end"`
	Days       []DayPoint `json:"days"`
	Total      int        `json:"total"`
	Average    int        `json:"average"`
	ActiveDays int        `json:"activeDays"`
	BestDay    string     `json:"bestDay,omitempty"`
}

// Weekly computes the window for the week `offset` weeks before the
// current one (offset 0 is this week; positive offsets are rejected,
// the future holds no data).
func Weekly(src CalorieSource, cal caldate.Calendar, offset int) (*Week, error) {
	if offset > 0 {
		return nil, fmt.Errorf("cannot chart a future week (offset %d)", offset)
	}
	today := cal.Today()
	start, err := cal.StartOfWeek(today)
	if err != nil {
		return nil, err
	}
	start, err = cal.AddDays(start, offset*7)
	if err != nil {
		return nil, err
	}
	end, err := cal.AddDays(start, 6)
	if err != nil {
		return nil, err
	}

	week := &Week{Start: start, End: end, Days: make([]DayPoint, 0, 7)}
	validDays := 0
	best := -1

	for i := 0; i < 7; i++ {
		date, err := cal.AddDays(start, i)
		if err != nil {
			return nil, err
		}
		point := DayPoint{Date: date}

		future := false
		if offset == 0 {
			cmp, err := cal.Compare(date, today)
			if err != nil {
				return nil, err
			}
			future = cmp > 0
		}
		if !future {
			calories, err := src.CaloriesOn(date)
			if err != nil {
				return nil, err
			}
			point.Calories = &calories
			week.Total += calories
			validDays++
			if calories > 0 {
				week.ActiveDays++
			}
			if calories > best {
				best = calories
				week.BestDay = date
			}
		}
		week.Days = append(week.Days, point)
	}

	if validDays > 0 {
		// Round to nearest, matching the displayed daily average.
		week.Average = (week.Total + validDays/2) / validDays
	}
	if best <= 0 {
		week.BestDay = ""
	}
	return week, nil
}
