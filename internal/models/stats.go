// ABOUTME: AggregateStats model, the running summary maintained over the ledger.
// ABOUTME: JSON field names match the persisted extraData layout.
package models

// AggregateStats is the process-wide running summary over all ledger
// entries. It is mutated only by the stats engine, never recomputed by
// full scan except after a boundary-affecting removal.
type AggregateStats struct {
	TotalCalories     int      `json:"totalCalories"`
	TotalDuration     int      `json:"totalDuration"`
	DaysWithWorkouts  int      `json:"daysWithWorkouts"`
	FirstDay          string   `json:"firstDay,omitempty"`
	LastDay           string   `json:"lastDay,omitempty"`
	DaysPassed        int      `json:"daysPassed"`
	RegisteredDates   []string `json:"registeredDate"`
	DailyCalorieGoal  int      `json:"dailyCalorieGoal,omitempty"`
	DailyDurationGoal int      `json:"dailyDurationGoal,omitempty"`
}

// NewAggregateStats returns an empty summary with a non-nil date set.
func NewAggregateStats() AggregateStats {
	return AggregateStats{RegisteredDates: []string{}}
}

// HasDate reports whether the given date-key is registered.
func (a *AggregateStats) HasDate(date string) bool {
	for _, d := range a.RegisteredDates {
		if d == date {
			return true
		}
	}
	return false
}

// RemoveDate drops the given date-key from the registered set.
func (a *AggregateStats) RemoveDate(date string) {
	kept := a.RegisteredDates[:0]
	for _, d := range a.RegisteredDates {
		if d != date {
			kept = append(kept, d)
		}
	}
	a.RegisteredDates = kept
}

// AverageCalories returns total calories divided by the tracked day span.
func (a *AggregateStats) AverageCalories() int {
	if a.DaysPassed <= 0 {
		return 0
	}
	return a.TotalCalories / a.DaysPassed
}

// AverageDuration returns total duration divided by the tracked day span.
func (a *AggregateStats) AverageDuration() int {
	if a.DaysPassed <= 0 {
		return 0
	}
	return a.TotalDuration / a.DaysPassed
}
