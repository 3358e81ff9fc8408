// ABOUTME: Aggregate statistics engine maintaining the running summary.
// ABOUTME: Incremental deltas on add/update, rescan only on vacated-date removal.
package stats

import (
	"fmt"

	"github.com/varzesh/fitlog/internal/caldate"
	"github.com/varzesh/fitlog/internal/kv"
	"github.com/varzesh/fitlog/internal/models"
)

// StatsKey is the storage key holding the persisted AggregateStats.
const StatsKey = "extraData"

// Engine maintains AggregateStats incrementally as the ledger changes.
// Date boundaries only expand on add, so they are updated by a single
// comparison there; on a boundary-affecting removal the new extreme is
// unknowable without a rescan of the registered dates, which is the one
// place a scan happens.
type Engine struct {
	store kv.Store
	cal   caldate.Calendar
}

// New returns an engine over the given store and calendar.
func New(store kv.Store, cal caldate.Calendar) *Engine {
	return &Engine{store: store, cal: cal}
}

// Current returns the persisted summary with daysPassed recomputed for
// the current date; the stored value goes stale as "today" moves.
func (e *Engine) Current() models.AggregateStats {
	agg := kv.Read(e.store, StatsKey, models.NewAggregateStats())
	if agg.RegisteredDates == nil {
		agg.RegisteredDates = []string{}
	}
	if agg.FirstDay != "" {
		if span, err := e.cal.DaySpan(agg.FirstDay); err == nil {
			agg.DaysPassed = span
		}
	}
	return agg
}

func (e *Engine) save(agg models.AggregateStats) error {
	if err := e.store.Write(StatsKey, agg); err != nil {
		return fmt.Errorf("save aggregate stats: %w", err)
	}
	return nil
}

// OnAdd folds a newly added record into the summary.
func (e *Engine) OnAdd(rec *models.ExerciseRecord) error {
	agg := e.Current()
	agg.TotalCalories += rec.CaloriesBurned
	agg.TotalDuration += rec.Duration

	if !agg.HasDate(rec.Date) {
		agg.RegisteredDates = append(agg.RegisteredDates, rec.Date)
		agg.DaysWithWorkouts = len(agg.RegisteredDates)

		first, last, err := e.extendBoundaries(agg.FirstDay, agg.LastDay, rec.Date)
		if err != nil {
			return err
		}
		agg.FirstDay, agg.LastDay = first, last

		span, err := e.cal.DaySpan(agg.FirstDay)
		if err != nil {
			return fmt.Errorf("day span from %q: %w", agg.FirstDay, err)
		}
		agg.DaysPassed = span
	}
	return e.save(agg)
}

// extendBoundaries widens first/last with a single new candidate date.
func (e *Engine) extendBoundaries(first, last, date string) (string, string, error) {
	if first == "" {
		return date, date, nil
	}
	cmp, err := e.cal.Compare(date, first)
	if err != nil {
		return "", "", fmt.Errorf("compare %q and %q: %w", date, first, err)
	}
	if cmp < 0 {
		first = date
	}
	cmp, err = e.cal.Compare(date, last)
	if err != nil {
		return "", "", fmt.Errorf("compare %q and %q: %w", date, last, err)
	}
	if cmp > 0 {
		last = date
	}
	return first, last, nil
}

// OnUpdate applies the calorie and duration deltas of an in-place edit.
// The date is unchanged, so boundaries and registered dates stay put.
func (e *Engine) OnUpdate(original, patched models.ExerciseRecord) error {
	agg := e.Current()
	agg.TotalCalories = clamp(agg.TotalCalories + patched.CaloriesBurned - original.CaloriesBurned)
	agg.TotalDuration = clamp(agg.TotalDuration + patched.Duration - original.Duration)
	return e.save(agg)
}

// OnRemove subtracts a removed record and, when the record was the last
// one for its date, drops the date and rediscovers the boundaries.
func (e *Engine) OnRemove(date string, removed models.ExerciseRecord, wasLastRecordForDate bool) error {
	agg := e.Current()
	agg.TotalCalories = clamp(agg.TotalCalories - removed.CaloriesBurned)
	agg.TotalDuration = clamp(agg.TotalDuration - removed.Duration)

	if wasLastRecordForDate {
		agg.RemoveDate(date)
		agg.DaysWithWorkouts = clamp(agg.DaysWithWorkouts - 1)

		if len(agg.RegisteredDates) == 0 {
			agg.FirstDay = ""
			agg.LastDay = ""
			agg.DaysPassed = 0
		} else {
			first, last, err := e.scanBoundaries(agg.RegisteredDates)
			if err != nil {
				return err
			}
			agg.FirstDay, agg.LastDay = first, last
			span, err := e.cal.DaySpan(agg.FirstDay)
			if err != nil {
				return fmt.Errorf("day span from %q: %w", agg.FirstDay, err)
			}
			agg.DaysPassed = span
		}
	}
	return e.save(agg)
}

// scanBoundaries finds the chronological min and max of the date set.
func (e *Engine) scanBoundaries(dates []string) (first, last string, err error) {
	first, last = dates[0], dates[0]
	for _, d := range dates[1:] {
		cmp, err := e.cal.Compare(d, first)
		if err != nil {
			return "", "", fmt.Errorf("compare %q and %q: %w", d, first, err)
		}
		if cmp < 0 {
			first = d
		}
		cmp, err = e.cal.Compare(d, last)
		if err != nil {
			return "", "", fmt.Errorf("compare %q and %q: %w", d, last, err)
		}
		if cmp > 0 {
			last = d
		}
	}
	return first, last, nil
}

// SetGoals overwrites the daily goal fields. Goals are independent of
// the running totals.
func (e *Engine) SetGoals(calorieGoal, durationGoal int) error {
	if calorieGoal <= 0 || calorieGoal > models.MaxCalorieGoal {
		return &models.ValidationError{Field: "dailyCalorieGoal", Reason: "must be between 1 and 10000"}
	}
	if durationGoal <= 0 || durationGoal > models.MaxDurationGoal {
		return &models.ValidationError{Field: "dailyDurationGoal", Reason: "must be between 1 and 1440 minutes"}
	}
	agg := e.Current()
	agg.DailyCalorieGoal = calorieGoal
	agg.DailyDurationGoal = durationGoal
	return e.save(agg)
}

// clamp floors a counter at zero. Totals must never go negative, even
// when a prior under-counted state would otherwise drift below it.
func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
