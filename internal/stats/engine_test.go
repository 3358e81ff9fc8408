// ABOUTME: Tests for the incremental aggregate engine over an in-memory store.
// ABOUTME: Covers boundary extension, delta edits, clamping and removal rescans.
package stats

import (
	"testing"
	"time"

	"github.com/varzesh/fitlog/internal/caldate"
	"github.com/varzesh/fitlog/internal/kv"
	"github.com/varzesh/fitlog/internal/models"
)

func testEngine(t *testing.T) (*Engine, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemory()
	cal := &caldate.Gregorian{Now: func() time.Time {
		return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	}}
	return New(store, cal), store
}

func record(date string, duration, calories int) *models.ExerciseRecord {
	return models.NewExerciseRecord("Run", "Running", duration, calories, date)
}

func TestCurrentEmpty(t *testing.T) {
	e, _ := testEngine(t)
	agg := e.Current()
	if agg.TotalCalories != 0 || agg.TotalDuration != 0 || agg.DaysWithWorkouts != 0 {
		t.Errorf("empty Current = %+v", agg)
	}
	if agg.RegisteredDates == nil {
		t.Error("RegisteredDates should be non-nil")
	}
	if agg.FirstDay != "" || agg.DaysPassed != 0 {
		t.Errorf("empty boundaries = %q / %d", agg.FirstDay, agg.DaysPassed)
	}
}

func TestCurrentCorruptStore(t *testing.T) {
	e, store := testEngine(t)
	store.Corrupt(StatsKey, []byte("{nope"))
	agg := e.Current()
	if agg.TotalCalories != 0 || len(agg.RegisteredDates) != 0 {
		t.Errorf("corrupt stats should read as empty, got %+v", agg)
	}
}

func TestOnAddFirstRecord(t *testing.T) {
	e, _ := testEngine(t)
	if err := e.OnAdd(record("2026-09-01", 30, 300)); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}

	agg := e.Current()
	if agg.TotalCalories != 300 || agg.TotalDuration != 30 {
		t.Errorf("totals = %d kcal / %d min", agg.TotalCalories, agg.TotalDuration)
	}
	if agg.DaysWithWorkouts != 1 {
		t.Errorf("DaysWithWorkouts = %d", agg.DaysWithWorkouts)
	}
	if agg.FirstDay != "2026-09-01" || agg.LastDay != "2026-09-01" {
		t.Errorf("boundaries = %q..%q", agg.FirstDay, agg.LastDay)
	}
	if agg.DaysPassed != 1 {
		t.Errorf("DaysPassed = %d, want 1", agg.DaysPassed)
	}
}

func TestOnAddSameDateTwice(t *testing.T) {
	e, _ := testEngine(t)
	if err := e.OnAdd(record("2026-09-01", 30, 300)); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}
	if err := e.OnAdd(record("2026-09-01", 20, 150)); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}

	agg := e.Current()
	if agg.TotalCalories != 450 || agg.TotalDuration != 50 {
		t.Errorf("totals = %d kcal / %d min", agg.TotalCalories, agg.TotalDuration)
	}
	if agg.DaysWithWorkouts != 1 || len(agg.RegisteredDates) != 1 {
		t.Errorf("date registered twice: %v", agg.RegisteredDates)
	}
}

func TestOnAddExtendsFirstDay(t *testing.T) {
	e, _ := testEngine(t)
	if err := e.OnAdd(record("2026-09-01", 30, 300)); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}
	if err := e.OnAdd(record("2026-08-30", 45, 400)); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}

	agg := e.Current()
	if agg.FirstDay != "2026-08-30" || agg.LastDay != "2026-09-01" {
		t.Errorf("boundaries = %q..%q", agg.FirstDay, agg.LastDay)
	}
	if agg.DaysPassed != 3 {
		t.Errorf("DaysPassed = %d, want 3", agg.DaysPassed)
	}
	if agg.DaysWithWorkouts != 2 {
		t.Errorf("DaysWithWorkouts = %d", agg.DaysWithWorkouts)
	}
}

func TestOnUpdateAppliesDeltas(t *testing.T) {
	e, _ := testEngine(t)
	original := record("2026-09-01", 30, 300)
	if err := e.OnAdd(original); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}

	patched := *original
	patched.CaloriesBurned = 200
	patched.Duration = 45
	if err := e.OnUpdate(*original, patched); err != nil {
		t.Fatalf("OnUpdate: %v", err)
	}

	agg := e.Current()
	if agg.TotalCalories != 200 {
		t.Errorf("TotalCalories = %d, want 200", agg.TotalCalories)
	}
	if agg.TotalDuration != 45 {
		t.Errorf("TotalDuration = %d, want 45", agg.TotalDuration)
	}
	if agg.FirstDay != "2026-09-01" || agg.DaysWithWorkouts != 1 {
		t.Error("update must not touch boundaries or the date set")
	}
}

func TestOnUpdateClampsAtZero(t *testing.T) {
	e, _ := testEngine(t)
	original := record("2026-09-01", 30, 100)
	// Simulate a stale summary that under-counts the record.
	patched := *original
	patched.CaloriesBurned = 0
	patched.Duration = 1
	if err := e.OnUpdate(*original, patched); err != nil {
		t.Fatalf("OnUpdate: %v", err)
	}
	agg := e.Current()
	if agg.TotalCalories != 0 || agg.TotalDuration != 0 {
		t.Errorf("totals went negative: %d / %d", agg.TotalCalories, agg.TotalDuration)
	}
}

func TestOnRemoveKeepsDateWithRemainingRecords(t *testing.T) {
	e, _ := testEngine(t)
	first := record("2026-09-01", 30, 300)
	second := record("2026-09-01", 20, 150)
	if err := e.OnAdd(first); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}
	if err := e.OnAdd(second); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}

	if err := e.OnRemove("2026-09-01", *second, false); err != nil {
		t.Fatalf("OnRemove: %v", err)
	}
	agg := e.Current()
	if agg.TotalCalories != 300 || agg.TotalDuration != 30 {
		t.Errorf("totals = %d kcal / %d min", agg.TotalCalories, agg.TotalDuration)
	}
	if agg.DaysWithWorkouts != 1 || agg.FirstDay != "2026-09-01" {
		t.Error("date must stay registered while records remain")
	}
}

func TestOnRemoveLastRecordRescansBoundaries(t *testing.T) {
	e, _ := testEngine(t)
	d1 := record("2026-08-30", 30, 300)
	d2 := record("2026-08-31", 20, 200)
	d3 := record("2026-09-01", 10, 100)
	for _, r := range []*models.ExerciseRecord{d1, d2, d3} {
		if err := e.OnAdd(r); err != nil {
			t.Fatalf("OnAdd: %v", err)
		}
	}

	// Dropping the newest boundary date must rediscover LastDay.
	if err := e.OnRemove("2026-09-01", *d3, true); err != nil {
		t.Fatalf("OnRemove: %v", err)
	}
	agg := e.Current()
	if agg.FirstDay != "2026-08-30" || agg.LastDay != "2026-08-31" {
		t.Errorf("boundaries = %q..%q", agg.FirstDay, agg.LastDay)
	}
	if agg.DaysWithWorkouts != 2 {
		t.Errorf("DaysWithWorkouts = %d", agg.DaysWithWorkouts)
	}
	if agg.TotalCalories != 500 || agg.TotalDuration != 50 {
		t.Errorf("totals = %d kcal / %d min", agg.TotalCalories, agg.TotalDuration)
	}

	// Dropping the oldest boundary date must move FirstDay and the span.
	if err := e.OnRemove("2026-08-30", *d1, true); err != nil {
		t.Fatalf("OnRemove: %v", err)
	}
	agg = e.Current()
	if agg.FirstDay != "2026-08-31" || agg.LastDay != "2026-08-31" {
		t.Errorf("boundaries = %q..%q", agg.FirstDay, agg.LastDay)
	}
	if agg.DaysPassed != 2 {
		t.Errorf("DaysPassed = %d, want 2", agg.DaysPassed)
	}
}

func TestOnRemoveLastDateClearsBoundaries(t *testing.T) {
	e, _ := testEngine(t)
	rec := record("2026-09-01", 30, 300)
	if err := e.OnAdd(rec); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}
	if err := e.OnRemove("2026-09-01", *rec, true); err != nil {
		t.Fatalf("OnRemove: %v", err)
	}

	agg := e.Current()
	if agg.FirstDay != "" || agg.LastDay != "" || agg.DaysPassed != 0 {
		t.Errorf("boundaries not cleared: %+v", agg)
	}
	if agg.TotalCalories != 0 || agg.TotalDuration != 0 || agg.DaysWithWorkouts != 0 {
		t.Errorf("totals not cleared: %+v", agg)
	}
}

func TestDaysPassedRefreshesOnRead(t *testing.T) {
	store := kv.NewMemory()
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	cal := &caldate.Gregorian{Now: func() time.Time { return now }}
	e := New(store, cal)

	if err := e.OnAdd(record("2026-09-01", 30, 300)); err != nil {
		t.Fatalf("OnAdd: %v", err)
	}
	if got := e.Current().DaysPassed; got != 1 {
		t.Fatalf("DaysPassed = %d, want 1", got)
	}

	// Two days later the stored span is stale; Current must recompute.
	now = now.AddDate(0, 0, 2)
	if got := e.Current().DaysPassed; got != 3 {
		t.Errorf("DaysPassed after 2 days = %d, want 3", got)
	}
}

func TestSetGoals(t *testing.T) {
	e, _ := testEngine(t)
	if err := e.SetGoals(500, 60); err != nil {
		t.Fatalf("SetGoals: %v", err)
	}
	agg := e.Current()
	if agg.DailyCalorieGoal != 500 || agg.DailyDurationGoal != 60 {
		t.Errorf("goals = %d / %d", agg.DailyCalorieGoal, agg.DailyDurationGoal)
	}

	for _, tt := range []struct{ cal, dur int }{
		{0, 60}, {-5, 60}, {10001, 60}, {500, 0}, {500, 1441},
	} {
		if err := e.SetGoals(tt.cal, tt.dur); !models.IsValidation(err) {
			t.Errorf("SetGoals(%d, %d) = %v, want ValidationError", tt.cal, tt.dur, err)
		}
	}
}
