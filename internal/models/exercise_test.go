// ABOUTME: Tests for exercise record validation, naming rules and patches.
// ABOUTME: Pins the field bounds and the trimmed case-insensitive name match.
package models

import (
	"errors"
	"strings"
	"testing"
)

func validRecord() *ExerciseRecord {
	return NewExerciseRecord("Morning run", "Running", 30, 300, "1404-06-19")
}

func TestNewExerciseRecordTrims(t *testing.T) {
	rec := NewExerciseRecord("  Morning run  ", " Running ", 30, 300, "1404-06-19")
	if rec.ExerciseName != "Morning run" {
		t.Errorf("name not trimmed: %q", rec.ExerciseName)
	}
	if rec.ExerciseType != "Running" {
		t.Errorf("type not trimmed: %q", rec.ExerciseType)
	}
	if rec.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("ID not generated")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExerciseRecord)
		field  string
	}{
		{"valid", func(r *ExerciseRecord) {}, ""},
		{"empty name", func(r *ExerciseRecord) { r.ExerciseName = "" }, "exerciseName"},
		{"name too long", func(r *ExerciseRecord) { r.ExerciseName = strings.Repeat("x", 101) }, "exerciseName"},
		{"name at limit", func(r *ExerciseRecord) { r.ExerciseName = strings.Repeat("x", 100) }, ""},
		{"empty type", func(r *ExerciseRecord) { r.ExerciseType = "" }, "exerciseType"},
		{"zero duration", func(r *ExerciseRecord) { r.Duration = 0 }, "duration"},
		{"duration over a day", func(r *ExerciseRecord) { r.Duration = 1441 }, "duration"},
		{"duration at limit", func(r *ExerciseRecord) { r.Duration = 1440 }, ""},
		{"negative calories", func(r *ExerciseRecord) { r.CaloriesBurned = -1 }, "caloriesBurned"},
		{"zero calories", func(r *ExerciseRecord) { r.CaloriesBurned = 0 }, ""},
		{"calories over limit", func(r *ExerciseRecord) { r.CaloriesBurned = 10001 }, "caloriesBurned"},
		{"calories at limit", func(r *ExerciseRecord) { r.CaloriesBurned = 10000 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord()
			tt.mutate(rec)
			err := rec.Validate()
			if tt.field == "" {
				if err != nil {
					t.Errorf("Validate: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate = %v, want ValidationError", err)
			}
			if verr.Field != tt.field {
				t.Errorf("field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestSameName(t *testing.T) {
	rec := validRecord()
	for _, name := range []string{"Morning run", "morning run", "MORNING RUN", "  Morning run  "} {
		if !rec.SameName(name) {
			t.Errorf("SameName(%q) = false", name)
		}
	}
	if rec.SameName("Evening run") {
		t.Error("SameName matched a different name")
	}
}

func TestPatchApply(t *testing.T) {
	rec := *validRecord()

	empty := &Patch{}
	if !empty.IsEmpty() {
		t.Error("empty patch reported non-empty")
	}
	if got := empty.Apply(rec); got != rec {
		t.Errorf("empty patch changed the record: %+v", got)
	}

	name := "  Evening run "
	calories := 250
	patch := &Patch{ExerciseName: &name, CaloriesBurned: &calories}
	if patch.IsEmpty() {
		t.Error("patch reported empty")
	}
	got := patch.Apply(rec)
	if got.ExerciseName != "Evening run" {
		t.Errorf("patched name = %q, want trimmed", got.ExerciseName)
	}
	if got.CaloriesBurned != 250 {
		t.Errorf("patched calories = %d", got.CaloriesBurned)
	}
	if got.Duration != rec.Duration || got.ExerciseType != rec.ExerciseType || got.ID != rec.ID {
		t.Error("patch changed untouched fields")
	}
	if rec.ExerciseName != "Morning run" {
		t.Error("Apply mutated the original")
	}
}

func TestAggregateStatsDates(t *testing.T) {
	agg := NewAggregateStats()
	if agg.RegisteredDates == nil {
		t.Fatal("RegisteredDates should start non-nil")
	}
	agg.RegisteredDates = append(agg.RegisteredDates, "1404-06-19", "1404-06-20")

	if !agg.HasDate("1404-06-19") {
		t.Error("HasDate missed a registered date")
	}
	if agg.HasDate("1404-06-21") {
		t.Error("HasDate matched an unregistered date")
	}

	agg.RemoveDate("1404-06-19")
	if agg.HasDate("1404-06-19") {
		t.Error("RemoveDate left the date behind")
	}
	if len(agg.RegisteredDates) != 1 {
		t.Errorf("RegisteredDates = %v", agg.RegisteredDates)
	}
}

func TestAverages(t *testing.T) {
	agg := NewAggregateStats()
	if agg.AverageCalories() != 0 || agg.AverageDuration() != 0 {
		t.Error("averages should be 0 with no tracked days")
	}
	agg.TotalCalories = 700
	agg.TotalDuration = 90
	agg.DaysPassed = 7
	if got := agg.AverageCalories(); got != 100 {
		t.Errorf("AverageCalories = %d, want 100", got)
	}
	if got := agg.AverageDuration(); got != 12 {
		t.Errorf("AverageDuration = %d, want 12", got)
	}
}
