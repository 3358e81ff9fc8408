// ABOUTME: ExerciseRecord model and validation rules for logged activities.
// ABOUTME: Defines field bounds, the patch type for edits, and seeded exercise types.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// Field bounds, matching the limits the entry form has always enforced.
const (
	MaxNameLength   = 100
	MinDuration     = 1
	MaxDuration     = 1440
	MinCalories     = 0
	MaxCalories     = 10000
	MaxCalorieGoal  = 10000
	MaxDurationGoal = 1440
)

// DefaultExerciseTypes seeds the type registry on first use.
var DefaultExerciseTypes = []string{
	"Cardio",
	"Strength Training",
	"Yoga",
	"Pilates",
	"Running",
	"Swimming",
	"Cycling",
	"Walking",
	"Team Sports",
}

// ExerciseRecord is one logged activity on a given date.
// ExerciseName is stored trimmed and is unique per date under
// case-insensitive comparison.
type ExerciseRecord struct {
	ID             uuid.UUID `json:"id"`
	ExerciseName   string    `json:"exerciseName"`
	ExerciseType   string    `json:"exerciseType"`
	Duration       int       `json:"duration"`
	CaloriesBurned int       `json:"caloriesBurned"`
	Date           string    `json:"date"`
}

// NewExerciseRecord creates a record with a generated UUID and trimmed name.
func NewExerciseRecord(name, exerciseType string, duration, calories int, date string) *ExerciseRecord {
	return &ExerciseRecord{
		ID:             uuid.New(),
		ExerciseName:   strings.TrimSpace(name),
		ExerciseType:   strings.TrimSpace(exerciseType),
		Duration:       duration,
		CaloriesBurned: calories,
		Date:           date,
	}
}

// Validate checks field bounds for a complete record.
func (r *ExerciseRecord) Validate() error {
	if r.ExerciseName == "" {
		return &ValidationError{Field: "exerciseName", Reason: "must not be empty"}
	}
	if len(r.ExerciseName) > MaxNameLength {
		return &ValidationError{Field: "exerciseName", Reason: "must be at most 100 characters"}
	}
	if r.ExerciseType == "" {
		return &ValidationError{Field: "exerciseType", Reason: "must not be empty"}
	}
	if r.Duration < MinDuration || r.Duration > MaxDuration {
		return &ValidationError{Field: "duration", Reason: "must be between 1 and 1440 minutes"}
	}
	if r.CaloriesBurned < MinCalories || r.CaloriesBurned > MaxCalories {
		return &ValidationError{Field: "caloriesBurned", Reason: "must be between 0 and 10000"}
	}
	return nil
}

// SameName reports whether the record's name matches the given name
// under the ledger's trimmed, case-insensitive comparison.
func (r *ExerciseRecord) SameName(name string) bool {
	return strings.EqualFold(r.ExerciseName, strings.TrimSpace(name))
}

// Patch holds the fields an edit may change. Nil fields are left as-is.
type Patch struct {
	ExerciseName   *string `json:"exerciseName,omitempty"`
	ExerciseType   *string `json:"exerciseType,omitempty"`
	Duration       *int    `json:"duration,omitempty"`
	CaloriesBurned *int    `json:"caloriesBurned,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p *Patch) IsEmpty() bool {
	return p.ExerciseName == nil && p.ExerciseType == nil &&
		p.Duration == nil && p.CaloriesBurned == nil
}

// Apply merges the patch into a copy of the record. The name is trimmed
// so the stored form and the duplicate-check form never drift apart.
func (p *Patch) Apply(r ExerciseRecord) ExerciseRecord {
	if p.ExerciseName != nil {
		r.ExerciseName = strings.TrimSpace(*p.ExerciseName)
	}
	if p.ExerciseType != nil {
		r.ExerciseType = strings.TrimSpace(*p.ExerciseType)
	}
	if p.Duration != nil {
		r.Duration = *p.Duration
	}
	if p.CaloriesBurned != nil {
		r.CaloriesBurned = *p.CaloriesBurned
	}
	return r
}
