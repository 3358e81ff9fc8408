// ABOUTME: Daily exercise ledger, the per-date record collections.
// ABOUTME: Every successful mutation triggers exactly one aggregate update.
package ledger

import (
	"fmt"

	"github.com/varzesh/fitlog/internal/caldate"
	"github.com/varzesh/fitlog/internal/kv"
	"github.com/varzesh/fitlog/internal/models"
	"github.com/varzesh/fitlog/internal/registry"
	"github.com/varzesh/fitlog/internal/stats"
)

// Ledger owns the per-date exercise entries. Each date's records are
// stored as one JSON array under the raw date key; absence of the key
// is the source of truth for "this date has no activity".
type Ledger struct {
	store  kv.Store
	cal    caldate.Calendar
	reg    *registry.Registry
	engine *stats.Engine
}

// New returns a ledger over the given collaborators.
func New(store kv.Store, cal caldate.Calendar, reg *registry.Registry, engine *stats.Engine) *Ledger {
	return &Ledger{store: store, cal: cal, reg: reg, engine: engine}
}

// Stats exposes the aggregate engine for read paths.
func (l *Ledger) Stats() *stats.Engine { return l.engine }

// Registry exposes the exercise type registry.
func (l *Ledger) Registry() *registry.Registry { return l.reg }

// Calendar exposes the active calendar.
func (l *Ledger) Calendar() caldate.Calendar { return l.cal }

func (l *Ledger) validateDate(date string) error {
	if _, err := l.cal.Compare(date, date); err != nil {
		return err
	}
	return nil
}

// Get returns the records for one date, oldest first. A missing or
// corrupt entry reads as zero records.
func (l *Ledger) Get(date string) ([]models.ExerciseRecord, error) {
	if err := l.validateDate(date); err != nil {
		return nil, err
	}
	return kv.Read(l.store, date, []models.ExerciseRecord{}), nil
}

// CaloriesOn returns the calorie sum for one date's records.
func (l *Ledger) CaloriesOn(date string) (int, error) {
	records, err := l.Get(date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range records {
		total += r.CaloriesBurned
	}
	return total, nil
}

// DurationOn returns the duration sum for one date's records.
func (l *Ledger) DurationOn(date string) (int, error) {
	records, err := l.Get(date)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range records {
		total += r.Duration
	}
	return total, nil
}

// Add appends a record to the date's entry. The exercise name must be
// unique for the date under trimmed, case-insensitive comparison, and
// the exercise type must be registered at time of creation.
func (l *Ledger) Add(date string, rec *models.ExerciseRecord) error {
	if err := l.validateDate(date); err != nil {
		return err
	}
	rec.Date = date
	if err := rec.Validate(); err != nil {
		return err
	}
	if !l.reg.Contains(rec.ExerciseType) {
		return fmt.Errorf("%w: %q", models.ErrUnknownType, rec.ExerciseType)
	}

	records, err := l.Get(date)
	if err != nil {
		return err
	}
	for _, existing := range records {
		if existing.SameName(rec.ExerciseName) {
			return models.ErrDuplicateName
		}
	}

	if err := l.store.Write(date, append(records, *rec)); err != nil {
		return fmt.Errorf("save exercises for %s: %w", date, err)
	}
	return l.engine.OnAdd(rec)
}

// Update merges a patch into the named record for the date. Boundary
// state is untouched since the record keeps its date.
func (l *Ledger) Update(date, name string, patch *models.Patch) error {
	if err := l.validateDate(date); err != nil {
		return err
	}
	records, err := l.Get(date)
	if err != nil {
		return err
	}
	idx := findRecord(records, name)
	if idx < 0 {
		return models.ErrNotFound
	}

	original := records[idx]
	patched := patch.Apply(original)
	if err := patched.Validate(); err != nil {
		return err
	}
	for i, existing := range records {
		if i != idx && existing.SameName(patched.ExerciseName) {
			return models.ErrDuplicateName
		}
	}

	records[idx] = patched
	if err := l.store.Write(date, records); err != nil {
		return fmt.Errorf("save exercises for %s: %w", date, err)
	}
	return l.engine.OnUpdate(original, patched)
}

// Remove deletes the named record and returns it. When the date's last
// record goes, the date's storage entry is deleted outright rather than
// left as an empty list.
func (l *Ledger) Remove(date, name string) (*models.ExerciseRecord, error) {
	if err := l.validateDate(date); err != nil {
		return nil, err
	}
	records, err := l.Get(date)
	if err != nil {
		return nil, err
	}
	idx := findRecord(records, name)
	if idx < 0 {
		return nil, models.ErrNotFound
	}

	removed := records[idx]
	remaining := append(records[:idx:idx], records[idx+1:]...)
	wasLast := len(remaining) == 0

	if wasLast {
		if err := l.store.Remove(date); err != nil {
			return nil, fmt.Errorf("remove entry for %s: %w", date, err)
		}
	} else {
		if err := l.store.Write(date, remaining); err != nil {
			return nil, fmt.Errorf("save exercises for %s: %w", date, err)
		}
	}
	if err := l.engine.OnRemove(date, removed, wasLast); err != nil {
		return nil, err
	}
	return &removed, nil
}

// Dates returns every date key that currently has records, in
// chronological order.
func (l *Ledger) Dates() ([]string, error) {
	keys, err := l.store.Keys("")
	if err != nil {
		return nil, err
	}
	var dates []string
	for _, k := range keys {
		if l.validateDate(k) == nil {
			dates = append(dates, k)
		}
	}
	if err := l.sortDates(dates); err != nil {
		return nil, err
	}
	return dates, nil
}

func (l *Ledger) sortDates(dates []string) error {
	// Insertion sort via the calendar's comparator; the date set is
	// small and Compare returns errors sort.Slice cannot surface.
	for i := 1; i < len(dates); i++ {
		for j := i; j > 0; j-- {
			cmp, err := l.cal.Compare(dates[j], dates[j-1])
			if err != nil {
				return err
			}
			if cmp >= 0 {
				break
			}
			dates[j], dates[j-1] = dates[j-1], dates[j]
		}
	}
	return nil
}

func findRecord(records []models.ExerciseRecord, name string) int {
	for i, r := range records {
		if r.SameName(name) {
			return i
		}
	}
	return -1
}
