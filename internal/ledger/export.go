// ABOUTME: Export and import of the full store contents.
// ABOUTME: Supports JSON and YAML, grouped per date plus aggregate and types.
package ledger

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/varzesh/fitlog/internal/models"
	"github.com/varzesh/fitlog/internal/registry"
	"github.com/varzesh/fitlog/internal/stats"
)

// DayExport is one date's records in an export file.
type DayExport struct {
	Date      string                  `json:"date" yaml:"date"`
	Exercises []models.ExerciseRecord `json:"exercises" yaml:"exercises"`
}

// ExportData is the versioned full-store export format.
type ExportData struct {
	Version       string                `json:"version" yaml:"version"`
	ExportedAt    time.Time             `json:"exported_at" yaml:"exported_at"`
	Tool          string                `json:"tool" yaml:"tool"`
	Days          []DayExport           `json:"days" yaml:"days"`
	Stats         models.AggregateStats `json:"stats" yaml:"stats"`
	ExerciseTypes []string              `json:"exercise_types" yaml:"exercise_types"`
}

// Export gathers all ledger entries, the aggregate summary and the type
// list into a single export document.
func (l *Ledger) Export() (*ExportData, error) {
	dates, err := l.Dates()
	if err != nil {
		return nil, fmt.Errorf("list dates: %w", err)
	}
	days := make([]DayExport, 0, len(dates))
	for _, d := range dates {
		records, err := l.Get(d)
		if err != nil {
			return nil, err
		}
		days = append(days, DayExport{Date: d, Exercises: records})
	}
	return &ExportData{
		Version:       "1.0",
		ExportedAt:    time.Now(),
		Tool:          "fitlog",
		Days:          days,
		Stats:         l.engine.Current(),
		ExerciseTypes: l.reg.List(),
	}, nil
}

// Import writes an export document back into the store, overwriting
// existing entries for the same keys.
func (l *Ledger) Import(data *ExportData) error {
	for _, day := range data.Days {
		if err := l.validateDate(day.Date); err != nil {
			return err
		}
		if err := l.store.Write(day.Date, day.Exercises); err != nil {
			return fmt.Errorf("import entry for %s: %w", day.Date, err)
		}
	}
	if err := l.store.Write(stats.StatsKey, data.Stats); err != nil {
		return fmt.Errorf("import aggregate stats: %w", err)
	}
	if len(data.ExerciseTypes) > 0 {
		if err := l.store.Write(registry.TypesKey, data.ExerciseTypes); err != nil {
			return fmt.Errorf("import exercise types: %w", err)
		}
	}
	return nil
}

// MarshalExport renders an export document as "json" or "yaml".
func MarshalExport(data *ExportData, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(data, "", "  ")
	case "yaml":
		return yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
}

// UnmarshalExport parses an export document in "json" or "yaml".
func UnmarshalExport(raw []byte, format string) (*ExportData, error) {
	var data ExportData
	switch format {
	case "json":
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse export: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse export: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown export format: %q", format)
	}
	return &data, nil
}
