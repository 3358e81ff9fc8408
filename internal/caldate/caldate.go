// ABOUTME: Calendar abstraction over canonical YYYY-MM-DD date keys.
// ABOUTME: Keeps ledger and stats code independent of the calendar system.
package caldate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateKey is returned for date keys that do not parse as a
// real date in the active calendar. Callers must not coerce silently.
var ErrInvalidDateKey = errors.New("invalid date key")

// Calendar converts between time.Time and canonical sortable date keys
// in one calendar system, and does day arithmetic on those keys.
//
// A date key is always "YYYY-MM-DD" with ASCII digits, zero-padded, in
// the calendar's own year/month/day numbering. Week starts on Saturday
// in both supported calendars so the weekly chart window is identical.
type Calendar interface {
	// ToKey returns the canonical key for the calendar day containing t.
	ToKey(t time.Time) string
	// Today returns the key for the current date.
	Today() string
	// Compare orders two keys chronologically: -1, 0 or 1.
	Compare(a, b string) (int, error)
	// DaySpan returns the inclusive day count from the given key to
	// today: 1 when the key is today, 2 for yesterday, and so on.
	DaySpan(from string) (int, error)
	// AddDays returns the key n days after (or before, if negative) key.
	AddDays(key string, n int) (string, error)
	// StartOfWeek returns the key of the Saturday on or before key.
	StartOfWeek(key string) (string, error)
	// Label returns a human label: "today", "yesterday", or the full
	// formatted date, relative to the current date at call time.
	Label(key string) (string, error)
	// Format renders the key for display, e.g. "1404/06/19".
	Format(key string) (string, error)
}

// New returns the calendar for the given name: "jalali" (the default
// when name is empty) or "gregorian".
func New(name string) (Calendar, error) {
	switch name {
	case "", "jalali":
		return &Jalali{}, nil
	case "gregorian":
		return &Gregorian{}, nil
	default:
		return nil, fmt.Errorf("unknown calendar: %q", name)
	}
}

// splitKey parses "YYYY-MM-DD" into its numeric parts without any
// calendar validation. Range checks are the calendar's job.
func splitKey(key string) (year, month, day int, err error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}

func formatKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// civilDays returns the whole days between two midnights. Both times
// must be UTC midnights so daylight-saving shifts cannot skew the count.
func civilDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
