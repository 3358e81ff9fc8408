// ABOUTME: Gregorian calendar implementation of the Calendar interface.
// ABOUTME: Same key format and Saturday week start as the Jalali calendar.
package caldate

import (
	"fmt"
	"time"
)

// Gregorian implements Calendar using the proleptic Gregorian calendar.
// Now is injectable for tests; nil means time.Now.
type Gregorian struct {
	Now func() time.Time
}

func (g *Gregorian) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Gregorian) ToKey(t time.Time) string {
	return formatKey(t.Year(), int(t.Month()), t.Day())
}

func (g *Gregorian) Today() string {
	return g.ToKey(g.now())
}

func (g *Gregorian) midnight(key string) (time.Time, error) {
	y, m, d, err := splitKey(key)
	if err != nil {
		return time.Time{}, err
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes, so reject keys like 2026-02-30.
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return t, nil
}

func (g *Gregorian) Compare(a, b string) (int, error) {
	ta, err := g.midnight(a)
	if err != nil {
		return 0, err
	}
	tb, err := g.midnight(b)
	if err != nil {
		return 0, err
	}
	switch {
	case ta.Before(tb):
		return -1, nil
	case ta.After(tb):
		return 1, nil
	default:
		return 0, nil
	}
}

func (g *Gregorian) DaySpan(from string) (int, error) {
	start, err := g.midnight(from)
	if err != nil {
		return 0, err
	}
	today, err := g.midnight(g.Today())
	if err != nil {
		return 0, err
	}
	return civilDays(start, today) + 1, nil
}

func (g *Gregorian) AddDays(key string, n int) (string, error) {
	m, err := g.midnight(key)
	if err != nil {
		return "", err
	}
	return g.ToKey(m.AddDate(0, 0, n)), nil
}

func (g *Gregorian) StartOfWeek(key string) (string, error) {
	m, err := g.midnight(key)
	if err != nil {
		return "", err
	}
	// Saturday-based week index: Saturday 0 ... Friday 6.
	idx := (int(m.Weekday()) + 1) % 7
	return g.AddDays(key, -idx)
}

func (g *Gregorian) Label(key string) (string, error) {
	m, err := g.midnight(key)
	if err != nil {
		return "", err
	}
	today := g.Today()
	if key == today {
		return "today", nil
	}
	yesterday, err := g.AddDays(today, -1)
	if err != nil {
		return "", err
	}
	if key == yesterday {
		return "yesterday", nil
	}
	return m.Format("Monday 2 January 2006"), nil
}

func (g *Gregorian) Format(key string) (string, error) {
	y, m, d, err := splitKey(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d/%02d/%02d", y, m, d), nil
}
