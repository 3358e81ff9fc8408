// ABOUTME: Jalali (Shamsi) calendar implementation of the Calendar interface.
// ABOUTME: Backed by yaa110/go-persian-calendar; week starts on Shanbe (Saturday).
package caldate

import (
	"fmt"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// Jalali implements Calendar in the Iranian solar Hijri calendar.
// Now is injectable for tests; nil means time.Now.
type Jalali struct {
	Now func() time.Time
}

func (j *Jalali) now() time.Time {
	if j.Now != nil {
		return j.Now()
	}
	return time.Now()
}

func (j *Jalali) ToKey(t time.Time) string {
	pt := ptime.New(t)
	return formatKey(pt.Year(), int(pt.Month()), pt.Day())
}

func (j *Jalali) Today() string {
	return j.ToKey(j.now())
}

// parse validates the key as a real Jalali date and returns both the
// Jalali value and its Gregorian midnight in UTC for arithmetic.
func (j *Jalali) parse(key string) (ptime.Time, time.Time, error) {
	y, m, d, err := splitKey(key)
	if err != nil {
		return ptime.Time{}, time.Time{}, err
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return ptime.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	pt := ptime.Date(y, ptime.Month(m), d, 0, 0, 0, 0, time.UTC)
	// ptime.Date normalizes out-of-range days (e.g. Esfand 30 in a
	// non-leap year), so a changed round trip means the key was not a
	// real date.
	if pt.Year() != y || int(pt.Month()) != m || pt.Day() != d {
		return ptime.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	g := pt.Time()
	midnight := time.Date(g.Year(), g.Month(), g.Day(), 0, 0, 0, 0, time.UTC)
	return pt, midnight, nil
}

func (j *Jalali) Compare(a, b string) (int, error) {
	ta, err := j.midnight(a)
	if err != nil {
		return 0, err
	}
	tb, err := j.midnight(b)
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

func (j *Jalali) midnight(key string) (time.Time, error) {
	_, m, err := j.parse(key)
	return m, err
}

func (j *Jalali) DaySpan(from string) (int, error) {
	start, err := j.midnight(from)
	if err != nil {
		return 0, err
	}
	today, err := j.midnight(j.Today())
	if err != nil {
		return 0, err
	}
	return civilDays(start, today) + 1, nil
}

func (j *Jalali) AddDays(key string, n int) (string, error) {
	m, err := j.midnight(key)
	if err != nil {
		return "", err
	}
	return j.ToKey(m.AddDate(0, 0, n)), nil
}

func (j *Jalali) StartOfWeek(key string) (string, error) {
	pt, _, err := j.parse(key)
	if err != nil {
		return "", err
	}
	// ptime weekdays count from Shanbe (Saturday) = 0.
	return j.AddDays(key, -int(pt.Weekday()))
}

func (j *Jalali) Label(key string) (string, error) {
	pt, _, err := j.parse(key)
	if err != nil {
		return "", err
	}
	today := j.Today()
	if key == today {
		return "today", nil
	}
	yesterday, err := j.AddDays(today, -1)
	if err != nil {
		return "", err
	}
	if key == yesterday {
		return "yesterday", nil
	}
	return fmt.Sprintf("%s %d %s %d", pt.Weekday().String(), pt.Day(), pt.Month().String(), pt.Year()), nil
}

func (j *Jalali) Format(key string) (string, error) {
	y, m, d, err := splitKey(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d/%02d/%02d", y, m, d), nil
}
