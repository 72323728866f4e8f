// Package budget implements the cycle calculation engine: cycle calendar
// arithmetic, per-day budget resolution, day entry projection, cycle
// summaries, and the running balance calculation. Everything in this
// package is a pure function over plain values; persistence and HTTP
// live elsewhere.
package budget

import (
	"fmt"
	"strings"
	"time"
)

// Date is a civil calendar date with no time-of-day and no timezone.
// Storing dates as (year, month, day) instead of time.Time removes the
// class of bugs where a DATE column round-trips through a timestamp and
// shifts by a day.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateOf extracts the civil date from t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// ParseDate parses s in the provided location. Two shapes are accepted:
// a bare "YYYY-MM-DD", taken verbatim, and an RFC 3339 timestamp, which
// some storage layers produce for DATE columns after shifting it into
// UTC. A timestamp is converted back into loc before the date is read,
// undoing the shift.
func ParseDate(s string, loc *time.Location) (Date, error) {
	if loc == nil {
		loc = time.Local
	}
	if strings.Contains(s, "T") {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return Date{}, fmt.Errorf("parse date %q: %w", s, err)
		}
		return DateOf(t.In(loc)), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// String formats the date as canonical "YYYY-MM-DD".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

// Weekday returns the day of week, 0=Sunday through 6=Saturday.
func (d Date) Weekday() int {
	return int(d.Time(time.UTC).Weekday())
}

// AddDays returns the date n days after d, normalizing month and year.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// DaysBetween returns the signed number of days from a to b.
func DaysBetween(a, b Date) int {
	return int(b.Time(time.UTC).Sub(a.Time(time.UTC)).Hours() / 24)
}

// dayNames holds the Indonesian abbreviations indexed by weekday (0=Sun).
var dayNames = [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// DayName returns the Indonesian day-name abbreviation for the date.
func (d Date) DayName() string {
	return dayNames[d.Weekday()]
}
