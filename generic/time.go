package generic

import (
	"time"
)

// =============================================================================
// TIME POINT - Calendar date used for checkout, due date and holidays
// =============================================================================

// TimePoint is a calendar day. The time of day is always midnight UTC so two
// points built from the same year/month/day compare equal.
type TimePoint struct {
	Time time.Time
}

// DisplayLayout is the MM/DD/YYYY layout used on rendered agreements.
const DisplayLayout = "01/02/2006"

// ISOLayout is the YYYY-MM-DD layout used by the API and the store.
const ISOLayout = "2006-01-02"

// Constructors
func NewTimePoint(year int, month time.Month, day int) TimePoint {
	return TimePoint{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime truncates t to its calendar day.
func FromTime(t time.Time) TimePoint {
	return NewTimePoint(t.Year(), t.Month(), t.Day())
}

func Today() TimePoint {
	return FromTime(time.Now())
}

// ParseDate accepts either MM/DD/YYYY or YYYY-MM-DD.
func ParseDate(s string) (TimePoint, error) {
	t, err := time.Parse(DisplayLayout, s)
	if err == nil {
		return FromTime(t), nil
	}
	t, isoErr := time.Parse(ISOLayout, s)
	if isoErr != nil {
		return TimePoint{}, err
	}
	return FromTime(t), nil
}

// Comparison
func (tp TimePoint) Before(other TimePoint) bool { return tp.normalize().Before(other.normalize()) }
func (tp TimePoint) Equal(other TimePoint) bool  { return tp.normalize().Equal(other.normalize()) }
func (tp TimePoint) After(other TimePoint) bool  { return tp.normalize().After(other.normalize()) }

func (tp TimePoint) normalize() time.Time {
	return time.Date(tp.Time.Year(), tp.Time.Month(), tp.Time.Day(), 0, 0, 0, 0, time.UTC)
}

// Arithmetic
func (tp TimePoint) AddDays(n int) TimePoint { return TimePoint{Time: tp.normalize().AddDate(0, 0, n)} }

// Properties
func (tp TimePoint) Year() int             { return tp.Time.Year() }
func (tp TimePoint) Month() time.Month     { return tp.Time.Month() }
func (tp TimePoint) Day() int              { return tp.Time.Day() }
func (tp TimePoint) Weekday() time.Weekday { return tp.Time.Weekday() }
func (tp TimePoint) IsWeekend() bool       { wd := tp.Weekday(); return wd == time.Saturday || wd == time.Sunday }
func (tp TimePoint) IsWeekday() bool       { return !tp.IsWeekend() }
func (tp TimePoint) IsZero() bool          { return tp.Time.IsZero() }

func (tp TimePoint) String() string { return tp.Time.Format(ISOLayout) }

// Display formats the date as MM/DD/YYYY.
func (tp TimePoint) Display() string { return tp.Time.Format(DisplayLayout) }

// =============================================================================
// HOLIDAY
// =============================================================================

// Holiday is an observed holiday: the date it is recognized after any
// weekend shift, not necessarily its nominal date.
type Holiday struct {
	Name string
	Date TimePoint
}

// =============================================================================
// TIME UTILITIES
// =============================================================================

const secondsPerDay = 24 * 60 * 60

// DaysBetween is the number of calendar days from from to to. Computed from
// Unix seconds so spans longer than time.Duration can hold stay exact.
func DaysBetween(from, to TimePoint) int {
	return int((to.normalize().Unix() - from.normalize().Unix()) / secondsPerDay)
}

// InRange reports whether d lies in [from, to].
func InRange(d, from, to TimePoint) bool {
	return !d.Before(from) && !d.After(to)
}

// DaysInRange returns every day in [from, to], both ends included.
// An empty slice is returned when to is before from. Meant for short
// windows; use CountDays or CountWeekendDays for rental-length spans.
func DaysInRange(from, to TimePoint) []TimePoint {
	n := DaysBetween(from, to)
	if n < 0 {
		return nil
	}
	days := make([]TimePoint, 0, n+1)
	for i := 0; i <= n; i++ {
		days = append(days, from.AddDays(i))
	}
	return days
}

// CountDays counts the days in [from, to] that satisfy match.
func CountDays(from, to TimePoint, match func(TimePoint) bool) int {
	n := DaysBetween(from, to)
	count := 0
	for i := 0; i <= n; i++ {
		if match(from.AddDays(i)) {
			count++
		}
	}
	return count
}

// CountWeekendDays counts Saturdays and Sundays in [from, to] in constant
// time: two per full week, then the leftover days one by one.
func CountWeekendDays(from, to TimePoint) int {
	n := DaysBetween(from, to) + 1
	if n <= 0 {
		return 0
	}
	weeks, rest := n/7, n%7
	count := weeks * 2
	wd := from.Weekday()
	for i := 0; i < rest; i++ {
		switch (wd + time.Weekday(i)) % 7 {
		case time.Saturday, time.Sunday:
			count++
		}
	}
	return count
}
