package rental

import (
	"time"

	"github.com/warp/tool-rental/generic"
)

// =============================================================================
// OBSERVED HOLIDAYS
// =============================================================================

// IndependenceDay returns the observed date of July 4 in year.
// Saturday shifts back to Friday, Sunday forward to Monday.
func IndependenceDay(year int) generic.TimePoint {
	july4 := generic.NewTimePoint(year, time.July, 4)
	switch july4.Weekday() {
	case time.Saturday:
		return july4.AddDays(-1)
	case time.Sunday:
		return july4.AddDays(1)
	default:
		return july4
	}
}

// LaborDay returns the first Monday of September in year.
func LaborDay(year int) (generic.TimePoint, error) {
	first := generic.NewTimePoint(year, time.September, 1)
	for _, d := range generic.DaysInRange(first, first.AddDays(6)) {
		if d.Weekday() == time.Monday {
			return d, nil
		}
	}
	return generic.TimePoint{}, &generic.InvalidDateError{Year: year, Reason: "no Monday in September 1-7"}
}

// Holidays returns the observed holidays of year in date order.
func Holidays(year int) ([]generic.Holiday, error) {
	labor, err := LaborDay(year)
	if err != nil {
		return nil, err
	}
	return []generic.Holiday{
		{Name: "Independence Day", Date: IndependenceDay(year)},
		{Name: "Labor Day", Date: labor},
	}, nil
}

// IsHoliday reports whether date is an observed holiday of its own year.
func IsHoliday(date generic.TimePoint) (bool, error) {
	holidays, err := Holidays(date.Year())
	if err != nil {
		return false, err
	}
	for _, h := range holidays {
		if h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}
