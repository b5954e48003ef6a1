package generic_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/tool-rental/generic"
)

// =============================================================================
// TIME POINT
// =============================================================================

func TestParseDate_BothLayouts(t *testing.T) {
	us, err := generic.ParseDate("07/02/2020")
	require.NoError(t, err)
	iso, err := generic.ParseDate("2020-07-02")
	require.NoError(t, err)

	assert.True(t, us.Equal(iso))
	assert.Equal(t, "07/02/2020", us.Display())
	assert.Equal(t, "2020-07-02", iso.String())

	_, err = generic.ParseDate("July 2nd")
	assert.Error(t, err)
}

func TestDaysInRange_Inclusive(t *testing.T) {
	from := generic.NewTimePoint(2020, time.February, 27)
	to := generic.NewTimePoint(2020, time.March, 1)

	days := generic.DaysInRange(from, to)
	require.Len(t, days, 4) // leap day included
	assert.True(t, days[2].Equal(generic.NewTimePoint(2020, time.February, 29)))

	assert.Empty(t, generic.DaysInRange(to, from))
	assert.Len(t, generic.DaysInRange(from, from), 1)
}

func TestCountDays_Weekends(t *testing.T) {
	// Thu Jul 2 .. Wed Jul 22 2020 has three full weekends
	from := generic.NewTimePoint(2020, time.July, 2)
	to := generic.NewTimePoint(2020, time.July, 22)
	assert.Equal(t, 6, generic.CountDays(from, to, generic.TimePoint.IsWeekend))
	assert.Equal(t, 15, generic.CountDays(from, to, generic.TimePoint.IsWeekday))
}

func TestCountWeekendDays_MatchesDayByDay(t *testing.T) {
	// Every start weekday and every remainder length
	start := generic.NewTimePoint(2020, time.July, 1)
	for offset := 0; offset < 7; offset++ {
		from := start.AddDays(offset)
		for n := 0; n <= 30; n++ {
			to := from.AddDays(n)
			assert.Equal(t, generic.CountDays(from, to, generic.TimePoint.IsWeekend),
				generic.CountWeekendDays(from, to), "from %s, %d days", from, n)
		}
	}
	assert.Equal(t, 0, generic.CountWeekendDays(start, start.AddDays(-1)))
}

func TestDaysBetween_BeyondDurationRange(t *testing.T) {
	// GIVEN: A span longer than time.Duration can represent (~106,751 days)
	from := generic.NewTimePoint(2020, time.July, 6) // Monday
	to := from.AddDays(200000)

	// THEN: Day arithmetic stays exact
	assert.Equal(t, 200000, generic.DaysBetween(from, to))
	assert.Equal(t, -200000, generic.DaysBetween(to, from))
	assert.Equal(t, 57142, generic.CountWeekendDays(from, to))
	assert.Equal(t, generic.CountDays(from, to, generic.TimePoint.IsWeekend), generic.CountWeekendDays(from, to))
	assert.True(t, generic.InRange(from.AddDays(150000), from, to))
	assert.False(t, generic.InRange(to.AddDays(1), from, to))
}

func TestTimePoint_FromTimeDropsClock(t *testing.T) {
	tp := generic.FromTime(time.Date(2020, time.July, 2, 23, 59, 0, 0, time.UTC))
	assert.True(t, tp.Equal(generic.NewTimePoint(2020, time.July, 2)))
	assert.True(t, tp.AddDays(1).After(tp))
	assert.Equal(t, 1, generic.DaysBetween(tp, tp.AddDays(1)))
}

// =============================================================================
// MONEY
// =============================================================================

func TestMoney_RoundHalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.125", "0.13"},
		{"0.124", "0.12"},
		{"4.186", "4.19"},
		{"0.597", "0.60"},
		{"-0.125", "-0.13"},
		{"5", "5.00"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, generic.MustMoney(tt.in).RoundHalfUp(2).String())
		})
	}
}

func TestMoney_PercentAndDollars(t *testing.T) {
	m := generic.MustMoney("5.97")
	assert.Equal(t, "0.60", m.Percent(10).RoundHalfUp(2).String())
	assert.Equal(t, "$5.97", m.Dollars())
	assert.Equal(t, "$0.00", generic.NewMoneyFromInt(0).Dollars())

	_, err := generic.NewMoneyFromString("abc")
	assert.Error(t, err)
	assert.Panics(t, func() { generic.MustMoney("abc") })
}

// =============================================================================
// ERRORS
// =============================================================================

func TestErrors_Classification(t *testing.T) {
	discount := fmt.Errorf("checkout: %w", &generic.DiscountError{Percent: 101})
	days := &generic.RentalDayCountError{Days: 0}
	notFound := &generic.ToolNotFoundError{Code: "ABCD"}
	badDate := &generic.InvalidDateError{Year: 2020, Reason: "no Monday"}

	assert.True(t, generic.IsClientError(discount))
	assert.True(t, generic.IsClientError(days))
	assert.False(t, generic.IsClientError(notFound))
	assert.True(t, generic.IsNotFound(notFound))
	assert.False(t, generic.IsClientError(badDate))
	assert.True(t, errors.Is(badDate, generic.ErrInvalidDate))

	assert.Equal(t, "invalid discount 101%: must be between 0 and 100", errors.Unwrap(discount).Error())
}
