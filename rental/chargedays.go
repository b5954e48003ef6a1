package rental

import (
	"github.com/warp/tool-rental/generic"
)

// DueDate is the day the tool comes back: checkout plus the rental day count.
func DueDate(checkout generic.TimePoint, rentalDays int) generic.TimePoint {
	return checkout.AddDays(rentalDays)
}

// CountChargeDays counts the billable days of a rental.
//
// The count starts at rentalDays+1 and subtracts, over the inclusive span
// [checkout, checkout+rentalDays], every weekend day when the policy does not
// bill weekends and every observed holiday of the checkout year when it does
// not bill holidays. No floor is applied to the result.
func CountChargeDays(checkout generic.TimePoint, rentalDays int, policy ChargePolicy) (int, error) {
	last := DueDate(checkout, rentalDays)
	chargeDays := rentalDays + 1

	if !policy.WeekendCharge {
		chargeDays -= generic.CountWeekendDays(checkout, last)
	}

	if !policy.HolidayCharge {
		holidays, err := Holidays(checkout.Year())
		if err != nil {
			return 0, err
		}
		for _, h := range holidays {
			if generic.InRange(h.Date, checkout, last) {
				chargeDays--
			}
		}
	}

	return chargeDays, nil
}
