/*
policies.go - Charge policy per tool type

PURPOSE:
  Every tool type has exactly one charge policy: a daily rate and which
  kinds of day are billed. The table is fixed; there is no per-tool or
  per-store override.

POLICIES:
  Type        Daily   Weekday  Weekend  Holiday
  Ladder      $1.99   yes      yes      no
  Chainsaw    $1.49   yes      no       yes
  Jackhammer  $2.99   yes      no       no

SEE ALSO:
  - chargedays.go: Applies WeekendCharge / HolidayCharge
  - charges.go: Applies DailyCharge
*/
package rental

import "github.com/warp/tool-rental/generic"

// ChargePolicy describes how a tool type is billed.
type ChargePolicy struct {
	DailyCharge   generic.Money
	WeekdayCharge bool
	WeekendCharge bool
	HolidayCharge bool
}

var policies = map[ToolType]ChargePolicy{
	Ladder: {
		DailyCharge:   generic.MustMoney("1.99"),
		WeekdayCharge: true,
		WeekendCharge: true,
		HolidayCharge: false,
	},
	Chainsaw: {
		DailyCharge:   generic.MustMoney("1.49"),
		WeekdayCharge: true,
		WeekendCharge: false,
		HolidayCharge: true,
	},
	Jackhammer: {
		DailyCharge:   generic.MustMoney("2.99"),
		WeekdayCharge: true,
		WeekendCharge: false,
		HolidayCharge: false,
	},
}

// PolicyFor returns the charge policy of t. Unknown types get the zero policy;
// catalogs reject them before they reach pricing.
func PolicyFor(t ToolType) ChargePolicy {
	return policies[t]
}
