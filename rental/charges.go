package rental

import "github.com/warp/tool-rental/generic"

// Charges are the three monetary figures of an agreement, each rounded
// HALF_UP to cents before it feeds the next.
type Charges struct {
	PreDiscount generic.Money
	Discount    generic.Money
	Final       generic.Money
}

// CalculateCharges prices chargeDays at dailyCharge and applies discountPercent.
func CalculateCharges(chargeDays int, dailyCharge generic.Money, discountPercent int) Charges {
	pre := dailyCharge.MulInt(chargeDays).RoundHalfUp(generic.CurrencyScale)
	discount := pre.Percent(discountPercent).RoundHalfUp(generic.CurrencyScale)
	final := pre.Sub(discount).RoundHalfUp(generic.CurrencyScale)
	return Charges{PreDiscount: pre, Discount: discount, Final: final}
}
