package rental

import (
	"fmt"
	"strings"

	"github.com/warp/tool-rental/generic"
)

// =============================================================================
// RENTAL AGREEMENT - Immutable checkout result
// =============================================================================

// Agreement is the priced result of a checkout. It is built once by Assemble
// and passed by value.
type Agreement struct {
	Tool              Tool
	RentalDayCount    int
	CheckoutDate      generic.TimePoint
	DueDate           generic.TimePoint
	DailyRentalCharge generic.Money
	ChargeDays        int
	DiscountPercent   int
	PreDiscountCharge generic.Money
	DiscountAmount    generic.Money
	FinalCharge       generic.Money
}

// Assemble prices req for tool. req must already be valid.
func Assemble(tool Tool, req Request) (Agreement, error) {
	policy := tool.Policy()

	chargeDays, err := CountChargeDays(req.CheckoutDate, req.RentalDayCount, policy)
	if err != nil {
		return Agreement{}, fmt.Errorf("count charge days: %w", err)
	}
	charges := CalculateCharges(chargeDays, policy.DailyCharge, req.DiscountPercent)

	return Agreement{
		Tool:              tool,
		RentalDayCount:    req.RentalDayCount,
		CheckoutDate:      req.CheckoutDate,
		DueDate:           DueDate(req.CheckoutDate, req.RentalDayCount),
		DailyRentalCharge: policy.DailyCharge,
		ChargeDays:        chargeDays,
		DiscountPercent:   req.DiscountPercent,
		PreDiscountCharge: charges.PreDiscount,
		DiscountAmount:    charges.Discount,
		FinalCharge:       charges.Final,
	}, nil
}

// Equal compares every field, treating monetary values by amount.
func (a Agreement) Equal(b Agreement) bool {
	return a.Tool == b.Tool &&
		a.RentalDayCount == b.RentalDayCount &&
		a.CheckoutDate.Equal(b.CheckoutDate) &&
		a.DueDate.Equal(b.DueDate) &&
		a.DailyRentalCharge.Equal(b.DailyRentalCharge) &&
		a.ChargeDays == b.ChargeDays &&
		a.DiscountPercent == b.DiscountPercent &&
		a.PreDiscountCharge.Equal(b.PreDiscountCharge) &&
		a.DiscountAmount.Equal(b.DiscountAmount) &&
		a.FinalCharge.Equal(b.FinalCharge)
}

// String renders the agreement as the twelve-line summary shown to customers.
func (a Agreement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tool Code: %s\n", a.Tool.Code)
	fmt.Fprintf(&b, "Tool Type: %s\n", a.Tool.Type)
	fmt.Fprintf(&b, "Tool Brand: %s\n", a.Tool.Brand)
	fmt.Fprintf(&b, "Rental Days: %d\n", a.RentalDayCount)
	fmt.Fprintf(&b, "Check Out Date: %s\n", a.CheckoutDate.Display())
	fmt.Fprintf(&b, "Due Date: %s\n", a.DueDate.Display())
	fmt.Fprintf(&b, "Daily Rental Charge: %s\n", a.DailyRentalCharge.Dollars())
	fmt.Fprintf(&b, "Charge Days: %d\n", a.ChargeDays)
	fmt.Fprintf(&b, "Pre-Discount Charge: %s\n", a.PreDiscountCharge.Dollars())
	fmt.Fprintf(&b, "Discount Percent: %d%%\n", a.DiscountPercent)
	fmt.Fprintf(&b, "Discount Amount: %s\n", a.DiscountAmount.Dollars())
	fmt.Fprintf(&b, "Final Charge: %s\n", a.FinalCharge.Dollars())
	return b.String()
}
