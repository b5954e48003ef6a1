/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the rental model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

MONEY:
  Monetary fields are strings with exactly two fractional digits
  ("41.86") so clients never see binary float artifacts.

DATES:
  Requests accept MM/DD/YYYY or YYYY-MM-DD. Responses use YYYY-MM-DD.

SEE ALSO:
  - handlers.go: Uses these types
  - rental/agreement.go: Agreement type
*/
package api

import (
	"github.com/warp/tool-rental/rental"
)

// ToolDTO represents a tool and its charge policy.
type ToolDTO struct {
	Code          string `json:"code"`
	Type          string `json:"type"`
	Brand         string `json:"brand"`
	DailyCharge   string `json:"daily_charge"`
	WeekdayCharge bool   `json:"weekday_charge"`
	WeekendCharge bool   `json:"weekend_charge"`
	HolidayCharge bool   `json:"holiday_charge"`
}

// CheckoutRequest is the request to price a rental.
type CheckoutRequest struct {
	ToolCode        string `json:"tool_code"`
	RentalDays      int    `json:"rental_days"`
	DiscountPercent int    `json:"discount_percent"`
	CheckoutDate    string `json:"checkout_date"`
}

// AgreementDTO represents a priced rental agreement.
type AgreementDTO struct {
	AgreementID       string  `json:"agreement_id"`
	Tool              ToolDTO `json:"tool"`
	RentalDays        int     `json:"rental_days"`
	CheckoutDate      string  `json:"checkout_date"`
	DueDate           string  `json:"due_date"`
	DailyRentalCharge string  `json:"daily_rental_charge"`
	ChargeDays        int     `json:"charge_days"`
	DiscountPercent   int     `json:"discount_percent"`
	PreDiscountCharge string  `json:"pre_discount_charge"`
	DiscountAmount    string  `json:"discount_amount"`
	FinalCharge       string  `json:"final_charge"`
	Summary           string  `json:"summary"`
}

// HolidayDTO represents an observed holiday.
type HolidayDTO struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func toToolDTO(t rental.Tool) ToolDTO {
	p := t.Policy()
	return ToolDTO{
		Code:          string(t.Code),
		Type:          string(t.Type),
		Brand:         string(t.Brand),
		DailyCharge:   p.DailyCharge.String(),
		WeekdayCharge: p.WeekdayCharge,
		WeekendCharge: p.WeekendCharge,
		HolidayCharge: p.HolidayCharge,
	}
}

func toAgreementDTO(id string, a rental.Agreement) AgreementDTO {
	return AgreementDTO{
		AgreementID:       id,
		Tool:              toToolDTO(a.Tool),
		RentalDays:        a.RentalDayCount,
		CheckoutDate:      a.CheckoutDate.String(),
		DueDate:           a.DueDate.String(),
		DailyRentalCharge: a.DailyRentalCharge.String(),
		ChargeDays:        a.ChargeDays,
		DiscountPercent:   a.DiscountPercent,
		PreDiscountCharge: a.PreDiscountCharge.String(),
		DiscountAmount:    a.DiscountAmount.String(),
		FinalCharge:       a.FinalCharge.String(),
		Summary:           a.String(),
	}
}
