/*
Package generic provides domain-agnostic primitives for the rental engine.

PURPOSE:
  Calendar dates, currency amounts and error types shared by the rental
  core, the catalog, the store and the HTTP API. Nothing in this package
  knows about tools or charge policies.

KEY CONCEPTS IN THIS FILE (types.go):
  - Money: A currency amount backed by decimal.Decimal
  - Percent: A whole-number percentage (0-100 once validated)

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal, never float64, for currency
  2. Rounding: HALF_UP (ties away from zero) at an explicit scale
  3. Immutability: Every operation returns a new value

USAGE:
  rate := generic.MustMoney("2.99")
  pre := rate.MulInt(14).RoundHalfUp(2)       // 41.86
  off := pre.Percent(10).RoundHalfUp(2)       // 4.19
  final := pre.Sub(off).RoundHalfUp(2)        // 37.67

SEE ALSO:
  - time.go: TimePoint calendar dates
  - errors.go: Sentinel and structured errors
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// MONEY - Currency amount (single currency, no conversion)
// =============================================================================

// CurrencyScale is the number of fractional digits carried by charges.
const CurrencyScale int32 = 2

type Money struct {
	Value decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

func NewMoneyFromInt(value int64) Money { return Money{Value: decimal.NewFromInt(value)} }

// NewMoneyFromString parses a decimal string such as "1.99".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Value: d}, nil
}

// MustMoney parses s and panics on malformed input. Only for constants.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic("generic: invalid money literal " + s)
	}
	return m
}

func (m Money) Sub(b Money) Money        { return Money{Value: m.Value.Sub(b.Value)} }
func (m Money) MulInt(n int) Money       { return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(n)))} }
func (m Money) IsZero() bool             { return m.Value.IsZero() }
func (m Money) Equal(b Money) bool       { return m.Value.Equal(b.Value) }
func (m Money) GreaterThan(b Money) bool { return m.Value.GreaterThan(b.Value) }

// Percent returns m × pct / 100, unrounded.
func (m Money) Percent(pct int) Money {
	return Money{Value: m.Value.Mul(decimal.NewFromInt(int64(pct))).Div(hundred)}
}

// RoundHalfUp rounds to places fractional digits, ties away from zero.
func (m Money) RoundHalfUp(places int32) Money {
	return Money{Value: m.Value.Round(places)}
}

// String renders the amount with exactly CurrencyScale fractional digits.
func (m Money) String() string { return m.Value.StringFixed(CurrencyScale) }

// Dollars renders the amount with a leading "$".
func (m Money) Dollars() string { return "$" + m.String() }
