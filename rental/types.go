// Package rental implements tool rental checkout.
// It maps tool types to charge policies, counts chargeable days around
// weekends and observed holidays, and prices the resulting agreement.
package rental

import (
	"context"

	"github.com/warp/tool-rental/generic"
)

// =============================================================================
// TOOL
// =============================================================================

// ToolType determines the charge policy of a tool.
type ToolType string

const (
	Ladder     ToolType = "Ladder"
	Chainsaw   ToolType = "Chainsaw"
	Jackhammer ToolType = "Jackhammer"
)

// ToolTypes lists every tool type in a stable order.
func ToolTypes() []ToolType {
	return []ToolType{Ladder, Chainsaw, Jackhammer}
}

// Valid reports whether t is one of the known tool types.
func (t ToolType) Valid() bool {
	_, ok := policies[t]
	return ok
}

type ToolBrand string

const (
	Werner ToolBrand = "Werner"
	Stihl  ToolBrand = "Stihl"
	DeWalt ToolBrand = "DeWalt"
	Ridgid ToolBrand = "Ridgid"
)

type ToolCode string

const (
	CodeLADW ToolCode = "LADW"
	CodeCHNS ToolCode = "CHNS"
	CodeJAKD ToolCode = "JAKD"
	CodeJAKR ToolCode = "JAKR"
)

// Tool is a rentable item. Two tools are equal when type, brand and code match.
type Tool struct {
	Type  ToolType
	Brand ToolBrand
	Code  ToolCode
}

// Policy returns the charge policy for the tool's type.
func (t Tool) Policy() ChargePolicy { return PolicyFor(t.Type) }

// =============================================================================
// CATALOG - Tool lookup collaborator
// =============================================================================

// Catalog resolves tool codes. Lookup returns an error wrapping
// generic.ErrToolNotFound for unknown codes.
type Catalog interface {
	Lookup(ctx context.Context, code ToolCode) (Tool, error)
	List(ctx context.Context) ([]Tool, error)
}

// =============================================================================
// REQUEST
// =============================================================================

// Request is the input to a checkout.
type Request struct {
	ToolCode        ToolCode
	RentalDayCount  int
	DiscountPercent int
	CheckoutDate    generic.TimePoint
}

// Validate checks the ranges the pricing code relies on.
func (r Request) Validate() error {
	if r.DiscountPercent < 0 || r.DiscountPercent > 100 {
		return &generic.DiscountError{Percent: r.DiscountPercent}
	}
	if r.RentalDayCount < 1 {
		return &generic.RentalDayCountError{Days: r.RentalDayCount}
	}
	return nil
}
