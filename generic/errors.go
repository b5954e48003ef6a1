/*
errors.go - Centralized error types for the rental engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers match on the sentinels with errors.Is and read details from
  the structured types with errors.As.

ERROR CATEGORIES:
  1. Request errors - Discount or day count outside the accepted range
  2. Catalog errors - Unknown tool code, malformed catalog definition
  3. Internal errors - Holiday resolution found no matching day

USAGE:
  agreement, err := svc.Checkout(ctx, req)
  if errors.Is(err, generic.ErrToolNotFound) {
      // ask for another code
  }

SEE ALSO:
  - rental/checkout.go: Raises request errors
  - catalog/catalog.go: Raises catalog errors
  - rental/holidays.go: Raises ErrInvalidDate
*/
package generic

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDiscount is returned when the discount is outside [0, 100].
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")

	// ErrInvalidRentalDayCount is returned when fewer than one rental day is requested.
	ErrInvalidRentalDayCount = errors.New("rental day count must be 1 or greater")

	// ErrToolNotFound is returned when a tool code is not in the catalog.
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidDate signals a holiday computation that found no date in its
	// search window. It indicates a defect, not bad input.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidCatalog is returned when a catalog definition cannot be loaded.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// DiscountError reports the rejected discount.
type DiscountError struct {
	Percent int
}

func (e *DiscountError) Error() string {
	return fmt.Sprintf("invalid discount %d%%: must be between 0 and 100", e.Percent)
}

func (e *DiscountError) Unwrap() error { return ErrInvalidDiscount }

// RentalDayCountError reports the rejected day count.
type RentalDayCountError struct {
	Days int
}

func (e *RentalDayCountError) Error() string {
	return fmt.Sprintf("invalid rental day count %d: must be 1 or greater", e.Days)
}

func (e *RentalDayCountError) Unwrap() error { return ErrInvalidRentalDayCount }

// ToolNotFoundError names the code that failed the lookup.
type ToolNotFoundError struct {
	Code string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %s not found, please try another code", e.Code)
}

func (e *ToolNotFoundError) Unwrap() error { return ErrToolNotFound }

// InvalidDateError describes which holiday search failed.
type InvalidDateError struct {
	Year   int
	Reason string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date for year %d: %s", e.Year, e.Reason)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDiscount) ||
		errors.Is(err, ErrInvalidRentalDayCount)
}

// IsNotFound returns true if the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrToolNotFound)
}
