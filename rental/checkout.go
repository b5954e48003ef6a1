/*
checkout.go - Checkout service

PURPOSE:
  Entry point for pricing a rental. Validates the request, resolves the
  tool through the Catalog, and assembles the agreement.

FLOW:
  1. Validate discount (0-100) and day count (>= 1)
  2. Catalog lookup (ErrToolNotFound passes through unchanged)
  3. Assemble: policy -> charge days -> charges -> Agreement

CONCURRENCY:
  Service holds no mutable state. Checkout may be called from any number
  of goroutines as long as the Catalog is safe for concurrent reads.

SEE ALSO:
  - agreement.go: Assemble and rendering
  - catalog/catalog.go: In-memory Catalog
  - store/sqlite/sqlite.go: SQLite Catalog
*/
package rental

import (
	"context"
	"log/slog"
)

// Service prices checkouts against a catalog.
type Service struct {
	catalog Catalog
	log     *slog.Logger
}

// NewService creates a checkout service. A nil logger uses slog.Default().
func NewService(catalog Catalog, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{catalog: catalog, log: log}
}

// Checkout validates req and returns its priced agreement.
func (s *Service) Checkout(ctx context.Context, req Request) (Agreement, error) {
	if err := req.Validate(); err != nil {
		s.log.WarnContext(ctx, "checkout rejected", "tool_code", req.ToolCode, "error", err)
		return Agreement{}, err
	}

	tool, err := s.catalog.Lookup(ctx, req.ToolCode)
	if err != nil {
		s.log.WarnContext(ctx, "tool lookup failed", "tool_code", req.ToolCode, "error", err)
		return Agreement{}, err
	}

	agreement, err := Assemble(tool, req)
	if err != nil {
		s.log.ErrorContext(ctx, "assemble agreement", "tool_code", req.ToolCode, "error", err)
		return Agreement{}, err
	}

	s.log.InfoContext(ctx, "checkout priced",
		"tool_code", tool.Code,
		"rental_days", agreement.RentalDayCount,
		"charge_days", agreement.ChargeDays,
		"final_charge", agreement.FinalCharge.String(),
	)
	return agreement, nil
}

// Tools lists the rentable tools.
func (s *Service) Tools(ctx context.Context) ([]Tool, error) {
	return s.catalog.List(ctx)
}

// Tool returns a single tool by code.
func (s *Service) Tool(ctx context.Context, code ToolCode) (Tool, error) {
	return s.catalog.Lookup(ctx, code)
}
