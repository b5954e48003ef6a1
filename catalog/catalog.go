/*
Package catalog provides JSON tool definitions and an in-memory Catalog.

PURPOSE:
  Converts JSON tool definitions into rental.Tool values and serves
  lookups by code. The store can be seeded from the same definitions,
  so the list of rentable tools lives in one place.

JSON SCHEMA:
  [
    {"code": "LADW", "type": "Ladder", "brand": "Werner"},
    {"code": "CHNS", "type": "Chainsaw", "brand": "Stihl"}
  ]

KEY FEATURES:
  - Validates code, brand and type
  - Rejects duplicate codes
  - Codes are matched case-insensitively on lookup

USAGE:
  cat, err := catalog.NewMemoryFromJSON([]byte(catalog.DefaultToolsJSON))
  tool, err := cat.Lookup(ctx, "JAKR")

SEE ALSO:
  - rental/types.go: Catalog interface
  - store/sqlite/sqlite.go: Persistent catalog
*/
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/warp/tool-rental/generic"
	"github.com/warp/tool-rental/rental"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ToolJSON is the JSON representation of a tool.
type ToolJSON struct {
	Code  string `json:"code"`
	Type  string `json:"type"`
	Brand string `json:"brand"`
}

// DefaultToolsJSON is the standard rental inventory.
const DefaultToolsJSON = `[
  {"code": "CHNS", "type": "Chainsaw", "brand": "Stihl"},
  {"code": "LADW", "type": "Ladder", "brand": "Werner"},
  {"code": "JAKD", "type": "Jackhammer", "brand": "DeWalt"},
  {"code": "JAKR", "type": "Jackhammer", "brand": "Ridgid"}
]`

// ParseTools decodes and validates a JSON tool list.
func ParseTools(data []byte) ([]rental.Tool, error) {
	var defs []ToolJSON
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %v", generic.ErrInvalidCatalog, err)
	}

	seen := make(map[rental.ToolCode]bool, len(defs))
	tools := make([]rental.Tool, 0, len(defs))
	for i, d := range defs {
		tool, err := d.ToTool()
		if err != nil {
			return nil, fmt.Errorf("tool %d: %w", i, err)
		}
		if seen[tool.Code] {
			return nil, fmt.Errorf("%w: duplicate code %s", generic.ErrInvalidCatalog, tool.Code)
		}
		seen[tool.Code] = true
		tools = append(tools, tool)
	}
	return tools, nil
}

// DefaultTools returns the standard inventory.
func DefaultTools() []rental.Tool {
	tools, err := ParseTools([]byte(DefaultToolsJSON))
	if err != nil {
		panic(err)
	}
	return tools
}

// ToTool validates the definition.
func (d ToolJSON) ToTool() (rental.Tool, error) {
	code := NormalizeCode(d.Code)
	if code == "" {
		return rental.Tool{}, fmt.Errorf("%w: code is required", generic.ErrInvalidCatalog)
	}
	if strings.TrimSpace(d.Brand) == "" {
		return rental.Tool{}, fmt.Errorf("%w: brand is required for %s", generic.ErrInvalidCatalog, code)
	}
	toolType := rental.ToolType(d.Type)
	if !toolType.Valid() {
		return rental.Tool{}, fmt.Errorf("%w: unknown tool type %q for %s", generic.ErrInvalidCatalog, d.Type, code)
	}
	return rental.Tool{
		Type:  toolType,
		Brand: rental.ToolBrand(strings.TrimSpace(d.Brand)),
		Code:  code,
	}, nil
}

// FromTool is the inverse of ToTool.
func FromTool(t rental.Tool) ToolJSON {
	return ToolJSON{Code: string(t.Code), Type: string(t.Type), Brand: string(t.Brand)}
}

// NormalizeCode upper-cases and trims a tool code.
func NormalizeCode(code string) rental.ToolCode {
	return rental.ToolCode(strings.ToUpper(strings.TrimSpace(code)))
}

// =============================================================================
// MEMORY CATALOG - Read-only after construction
// =============================================================================

// Memory is an in-memory rental.Catalog.
type Memory struct {
	tools  []rental.Tool
	byCode map[rental.ToolCode]rental.Tool
}

// Compile-time check that Memory implements rental.Catalog
var _ rental.Catalog = (*Memory)(nil)

func NewMemory(tools []rental.Tool) *Memory {
	m := &Memory{
		tools:  make([]rental.Tool, len(tools)),
		byCode: make(map[rental.ToolCode]rental.Tool, len(tools)),
	}
	copy(m.tools, tools)
	for _, t := range tools {
		m.byCode[t.Code] = t
	}
	return m
}

// NewDefault returns a catalog holding DefaultTools.
func NewDefault() *Memory {
	return NewMemory(DefaultTools())
}

func NewMemoryFromJSON(data []byte) (*Memory, error) {
	tools, err := ParseTools(data)
	if err != nil {
		return nil, err
	}
	return NewMemory(tools), nil
}

func (m *Memory) Lookup(_ context.Context, code rental.ToolCode) (rental.Tool, error) {
	tool, ok := m.byCode[NormalizeCode(string(code))]
	if !ok {
		return rental.Tool{}, &generic.ToolNotFoundError{Code: string(code)}
	}
	return tool, nil
}

func (m *Memory) List(_ context.Context) ([]rental.Tool, error) {
	out := make([]rental.Tool, len(m.tools))
	copy(out, m.tools)
	return out, nil
}
