/*
Package sqlite provides a SQLite-backed tool catalog.

PURPOSE:
  Implements rental.Catalog on top of a tools table so the inventory can
  change without a rebuild. Only catalog data is stored; rental agreements
  are computed per request and never written.

KEY TABLES:
  tools: code (primary key), tool type, brand, timestamps

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. Lookups take the read lock, so
  concurrent checkouts do not serialize on each other.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) so readers don't block
  while the catalog is being reseeded.

USAGE:
  store, err := sqlite.New("./data/tools.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  if _, err := store.SeedIfEmpty(ctx, catalog.DefaultTools()); err != nil {
      log.Fatal(err)
  }
  svc := rental.NewService(store, nil)

SEE ALSO:
  - rental/types.go: Catalog interface
  - catalog/catalog.go: In-memory implementation and JSON definitions
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/tool-rental/catalog"
	"github.com/warp/tool-rental/generic"
	"github.com/warp/tool-rental/rental"
)

// Store implements rental.Catalog using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Compile-time check that Store implements rental.Catalog
var _ rental.Catalog = (*Store)(nil)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Each connection to ":memory:" is its own database.
	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS tools (
		code TEXT PRIMARY KEY,
		tool_type TEXT NOT NULL,
		brand TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tools_type
		ON tools(tool_type);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// TOOL OPERATIONS
// =============================================================================

// SaveTool inserts or updates a tool.
func (s *Store) SaveTool(ctx context.Context, tool rental.Tool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return saveTool(ctx, s.db, tool)
}

func saveTool(ctx context.Context, db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, tool rental.Tool) error {
	if _, err := catalog.FromTool(tool).ToTool(); err != nil {
		return err
	}

	query := `
		INSERT INTO tools (code, tool_type, brand, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(code) DO UPDATE SET
			tool_type = excluded.tool_type,
			brand = excluded.brand,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := db.ExecContext(ctx, query,
		string(catalog.NormalizeCode(string(tool.Code))), string(tool.Type), string(tool.Brand), now, now,
	)
	if err != nil {
		return fmt.Errorf("save tool %s: %w", tool.Code, err)
	}
	return nil
}

// SaveTools writes tools atomically. Either all are saved or none.
func (s *Store) SaveTools(ctx context.Context, tools []rental.Tool) error {
	_, err := s.saveToolsTx(ctx, tools, false)
	return err
}

// SeedIfEmpty saves tools only when the table has no rows.
// Returns true if the seed was written. The emptiness check and the writes
// share one transaction, so concurrent seeders write at most once.
func (s *Store) SeedIfEmpty(ctx context.Context, tools []rental.Tool) (bool, error) {
	return s.saveToolsTx(ctx, tools, true)
}

func (s *Store) saveToolsTx(ctx context.Context, tools []rental.Tool, onlyIfEmpty bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer sqlTx.Rollback()

	if onlyIfEmpty {
		var n int
		if err := sqlTx.QueryRowContext(ctx, "SELECT COUNT(*) FROM tools").Scan(&n); err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}

	for _, tool := range tools {
		if err := saveTool(ctx, sqlTx, tool); err != nil {
			return false, err
		}
	}
	if err := sqlTx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// CountTools returns the number of tools in the catalog.
func (s *Store) CountTools(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM tools").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Lookup retrieves a tool by code.
func (s *Store) Lookup(ctx context.Context, code rental.ToolCode) (rental.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var c, toolType, brand string
	err := s.db.QueryRowContext(ctx,
		"SELECT code, tool_type, brand FROM tools WHERE code = ?",
		string(catalog.NormalizeCode(string(code))),
	).Scan(&c, &toolType, &brand)

	if errors.Is(err, sql.ErrNoRows) {
		return rental.Tool{}, &generic.ToolNotFoundError{Code: string(code)}
	}
	if err != nil {
		return rental.Tool{}, err
	}
	return catalog.ToolJSON{Code: c, Type: toolType, Brand: brand}.ToTool()
}

// List returns all tools ordered by code.
func (s *Store) List(ctx context.Context) ([]rental.Tool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT code, tool_type, brand FROM tools ORDER BY code")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []rental.Tool
	for rows.Next() {
		var def catalog.ToolJSON
		if err := rows.Scan(&def.Code, &def.Type, &def.Brand); err != nil {
			return nil, err
		}
		tool, err := def.ToTool()
		if err != nil {
			return nil, err
		}
		tools = append(tools, tool)
	}
	return tools, rows.Err()
}

// DeleteTool removes a tool. Deleting an unknown code returns ErrToolNotFound.
func (s *Store) DeleteTool(ctx context.Context, code rental.ToolCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM tools WHERE code = ?", string(catalog.NormalizeCode(string(code))))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return &generic.ToolNotFoundError{Code: string(code)}
	}
	return nil
}
