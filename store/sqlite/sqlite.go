/*
Package sqlite provides a SQLite-backed store for the differential catalog
and saved compensation calculations.

PURPOSE:
  The engine itself is pure; this package holds the two things the
  service persists around it:
  - differential_types: the catalog, one JSON definition per type, ordered
  - calculations:       results of POST /api/differentials/calculate

KEY TABLES:
  differential_types:
    type        TEXT PRIMARY KEY
    position    INTEGER   catalog order; kept on update, appended on insert
    category    TEXT
    config_json TEXT      factory.TypeConfigJSON
    updated_at  TEXT

  calculations:
    id               TEXT PRIMARY KEY (uuid)
    annual_salary    TEXT decimal
    shift_hours      REAL
    base_monthly ... TEXT decimal, rounded to cents
    confidence       TEXT
    result_json      TEXT full compensation.Result
    created_at       TEXT

MONEY COLUMNS:
  Dollar amounts are stored as decimal strings rounded to cents so that
  reports read back exactly what was shown. The engine keeps float64.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. An in-memory database is pinned to
  a single connection since every new connection would see an empty DB.

USAGE:
  store, err := sqlite.New("./data/payengine.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - factory/catalog.go: Parses ConfigJSON
  - api/handlers.go: Reads and writes through this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("record not found")

// Store implements catalog and calculation persistence using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
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
	-- Differential catalog
	CREATE TABLE IF NOT EXISTS differential_types (
		type TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		category TEXT NOT NULL,
		config_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_differential_types_position
		ON differential_types(position);
	CREATE INDEX IF NOT EXISTS idx_differential_types_category
		ON differential_types(category, position);

	-- Saved calculations
	CREATE TABLE IF NOT EXISTS calculations (
		id TEXT PRIMARY KEY,
		annual_salary TEXT NOT NULL,
		shift_hours REAL NOT NULL,
		base_monthly TEXT NOT NULL,
		total_monthly TEXT NOT NULL,
		annual_total TEXT NOT NULL,
		effective_hourly TEXT NOT NULL,
		confidence TEXT NOT NULL,
		result_json TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_calculations_created_at
		ON calculations(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// CATALOG STORE
// =============================================================================

// TypeConfigRecord is a stored differential type with its JSON definition.
type TypeConfigRecord struct {
	Type       string
	Position   int
	Category   string
	ConfigJSON string
	UpdatedAt  time.Time
}

// SaveTypeConfig inserts or updates a differential type. A new type is
// appended to the end of the catalog; an existing one keeps its position.
func (s *Store) SaveTypeConfig(ctx context.Context, rec TypeConfigRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO differential_types (type, position, category, config_json, updated_at)
		VALUES (?, (SELECT COALESCE(MAX(position) + 1, 0) FROM differential_types), ?, ?, ?)
		ON CONFLICT(type) DO UPDATE SET
			category = excluded.category,
			config_json = excluded.config_json,
			updated_at = excluded.updated_at
	`

	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, query, rec.Type, rec.Category, rec.ConfigJSON, now)
	return err
}

// SeedTypeConfigs inserts recs in order when the catalog is empty.
// It reports whether anything was inserted.
func (s *Store) SeedTypeConfigs(ctx context.Context, recs []TypeConfigRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var count int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM differential_types").Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	for i, rec := range recs {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO differential_types (type, position, category, config_json, updated_at) VALUES (?, ?, ?, ?, ?)",
			rec.Type, i, rec.Category, rec.ConfigJSON, now,
		)
		if err != nil {
			return false, fmt.Errorf("seed %s: %w", rec.Type, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}

// GetTypeConfig retrieves a differential type. Returns nil when absent.
func (s *Store) GetTypeConfig(ctx context.Context, typ string) (*TypeConfigRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r TypeConfigRecord
	var updatedAt string

	err := s.db.QueryRowContext(ctx,
		"SELECT type, position, category, config_json, updated_at FROM differential_types WHERE type = ?",
		typ,
	).Scan(&r.Type, &r.Position, &r.Category, &r.ConfigJSON, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &r, nil
}

// ListTypeConfigs returns the catalog in position order.
func (s *Store) ListTypeConfigs(ctx context.Context) ([]TypeConfigRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT type, position, category, config_json, updated_at FROM differential_types ORDER BY position",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []TypeConfigRecord
	for rows.Next() {
		var r TypeConfigRecord
		var updatedAt string
		if err := rows.Scan(&r.Type, &r.Position, &r.Category, &r.ConfigJSON, &updatedAt); err != nil {
			return nil, err
		}
		r.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteTypeConfig removes a differential type. Returns ErrNotFound when absent.
func (s *Store) DeleteTypeConfig(ctx context.Context, typ string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM differential_types WHERE type = ?", typ)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// =============================================================================
// CALCULATION STORE
// =============================================================================

// CalculationRecord is a saved compensation calculation.
type CalculationRecord struct {
	ID              string
	AnnualSalary    decimal.Decimal
	ShiftHours      float64
	BaseMonthly     decimal.Decimal
	TotalMonthly    decimal.Decimal
	AnnualTotal     decimal.Decimal
	EffectiveHourly decimal.Decimal
	Confidence      string
	ResultJSON      string
	CreatedAt       time.Time
}

// SaveCalculation stores a calculation. IDs are unique; saving an existing
// ID fails.
func (s *Store) SaveCalculation(ctx context.Context, c CalculationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO calculations (id, annual_salary, shift_hours, base_monthly, total_monthly,
			annual_total, effective_hourly, confidence, result_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.AnnualSalary.String(), c.ShiftHours,
		c.BaseMonthly.StringFixed(2), c.TotalMonthly.StringFixed(2),
		c.AnnualTotal.StringFixed(2), c.EffectiveHourly.StringFixed(2),
		c.Confidence, c.ResultJSON, createdAt.UTC().Format(createdAtLayout),
	)
	if isUniqueConstraintError(err) {
		return fmt.Errorf("calculation %s already exists: %w", c.ID, err)
	}
	return err
}

// GetCalculation retrieves a calculation. Returns ErrNotFound when absent.
func (s *Store) GetCalculation(ctx context.Context, id string) (*CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, calculationColumns+" WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	c, err := scanCalculation(rows)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCalculations returns the most recent calculations first.
func (s *Store) ListCalculations(ctx context.Context, limit int) ([]CalculationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, calculationColumns+" ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CalculationRecord
	for rows.Next() {
		c, err := scanCalculation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// createdAtLayout is fixed width so that created_at sorts lexically.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

const calculationColumns = `
	SELECT id, annual_salary, shift_hours, base_monthly, total_monthly,
		annual_total, effective_hourly, confidence, result_json, created_at
	FROM calculations`

func scanCalculation(rows *sql.Rows) (CalculationRecord, error) {
	var c CalculationRecord
	var annual, base, total, annualTotal, hourly, createdAt string

	if err := rows.Scan(&c.ID, &annual, &c.ShiftHours, &base, &total,
		&annualTotal, &hourly, &c.Confidence, &c.ResultJSON, &createdAt); err != nil {
		return c, err
	}

	c.AnnualSalary = parseDecimal(annual)
	c.BaseMonthly = parseDecimal(base)
	c.TotalMonthly = parseDecimal(total)
	c.AnnualTotal = parseDecimal(annualTotal)
	c.EffectiveHourly = parseDecimal(hourly)
	c.CreatedAt, _ = time.Parse(createdAtLayout, createdAt)
	return c, nil
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"calculations", "differential_types"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

func parseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
