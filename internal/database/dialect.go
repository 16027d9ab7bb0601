package database

import (
	"fmt"
	"strings"
)

// Dialect abstracts the SQL differences between SQLite and PostgreSQL that the
// repositories run into.
type Dialect interface {
	// DriverName returns the driver name for sql.Open()
	DriverName() string

	// Placeholder returns the parameter placeholder for the given 1-indexed position
	Placeholder(position int) string

	// InitStatements run once after connecting
	InitStatements() []string

	// IsDuplicateKeyError returns true if the error is a unique constraint violation
	IsDuplicateKeyError(err error) bool
}

// DialectType identifies the database dialect
type DialectType string

const (
	DialectSQLite   DialectType = "sqlite"
	DialectPostgres DialectType = "postgres"
)

// NewDialect creates a Dialect for the given type
func NewDialect(dialectType DialectType) (Dialect, error) {
	switch dialectType {
	case DialectPostgres:
		return &PostgresDialect{}, nil
	case DialectSQLite:
		return &SQLiteDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", dialectType)
	}
}

// SQLiteDialect implements Dialect for modernc.org/sqlite
type SQLiteDialect struct{}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite"
}

func (d *SQLiteDialect) Placeholder(int) string {
	return "?"
}

func (d *SQLiteDialect) InitStatements() []string {
	return []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
}

func (d *SQLiteDialect) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// PostgresDialect implements Dialect for lib/pq
type PostgresDialect struct{}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

func (d *PostgresDialect) InitStatements() []string {
	return nil
}

// IsDuplicateKeyError checks for SQLSTATE 23505, unique_violation
func (d *PostgresDialect) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}
