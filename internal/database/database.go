// Package database opens the SQL store behind the profile and spell slot
// repositories and keeps its schema current.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Kkzin999/sun/internal/logger"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Config holds database connection configuration
type Config struct {
	Driver DialectType

	// SQLitePath is the database file for the sqlite driver
	SQLitePath string

	// DSN is the connection string for the postgres driver, e.g. DATABASE_URL
	DSN string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DB wraps the connection pool with its dialect
type DB struct {
	db      *sql.DB
	dialect Dialect
	qb      *QueryBuilder
}

// Open connects, applies dialect init statements and runs migrations
func Open(ctx context.Context, cfg Config) (*DB, error) {
	dialect, err := NewDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	dsn := cfg.DSN
	if cfg.Driver == DialectSQLite {
		if cfg.SQLitePath == "" {
			return nil, fmt.Errorf("sqlite path is required")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
		dsn = cfg.SQLitePath
	}

	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if cfg.Driver == DialectSQLite {
		// PRAGMAs are per connection
		db.SetMaxOpenConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			db.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			db.SetMaxIdleConns(cfg.MaxIdleConns)
		}
		if cfg.ConnMaxLifetime > 0 {
			db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Driver, err)
	}

	for _, stmt := range dialect.InitStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run %q: %w", stmt, err)
		}
	}

	d := &DB{db: db, dialect: dialect, qb: NewQueryBuilder(dialect)}
	if err := d.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database ready", "driver", cfg.Driver)
	return d, nil
}

// Close closes the connection pool
func (d *DB) Close() error {
	return d.db.Close()
}

// SQL exposes the underlying pool
func (d *DB) SQL() *sql.DB {
	return d.db
}

// Dialect returns the dialect in use
func (d *DB) Dialect() Dialect {
	return d.dialect
}

// Build converts ? placeholders for the dialect in use
func (d *DB) Build(query string) string {
	return d.qb.Build(query)
}

// migrate creates the schema if it doesn't exist. The statements are valid on
// both SQLite and PostgreSQL.
func (d *DB) migrate(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			community_id TEXT NOT NULL,
			character_id TEXT NOT NULL,
			experience BIGINT NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			tokens INTEGER NOT NULL DEFAULT 0,
			currency BIGINT NOT NULL DEFAULT 0,
			class TEXT NOT NULL DEFAULT '',
			current_hp INTEGER NOT NULL,
			max_hp INTEGER NOT NULL,
			attack INTEGER NOT NULL,
			defense INTEGER NOT NULL,
			mana INTEGER NOT NULL,
			max_mana INTEGER NOT NULL,
			created_at BIGINT NOT NULL,
			updated_at BIGINT NOT NULL,
			PRIMARY KEY (community_id, character_id)
		)`,

		`CREATE TABLE IF NOT EXISTS spell_slots (
			community_id TEXT NOT NULL,
			character_id TEXT NOT NULL,
			slot_index INTEGER NOT NULL,
			spell_id TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL DEFAULT 1,
			xp INTEGER NOT NULL DEFAULT 0,
			rarity TEXT NOT NULL DEFAULT '',
			locked BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (community_id, character_id, slot_index)
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.ExecContext(ctx, m); err != nil {
			return err
		}
	}

	return nil
}
