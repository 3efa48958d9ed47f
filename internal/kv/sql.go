package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite3 driver
)

const createTable = `CREATE TABLE IF NOT EXISTS kv_entries (
	name  TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

const upsert = `INSERT INTO kv_entries (name, value) VALUES (?, ?)
ON CONFLICT (name) DO UPDATE SET value = excluded.value`

// SQLBackend stores values in a single kv_entries table. It works with the
// sqlite3 and postgres drivers.
type SQLBackend struct {
	db *sqlx.DB
}

// NewSQLBackend opens the database and creates the table if needed. An empty
// dsn is rejected: sqlite3 would treat it as a throwaway temporary database.
func NewSQLBackend(ctx context.Context, driver, dsn string) (*SQLBackend, error) {
	if dsn == "" {
		return nil, MissingDSNError{Driver: driver}
	}
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if driver == "sqlite3" {
		// sqlite allows a single writer; serialize through one connection.
		db.SetMaxOpenConns(1)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to %s database: %w", driver, err)
	}
	if _, err = db.ExecContext(ctx, createTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv_entries table: %w", err)
	}
	return &SQLBackend{db: db}, nil
}

// Get returns the value stored under key.
func (s *SQLBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.GetContext(ctx, &value, s.db.Rebind(`SELECT value FROM kv_entries WHERE name = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, KeyNotFoundError{Key: key}
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return []byte(value), nil
}

// Set inserts or replaces the value for key.
func (s *SQLBackend) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(upsert), key, string(value)); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

// Delete removes the row for key.
func (s *SQLBackend) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM kv_entries WHERE name = ?`), key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (s *SQLBackend) Close() error {
	return s.db.Close()
}
