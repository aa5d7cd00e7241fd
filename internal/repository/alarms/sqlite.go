package alarms

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Registers the "sqlite" driver.
)

const createRecordsTable = `CREATE TABLE IF NOT EXISTS alarm_records (
	name TEXT PRIMARY KEY,
	data BLOB NOT NULL
)`

// SQLiteBackend stores every blob as a row of the alarm_records table.
type SQLiteBackend struct {
	// db is the open database handle.
	db *sql.DB
}

// OpenSQLiteBackend opens or creates the database at path.
func OpenSQLiteBackend(ctx context.Context, path string) (*SQLiteBackend, error) {
	path = filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(path), defaultDirPermissions); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if _, err = db.ExecContext(ctx, createRecordsTable); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("create alarm_records table: %w", err)
	}

	return &SQLiteBackend{
		db: db,
	}, nil
}

// Close closes the database.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Read returns the data of the row.
func (b *SQLiteBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var data []byte

	err := b.db.QueryRowContext(ctx, `SELECT data FROM alarm_records WHERE name = ?`, name).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("select %s: %w", name, err)
	}

	return data, nil
}

// Write upserts the row.
func (b *SQLiteBackend) Write(ctx context.Context, name string, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO alarm_records (name, data) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		name, data)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", name, err)
	}

	return nil
}

// Delete removes the row.
func (b *SQLiteBackend) Delete(ctx context.Context, name string) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM alarm_records WHERE name = ?`, name); err != nil {
		return fmt.Errorf("delete %s: %w", name, err)
	}

	return nil
}
