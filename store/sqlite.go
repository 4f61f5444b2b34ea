package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps values in a single KV table
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a sqlite database at dsn
func NewSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store %v: %w", dsn, err)
	}
	if _, err = db.ExecContext(ctx, "CREATE TABLE IF NOT EXISTS KV (Key TEXT PRIMARY KEY, Value TEXT NOT NULL)"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create KV table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key Key) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT Value FROM KV WHERE Key = ?", string(key)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key Key, value string) error {
	_, err := s.db.ExecContext(ctx, "INSERT INTO KV (Key, Value) VALUES (?, ?) ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value", string(key), value)
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
