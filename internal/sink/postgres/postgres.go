// Package postgres stores parsed entries and computed summaries in a
// PostgreSQL database, for teams that keep historical traffic data queryable.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/tailwater/sawmill/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS access_entries (
	id      BIGSERIAL PRIMARY KEY,
	ip      TEXT        NOT NULL,
	ts      TIMESTAMPTZ NOT NULL,
	method  TEXT        NOT NULL,
	path    TEXT        NOT NULL,
	status  INT         NOT NULL CHECK (status >= 100 AND status < 600),
	size    BIGINT      NOT NULL CHECK (size >= 0)
);
CREATE INDEX IF NOT EXISTS access_entries_ts_idx ON access_entries (ts);

CREATE TABLE IF NOT EXISTS access_summaries (
	id         BIGSERIAL PRIMARY KEY,
	source     TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	summary    JSONB       NOT NULL
);
`

const insertEntry = `
INSERT INTO access_entries (ip, ts, method, path, status, size)
VALUES (:ip, :ts, :method, :path, :status, :size)`

// Store writes entries and summaries to PostgreSQL.
type Store struct {
	db *sqlx.DB
}

// Open connects to the database, verifies the connection, and ensures the
// schema exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres sink: open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres sink: ping: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres sink: schema: %w", err)
	}
	return &Store{db: db}, nil
}

// InsertEntries writes entries in a single transaction. Either every entry
// lands or none do.
func (s *Store) InsertEntries(ctx context.Context, entries []model.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres sink: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, insertEntry, entries); err != nil {
		return fmt.Errorf("postgres sink: insert: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres sink: commit: %w", err)
	}
	return nil
}

// SaveSummary records one computed summary for the given source file.
func (s *Store) SaveSummary(ctx context.Context, source string, summary model.Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("postgres sink: marshal summary: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO access_summaries (source, summary) VALUES ($1, $2)`, source, data)
	if err != nil {
		return fmt.Errorf("postgres sink: save summary: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}
