// Package sqlite backs the storage-service boundary with an embedded
// SQLite database: one documents table, one JSON document per entity,
// insertion order kept by an explicit per-kind sequence.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	kind TEXT NOT NULL,
	id   TEXT NOT NULL,
	seq  INTEGER NOT NULL,
	body TEXT NOT NULL,
	PRIMARY KEY (kind, id)
);
CREATE INDEX IF NOT EXISTS idx_documents_kind_seq ON documents (kind, seq);
`

// DB wraps the document store connection.
type DB struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open creates the database file (and its directory) when absent and
// applies the schema.
func Open(path string, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL; PRAGMA busy_timeout=5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Debug("document store opened", zap.String("path", path))
	return &DB{db: db, logger: logger}, nil
}

// Close releases the connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// List returns every document body of one kind in insertion order.
func (d *DB) List(ctx context.Context, kind string) ([][]byte, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT body FROM documents WHERE kind = ? ORDER BY seq`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s documents: %w", kind, err)
	}
	defer rows.Close()

	var bodies [][]byte
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", kind, err)
		}
		bodies = append(bodies, body)
	}
	return bodies, rows.Err()
}

// Get returns one document body, reporting presence explicitly.
func (d *DB) Get(ctx context.Context, kind, id string) ([]byte, bool, error) {
	var body []byte
	err := d.db.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE kind = ? AND id = ?`, kind, id).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get %s document: %w", kind, err)
	}
	return body, true, nil
}

// Put inserts or replaces a document. A fresh insert takes the next
// sequence slot; replacing keeps the original slot so iteration order
// stays insertion order across updates.
func (d *DB) Put(ctx context.Context, kind, id string, body []byte) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO documents (kind, id, seq, body)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM documents WHERE kind = ?), ?)
		ON CONFLICT (kind, id) DO UPDATE SET body = excluded.body`,
		kind, id, kind, body)
	if err != nil {
		return fmt.Errorf("failed to put %s document: %w", kind, err)
	}
	return nil
}

// Delete removes a document, reporting whether it existed.
func (d *DB) Delete(ctx context.Context, kind, id string) (bool, error) {
	res, err := d.db.ExecContext(ctx,
		`DELETE FROM documents WHERE kind = ? AND id = ?`, kind, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete %s document: %w", kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
