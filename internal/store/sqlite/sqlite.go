// Package sqlite provides the SQLite-backed store driver.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"imobdesk/internal/store"
)

// Store persists documents in a single SQLite table, one row per document.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default database path: ~/.config/imob/imobdesk.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "imob", "imobdesk.db"), nil
}

// Open opens (or creates) a SQLite database at the given path, enables
// WAL mode, and creates the documents table.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := configure(db); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
		}
		return nil, err
	}

	return &Store{db: db}, nil
}

// configure sets pragmas and runs the schema migration.
func configure(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("executing %s: %w", p, err)
		}
	}

	schema := `CREATE TABLE IF NOT EXISTS documents (
		collection TEXT NOT NULL,
		id         TEXT NOT NULL,
		body       TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (collection, id)
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating documents table: %w", err)
	}

	return nil
}

// List returns all documents in a collection in insertion order.
func (s *Store) List(ctx context.Context, collection string) (docs []store.Document, err error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, body FROM documents WHERE collection = ? ORDER BY rowid",
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var doc store.Document
		var body string
		if err := rows.Scan(&doc.ID, &body); err != nil {
			return nil, fmt.Errorf("scanning %s document: %w", collection, err)
		}
		doc.Body = []byte(body)
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s: %w", collection, err)
	}

	return docs, nil
}

// Get returns a single document by id.
func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	var body string
	err := s.db.QueryRowContext(ctx,
		"SELECT body FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&body)
	if err == sql.ErrNoRows {
		return store.Document{}, store.ErrNotFound
	}
	if err != nil {
		return store.Document{}, fmt.Errorf("querying %s/%s: %w", collection, id, err)
	}
	return store.Document{ID: id, Body: []byte(body)}, nil
}

// Put upserts a document. The upsert keeps the original rowid, so an
// updated document does not move within List order.
func (s *Store) Put(ctx context.Context, collection, id string, body []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body) VALUES (?, ?, ?)
		 ON CONFLICT (collection, id)
		 DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP`,
		collection, id, string(body),
	)
	if err != nil {
		return fmt.Errorf("writing %s/%s: %w", collection, id, err)
	}
	return nil
}

// Delete removes a document by id.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	)
	if err != nil {
		return fmt.Errorf("deleting %s/%s: %w", collection, id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrNotFound
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
