// Package sqlite is an alternate collection store backed by a single SQLite
// file. Each collection is kept as one JSON document row, so the store keeps
// the same whole-collection load/replace semantics as the jsonfile backend.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// Store persists collections in a collections(name, doc) table.
type Store struct {
	db *sql.DB
}

// New opens the database file and verifies the connection.
func New(dataSourceName string) (*Store, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Migrate sets up the schema.
func (s *Store) Migrate() error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS collections (
		name TEXT NOT NULL PRIMARY KEY,
		doc  TEXT NOT NULL
	);`
	_, err := s.db.Exec(sqlStmt)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the named collection into v. A row that has never been written
// loads as an empty collection.
func (s *Store) Load(name string, v any) error {
	var doc string
	err := s.db.QueryRow("SELECT doc FROM collections WHERE name = ?", name).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("read %s collection: %w", name, err)
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return fmt.Errorf("parse %s collection: %w", name, err)
	}
	return nil
}

// Replace overwrites the named collection with v.
func (s *Store) Replace(name string, v any) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", name, err)
	}
	_, err = s.db.Exec(
		"INSERT INTO collections(name, doc) VALUES(?, ?) ON CONFLICT(name) DO UPDATE SET doc = excluded.doc",
		name, string(doc),
	)
	if err != nil {
		return fmt.Errorf("write %s collection: %w", name, err)
	}
	return nil
}
