// Package jsonfile persists each collection as a flat JSON file
// (db.<name>.json) wrapping its array in an object keyed by the collection
// name, e.g. {"posts": [...]}. This matches the layout the frontend's seed
// data uses, so existing data directories keep working.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes collection files under a base directory.
type Store struct {
	dir string
}

// New creates the base directory if needed and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, "db."+name+".json")
}

// Load reads the named collection into v. A missing file is an empty
// collection, not an error.
func (s *Store) Load(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s collection: %w", name, err)
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return fmt.Errorf("parse %s collection: %w", name, err)
	}
	raw, ok := wrapper[name]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parse %s collection: %w", name, err)
	}
	return nil
}

// Replace overwrites the named collection with v.
func (s *Store) Replace(name string, v any) error {
	data, err := json.MarshalIndent(map[string]any{name: v}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s collection: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0644); err != nil {
		return fmt.Errorf("write %s collection: %w", name, err)
	}
	return nil
}
