// Package store persists generated maps and their attributes in a
// SQLite database.
package store

import (
	"bytes"
	"compress/gzip"
	"database/sql"
	"fmt"
	"io"

	"github.com/MeKo-Tech/terragen/internal/grid"
	_ "modernc.org/sqlite" // SQLite driver
)

// Store reads and writes maps in a SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the database at path, creating it and the schema if needed.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS maps (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS attributes (
			map_id INTEGER NOT NULL REFERENCES maps(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			data BLOB NOT NULL,
			PRIMARY KEY (map_id, position)
		);
	`
	_, err := db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveMap writes the map and all its attributes, replacing a previously
// saved map with the same name. Attribute buffers are gzip-compressed.
func (s *Store) SaveMap(m *grid.Map2d) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck // no-op after commit

	if _, err := tx.Exec("DELETE FROM maps WHERE name = ?", m.Name()); err != nil {
		return fmt.Errorf("failed to delete previous map %q: %w", m.Name(), err)
	}

	result, err := tx.Exec(
		"INSERT INTO maps (name, width, height) VALUES (?, ?, ?)",
		m.Name(), m.Size().Width, m.Size().Height,
	)
	if err != nil {
		return fmt.Errorf("failed to insert map %q: %w", m.Name(), err)
	}
	mapID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get map id: %w", err)
	}

	for position, name := range m.AttributeNames() {
		packed, err := pack(m.Attribute(position).All())
		if err != nil {
			return fmt.Errorf("failed to compress attribute %q: %w", name, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO attributes (map_id, position, name, data) VALUES (?, ?, ?, ?)",
			mapID, position, name, packed,
		); err != nil {
			return fmt.Errorf("failed to insert attribute %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit map %q: %w", m.Name(), err)
	}
	return nil
}

// LoadMap reads a map and all its attributes by name.
func (s *Store) LoadMap(name string) (*grid.Map2d, error) {
	var (
		mapID         int64
		width, height uint32
	)
	err := s.db.QueryRow("SELECT id, width, height FROM maps WHERE name = ?", name).
		Scan(&mapID, &width, &height)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("map %q not found", name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query map %q: %w", name, err)
	}

	m := grid.New(name, grid.NewSize2d(width, height))

	rows, err := s.db.Query(
		"SELECT name, data FROM attributes WHERE map_id = ? ORDER BY position",
		mapID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query attributes of %q: %w", name, err)
	}
	defer rows.Close() // nolint:errcheck

	for rows.Next() {
		var (
			attributeName string
			packed        []byte
		)
		if err := rows.Scan(&attributeName, &packed); err != nil {
			return nil, fmt.Errorf("failed to scan attribute of %q: %w", name, err)
		}
		values, err := unpack(packed)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress attribute %q: %w", attributeName, err)
		}
		if _, err := m.CreateAttributeFrom(attributeName, values); err != nil {
			return nil, fmt.Errorf("stored attribute %q is inconsistent: %w", attributeName, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attributes of %q: %w", name, err)
	}

	return m, nil
}

// ListMaps returns the names of all stored maps.
func (s *Store) ListMaps() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM maps ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan map name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func pack(values []uint8) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(values); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func unpack(packed []byte) ([]uint8, error) {
	r, err := gzip.NewReader(bytes.NewReader(packed))
	if err != nil {
		return nil, err
	}
	defer r.Close() // nolint:errcheck

	return io.ReadAll(r)
}
