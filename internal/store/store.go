// Package store implements a flat student-record store persisted to a
// single CSV or JSON file.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies the on-disk encoding of a store file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// IDColumn is the lookup key for update and delete operations. Its
// uniqueness is not enforced; the first matching record wins.
const IDColumn = "id"

// DefaultFilename is the store file used when nothing else is configured.
const DefaultFilename = "students.csv"

// DefaultColumns is the schema written into freshly created store files.
var DefaultColumns = []string{"id", "name", "age", "grade"}

// FormatForPath derives the file format from the path extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("file must be either CSV or JSON format: %s", path)
}

// Store holds the record sequence, the active schema and the file the
// store is bound to. Every record's key set equals Columns after any
// completed operation. Mutations happen in memory; callers persist with
// Save after each mutating operation.
type Store struct {
	Columns []string
	Records []Record
	Path    string
	Format  Format
}

// Load reads a store from path. An absent file yields an empty store
// with an empty schema bound to the same path. Unparseable contents
// fail with a *ParseError.
func Load(path string, format Format) (*Store, error) {
	s := &Store{Path: path, Format: format}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}

	switch format {
	case FormatCSV:
		s.Columns, s.Records, err = decodeCSV(data)
	case FormatJSON:
		s.Columns, s.Records, err = decodeJSON(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, &ParseError{Path: path, Format: format, Err: err}
	}

	return s, nil
}

// Open loads the store at path, creating the file with the default
// schema when it does not exist. A file that parses to an empty schema
// (an empty CSV or an empty JSON array) also gets the default schema,
// so a fresh store is always usable.
func Open(path string, format Format) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating store directory: %w", err)
			}
		}
		s := &Store{
			Columns: append([]string(nil), DefaultColumns...),
			Path:    path,
			Format:  format,
		}
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	s, err := Load(path, format)
	if err != nil {
		return nil, err
	}
	if len(s.Columns) == 0 {
		s.Columns = append([]string(nil), DefaultColumns...)
	}
	return s, nil
}

// Save serializes the record sequence and schema to the bound file,
// fully overwriting prior contents. The write goes through a temp file
// and a rename so a failed write never truncates the store.
func (s *Store) Save() error {
	var data []byte
	var err error

	switch s.Format {
	case FormatCSV:
		data, err = encodeCSV(s.Columns, s.Records)
	case FormatJSON:
		data, err = encodeJSON(s.Columns, s.Records)
	default:
		err = fmt.Errorf("unknown format %q", s.Format)
	}
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	return writeFileAtomic(s.Path, data)
}

// AddRecord appends a new record. Schema columns missing from fields
// are filled with an empty string; keys outside the schema are ignored.
func (s *Store) AddRecord(fields Record) {
	rec := make(Record, len(s.Columns))
	for _, col := range s.Columns {
		rec[col] = fields[col]
	}
	s.Records = append(s.Records, rec)
}

// UpdateRecord overwrites the supplied in-schema fields of the first
// record whose id equals id, leaving other fields unchanged. Fails with
// ErrNotFound when no record matches.
func (s *Store) UpdateRecord(id string, fields Record) error {
	i := s.indexByID(id)
	if i < 0 {
		return fmt.Errorf("student %q: %w", id, ErrNotFound)
	}
	for _, col := range s.Columns {
		if v, ok := fields[col]; ok {
			s.Records[i][col] = v
		}
	}
	return nil
}

// DeleteRecord removes the first record whose id equals id. Fails with
// ErrNotFound when no record matches.
func (s *Store) DeleteRecord(id string) error {
	i := s.indexByID(id)
	if i < 0 {
		return fmt.Errorf("student %q: %w", id, ErrNotFound)
	}
	s.Records = append(s.Records[:i], s.Records[i+1:]...)
	return nil
}

func (s *Store) indexByID(id string) int {
	for i, rec := range s.Records {
		if rec[IDColumn] == id {
			return i
		}
	}
	return -1
}

// Search returns every record matching all criteria, in store order.
// A record matches when, for each criterion column, its value contains
// the criterion pattern (case-sensitive). Empty criteria match every
// record; criteria naming columns outside the schema match nothing.
func (s *Store) Search(criteria map[string]string) []Record {
	matched := make([]Record, 0, len(s.Records))
	for _, rec := range s.Records {
		if rec.matches(criteria) {
			matched = append(matched, rec)
		}
	}
	return matched
}

// HasColumn reports whether name is in the schema.
func (s *Store) HasColumn(name string) bool {
	for _, col := range s.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// AddColumn appends name to the schema and sets def on every existing
// record. Names are normalized to lower case. Fails with
// ErrDuplicateColumn when the column already exists.
func (s *Store) AddColumn(name, def string) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return fmt.Errorf("column name is required")
	}
	if s.HasColumn(name) {
		return fmt.Errorf("column %q: %w", name, ErrDuplicateColumn)
	}

	s.Columns = append(s.Columns, name)
	for _, rec := range s.Records {
		rec[name] = def
	}
	return nil
}

// RemoveColumn drops name from the schema and deletes it from every
// record. The id column cannot be removed.
func (s *Store) RemoveColumn(name string) error {
	if name == IDColumn {
		return fmt.Errorf("column %q: %w", name, ErrProtectedColumn)
	}
	if !s.HasColumn(name) {
		return fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}

	cols := make([]string, 0, len(s.Columns)-1)
	for _, col := range s.Columns {
		if col != name {
			cols = append(cols, col)
		}
	}
	s.Columns = cols
	for _, rec := range s.Records {
		delete(rec, name)
	}
	return nil
}

// SelectColumns returns the named columns of every record as rows, in
// store order. Fails with ErrUnknownColumn when a name is not in the
// schema.
func (s *Store) SelectColumns(names []string) ([][]string, error) {
	for _, name := range names {
		if !s.HasColumn(name) {
			return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
		}
	}

	rows := make([][]string, 0, len(s.Records))
	for _, rec := range s.Records {
		row := make([]string, len(names))
		for i, name := range names {
			row[i] = rec[name]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ChangeFile rebinds the store to a new path and format. In-memory data
// is not migrated; callers reload when they want the new file's
// contents.
func (s *Store) ChangeFile(path string, format Format) {
	s.Path = path
	s.Format = format
}

// writeFileAtomic writes data via a temp file in the same directory
// followed by a rename.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	success = true
	return nil
}
