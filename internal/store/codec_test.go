package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			s := newTestStore(t, format)
			s.AddRecord(Record{"id": "3", "name": "Third, \"quoted\"", "age": "19", "grade": "C"})

			if err := s.Save(); err != nil {
				t.Fatalf("Save: %v", err)
			}

			loaded, err := Load(s.Path, format)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !reflect.DeepEqual(loaded.Columns, s.Columns) {
				t.Errorf("Columns = %v, want %v", loaded.Columns, s.Columns)
			}
			if !reflect.DeepEqual(loaded.Records, s.Records) {
				t.Errorf("Records = %v, want %v", loaded.Records, s.Records)
			}
		})
	}
}

func TestRoundTripAfterMutations(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			s := newTestStore(t, format)

			s.AddRecord(Record{"id": "3", "name": "Ada Lovelace", "age": "28", "grade": "A"})
			if err := s.UpdateRecord("1", Record{"grade": "B"}); err != nil {
				t.Fatalf("UpdateRecord: %v", err)
			}
			if err := s.DeleteRecord("2"); err != nil {
				t.Fatalf("DeleteRecord: %v", err)
			}

			if err := s.Save(); err != nil {
				t.Fatalf("Save: %v", err)
			}
			loaded, err := Load(s.Path, format)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}

			if !reflect.DeepEqual(loaded.Columns, s.Columns) {
				t.Errorf("Columns = %v, want %v", loaded.Columns, s.Columns)
			}
			if !reflect.DeepEqual(loaded.Records, s.Records) {
				t.Errorf("Records = %v, want %v", loaded.Records, s.Records)
			}
			if loaded.Records[0]["id"] != "1" || loaded.Records[1]["id"] != "3" {
				t.Error("record order not preserved across save/load")
			}
		})
	}
}

func TestAddColumnSurvivesRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatJSON} {
		t.Run(string(format), func(t *testing.T) {
			s := newTestStore(t, format)

			if err := s.AddColumn("email", ""); err != nil {
				t.Fatalf("AddColumn: %v", err)
			}
			if err := s.Save(); err != nil {
				t.Fatalf("Save: %v", err)
			}

			loaded, err := Load(s.Path, format)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if got := loaded.Columns[len(loaded.Columns)-1]; got != "email" {
				t.Errorf("last column = %q, want %q", got, "email")
			}
			for i, rec := range loaded.Records {
				if v, ok := rec["email"]; !ok || v != "" {
					t.Errorf("record %d email = %q (present %v), want empty string", i, v, ok)
				}
			}
		})
	}
}

func TestJSONColumnOrderRecovered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	content := `[
  {"zeta": "1", "alpha": "x", "mid": "y"},
  {"zeta": "2", "alpha": "z", "mid": "w"}
]`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	s, err := Load(path, FormatJSON)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"zeta", "alpha", "mid"}
	if !reflect.DeepEqual(s.Columns, want) {
		t.Errorf("Columns = %v, want %v", s.Columns, want)
	}
}

func TestLoadInvalidCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	content := "id,name\n1,John\n2,Jane,extra\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	_, err := Load(path, FormatCSV)
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("Load error = %v, want *ParseError", err)
	}
	if parseErr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not an array", `{"id": "1"}`},
		{"non-string value", `[{"id": 1}]`},
		{"truncated", `[{"id": "1"`},
		{"mismatched key set", `[{"id": "1", "name": "a"}, {"id": "2"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "students.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("writing file: %v", err)
			}

			_, err := Load(path, FormatJSON)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Errorf("Load error = %v, want *ParseError", err)
			}
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	for _, format := range []Format{FormatCSV, FormatJSON} {
		path := filepath.Join(t.TempDir(), "empty")
		if err := os.WriteFile(path, []byte(""), 0644); err != nil {
			t.Fatalf("writing file: %v", err)
		}

		s, err := Load(path, format)
		if err != nil {
			t.Fatalf("Load(%s): %v", format, err)
		}
		if len(s.Columns) != 0 || len(s.Records) != 0 {
			t.Errorf("Load(%s): got %v/%v, want empty store", format, s.Columns, s.Records)
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := newTestStore(t, FormatCSV)
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := s.DeleteRecord("1"); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if strings.Contains(string(data), "John Doe") {
		t.Error("deleted record still present in saved file")
	}
}

// A JSON file with zero records serializes to an empty array, which
// carries no schema. Reloading recovers an empty schema and Open falls
// back to the default columns; only the CSV header preserves a custom
// schema across an empty save.
func TestJSONEmptyStoreDropsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.json")
	s := &Store{
		Columns: []string{"id", "name", "house"},
		Path:    path,
		Format:  FormatJSON,
	}
	if err := s.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path, FormatJSON)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded.Columns) != 0 {
		t.Errorf("Columns = %v, want empty", loaded.Columns)
	}

	opened, err := Open(path, FormatJSON)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !reflect.DeepEqual(opened.Columns, DefaultColumns) {
		t.Errorf("Columns = %v, want %v", opened.Columns, DefaultColumns)
	}
}

func TestCSVHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	if err := os.WriteFile(path, []byte("id,name,age,grade\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	s, err := Load(path, FormatCSV)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"id", "name", "age", "grade"}
	if !reflect.DeepEqual(s.Columns, want) {
		t.Errorf("Columns = %v, want %v", s.Columns, want)
	}
	if len(s.Records) != 0 {
		t.Errorf("Records = %v, want empty", s.Records)
	}
}
