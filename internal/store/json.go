package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeJSON parses a store file in JSON form: an array of flat objects
// with string values, each carrying the same key set. Go maps do not
// preserve key order, so the schema is recovered from the first
// object's keys in document order via the token stream.
func decodeJSON(data []byte) ([]string, []Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '[' {
		return nil, nil, fmt.Errorf("expected top-level array, got %v", tok)
	}

	var cols []string
	var records []Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		if d, ok := tok.(json.Delim); !ok || d != '{' {
			return nil, nil, fmt.Errorf("record %d: expected object, got %v", len(records)+1, tok)
		}

		rec := make(Record)
		var keys []string
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, nil, fmt.Errorf("record %d: expected object key, got %v", len(records)+1, keyTok)
			}

			var value string
			if err := dec.Decode(&value); err != nil {
				return nil, nil, fmt.Errorf("record %d, field %q: %w", len(records)+1, key, err)
			}
			rec[key] = value
			keys = append(keys, key)
		}
		if _, err := dec.Token(); err != nil { // closing brace
			return nil, nil, err
		}

		if cols == nil {
			cols = keys
		} else if err := checkKeySet(cols, rec, len(records)+1); err != nil {
			return nil, nil, err
		}
		records = append(records, rec)
	}
	if _, err := dec.Token(); err != nil { // closing bracket
		return nil, nil, err
	}

	return cols, records, nil
}

// checkKeySet verifies that a record's key set equals the schema.
func checkKeySet(cols []string, rec Record, n int) error {
	for _, col := range cols {
		if _, ok := rec[col]; !ok {
			return fmt.Errorf("record %d: missing column %q", n, col)
		}
	}
	if len(rec) != len(cols) {
		return fmt.Errorf("record %d: has %d columns, schema has %d", n, len(rec), len(cols))
	}
	return nil
}

// encodeJSON serializes records as an indented JSON array, object keys
// in schema order.
func encodeJSON(cols []string, records []Record) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, rec := range records {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, col := range cols {
			if j > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n    ")
			key, err := json.Marshal(col)
			if err != nil {
				return nil, fmt.Errorf("encoding column %q: %w", col, err)
			}
			buf.Write(key)
			buf.WriteString(": ")
			val, err := json.Marshal(rec[col])
			if err != nil {
				return nil, fmt.Errorf("encoding record %d: %w", i+1, err)
			}
			buf.Write(val)
		}
		buf.WriteString("\n  }")
	}
	if len(records) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return buf.Bytes(), nil
}
