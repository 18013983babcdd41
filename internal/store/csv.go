package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// decodeCSV parses a store file in CSV form. The header row names the
// schema columns in order; every subsequent row is one record. A file
// with no content at all is an empty store.
func decodeCSV(data []byte) ([]string, []Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil, nil
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}

	cols := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(cols))
		for i, col := range cols {
			rec[col] = row[i]
		}
		records = append(records, rec)
	}
	return cols, records, nil
}

// encodeCSV serializes the schema as a header row followed by one row
// per record, values in schema order.
func encodeCSV(cols []string, records []Record) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(cols); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		row := make([]string, len(cols))
		for j, col := range cols {
			row[j] = rec[col]
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing record %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
