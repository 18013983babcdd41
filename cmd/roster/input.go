package main

import (
	"encoding/json"
	"fmt"

	"github.com/roster-cli/roster/internal/store"
)

// decodeRecord parses a JSON object argument into a record. A JSON
// null decodes into a nil map without error, so it is rejected here
// before callers write into the map.
func decodeRecord(arg string) (store.Record, error) {
	var fields store.Record
	if err := json.Unmarshal([]byte(arg), &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		return nil, fmt.Errorf("expected a JSON object")
	}
	return fields, nil
}

// decodeCriteria parses a JSON object argument into search criteria.
func decodeCriteria(arg string) (map[string]string, error) {
	var criteria map[string]string
	if err := json.Unmarshal([]byte(arg), &criteria); err != nil {
		return nil, err
	}
	if criteria == nil {
		return nil, fmt.Errorf("expected a JSON object")
	}
	return criteria, nil
}
