package store

import "strings"

// Record is one student's data as a flat column-to-value mapping. All
// records in a store share the schema's key set.
type Record map[string]string

// Clone returns a copy of the record.
func (r Record) Clone() Record {
	c := make(Record, len(r))
	for k, v := range r {
		c[k] = v
	}
	return c
}

// matches reports whether, for every criterion column, the record's
// value contains the criterion pattern. Matching is case-sensitive; a
// criterion column the record does not have never matches.
func (r Record) matches(criteria map[string]string) bool {
	for col, pattern := range criteria {
		v, ok := r[col]
		if !ok || !strings.Contains(v, pattern) {
			return false
		}
	}
	return true
}
