package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roster-cli/roster/internal/store"
)

func TestDecodeRecord(t *testing.T) {
	fields, err := decodeRecord(`{"id":"1","name":"John Doe"}`)
	require.NoError(t, err)
	assert.Equal(t, store.Record{"id": "1", "name": "John Doe"}, fields)

	// The auto-id path writes into the decoded map.
	fields[store.IDColumn] = "generated"
	assert.Equal(t, "generated", fields[store.IDColumn])
}

func TestDecodeRecordRejectsNull(t *testing.T) {
	_, err := decodeRecord("null")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a JSON object")
}

func TestDecodeRecordRejectsMalformed(t *testing.T) {
	for _, arg := range []string{"{bad", `"John"`, "[]", "42"} {
		_, err := decodeRecord(arg)
		assert.Error(t, err, "arg %q", arg)
	}
}

func TestDecodeCriteria(t *testing.T) {
	criteria, err := decodeCriteria(`{"name":"John"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"name": "John"}, criteria)

	// An empty object is valid and matches every record.
	criteria, err = decodeCriteria("{}")
	require.NoError(t, err)
	require.NotNil(t, criteria)
	assert.Empty(t, criteria)

	_, err = decodeCriteria("null")
	require.Error(t, err)
}
