package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roster-cli/roster/internal/store"
)

func TestWarnUnknownCriteria(t *testing.T) {
	s := &store.Store{Columns: []string{"id", "name", "grade"}}

	var buf bytes.Buffer
	warnUnknownCriteria(&buf, s, map[string]string{"name": "John", "height": "180"})
	assert.Contains(t, buf.String(), `unknown column "height"`)
	assert.NotContains(t, buf.String(), `"name"`)

	buf.Reset()
	warnUnknownCriteria(&buf, s, map[string]string{"grade": "A"})
	assert.Empty(t, buf.String())
}
