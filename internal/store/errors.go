package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by store operations. Callers match on these
// with errors.Is to pick messages and exit codes.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateColumn = errors.New("column already exists")
	ErrUnknownColumn   = errors.New("unknown column")
	ErrProtectedColumn = errors.New("column cannot be removed")
)

// ParseError reports a store file whose contents are not valid CSV or
// JSON for the bound format.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
