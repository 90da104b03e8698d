package session

import (
	"errors"
	"fmt"
)

var (
	ErrBusy   = errors.New("session: sort in progress")
	ErrNoRows = errors.New("session: no rows to sort")
)

// RowError reports a strategy failure on one row.
type RowError struct {
	Row       int
	Algorithm string
	Err       error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("session: %s on row %d: %v", e.Algorithm, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
