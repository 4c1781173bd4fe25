package saql

import (
	"errors"
	"fmt"
)

// MaxLimit is the largest row count a limit statement accepts.
const MaxLimit = 10000

// ErrEmptyDataset is recorded when Load is given an empty dataset name.
var ErrEmptyDataset = errors.New("load: dataset name must not be empty")

// LimitError is recorded when a limit statement is constructed with a value
// outside (0, MaxLimit].
type LimitError struct {
	// Limit is the offending value.
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("limit must be in range (0, %d], got %d", MaxLimit, e.Limit)
}

// ArityError is recorded when a statement that requires at least one
// argument is constructed with none.
type ArityError struct {
	// Op names the statement kind ("foreach", "filter", ...).
	Op string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s requires at least one argument", e.Op)
}
