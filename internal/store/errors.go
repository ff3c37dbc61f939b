package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced item, employee or customer
	// does not resolve to an existing row.
	ErrNotFound = errors.New("not found")

	// ErrInsufficientStock is returned when an issue or sale quantity
	// exceeds the available shop stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInvalidQuantity is returned for negative quantities, or a sale
	// quantity below one.
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// ValidationError reports a missing or out-of-range field before any write
// has happened.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
