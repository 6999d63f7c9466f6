package domain

import "errors"

// Domain errors represent business logic failures.
// The computation core itself never returns errors; anomalies resolve to
// sentinel values (DisplayError, NaN, zero). These errors exist for the
// adapters, which validate names and symbols at the boundary before
// handing indices and operators to the core.
var (
	// ErrUnknownCategory indicates a category name outside the catalog.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownUnit indicates a unit name or abbreviation not present
	// in the requested category.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrInvalidOperator indicates an operator symbol outside the
	// calculator's fixed set.
	ErrInvalidOperator = errors.New("invalid operator")

	// ErrInvalidNumber indicates text that does not parse as a number.
	ErrInvalidNumber = errors.New("invalid number")
)
