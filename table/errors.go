package table

import "errors"

// Sentinel errors returned by Table operations.
var (
	// ErrNonNumeric is returned by Sum when an array-part value cannot be
	// treated as a number.
	ErrNonNumeric = errors.New("table: non-numeric value")

	// ErrMissingBounds is returned by Slice when called without a start
	// index.
	ErrMissingBounds = errors.New("table: slice requires a start index")

	// ErrMacroNotFound is returned when an unregistered macro name is
	// called.
	ErrMacroNotFound = errors.New("table: macro not found")
)
