package ach

import (
	"errors"
	"fmt"
)

// Structural parse errors. A '6' record needs an open batch and a '7'
// record needs a preceding entry detail; files violating that ordering are
// rejected outright rather than partially parsed.
var (
	// ErrEntryOutsideBatch reports an entry detail record that appears
	// before any batch header.
	ErrEntryOutsideBatch = errors.New("entry detail record outside an open batch")
	// ErrAddendumOutsideEntry reports an addendum record that appears
	// before any entry detail.
	ErrAddendumOutsideEntry = errors.New("addendum record outside an entry detail")
)

// ValidationError reports a field value that violates its static
// constraint, such as a standard entry class code that is not exactly
// three characters.
type ValidationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UnrecognizedTypeCodeError reports a line whose leading character is not
// one of the known record type codes. Parsing aborts at the first such
// line and no file is returned.
type UnrecognizedTypeCodeError struct {
	TypeCode byte
	Line     string
}

// Error implements the error interface.
func (e *UnrecognizedTypeCodeError) Error() string {
	return fmt.Sprintf("unrecognized type code %q for line: %s", e.TypeCode, e.Line)
}
