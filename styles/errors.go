package styles

import "errors"

var (
	// ErrUnresolved is returned when neither tier of a record supplies an
	// attribute id. Only detached or malformed records hit this.
	ErrUnresolved = errors.New("styles: attribute id unresolved")

	// ErrNotFound is returned when an id does not address a pool entry.
	ErrNotFound = errors.New("styles: pool entry not found")

	// ErrInvalidValue is returned by setters given an out of range value.
	// The record is left untouched.
	ErrInvalidValue = errors.New("styles: invalid value")
)
