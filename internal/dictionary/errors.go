package dictionary

import "errors"

// Common errors returned by dictionary lookups
var (
	// ErrNotFound is returned when no source knows the term
	ErrNotFound = errors.New("term not found in any dictionary")

	// ErrLookupFailed is returned when no source answered and at least one failed
	ErrLookupFailed = errors.New("dictionary lookup failed")

	// ErrInvalidQuery is returned when the term or language is empty
	ErrInvalidQuery = errors.New("invalid dictionary query")
)
