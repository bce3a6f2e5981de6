package core

import "errors"

// Common errors. All internal failures are recovered locally and surfaced
// through these sentinels; nothing in the persistence core panics outward.
var (
	// ErrNotFound signals that no note matches the requested id.
	ErrNotFound = errors.New("note not found")

	// ErrPinLimit signals that pinning would exceed the pin cap.
	ErrPinLimit = errors.New("pin limit reached")

	// ErrWriteFailed signals that the storage medium rejected the write
	// (quota, disabled storage). The in-memory result was not committed.
	ErrWriteFailed = errors.New("storage write failed")

	// ErrImportLimit signals that today's import quota is exhausted.
	ErrImportLimit = errors.New("daily import limit reached")

	// ErrNoImportableNotes signals that a file parsed but yielded no valid
	// notes in any recognized shape.
	ErrNoImportableNotes = errors.New("no importable notes in file")

	// ErrInvalidFile signals a rejected import file (extension or size)
	// before any bytes were read.
	ErrInvalidFile = errors.New("invalid import file")

	// ErrValidation signals that a merged update failed revalidation and
	// the stored record was left untouched.
	ErrValidation = errors.New("note failed validation")
)
