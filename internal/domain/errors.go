package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP status codes.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoSeats is returned when a registration finds the conference sold
	// out. It is a Conflict for API purposes but kept distinct so callers
	// can tell it apart from a duplicate registration.
	ErrNoSeats = errors.New("no seats available")
)
