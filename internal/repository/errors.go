package repository

import "errors"

var (
	// ErrNoStore is returned when no document store is configured.
	ErrNoStore = errors.New("document store not configured")
	// ErrUnsupportedScheme is returned by Open for unknown URL schemes.
	ErrUnsupportedScheme = errors.New("unsupported database url scheme")
)
