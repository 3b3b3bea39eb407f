// Package store holds the repository façades over the shared database
// handle. Each façade is built once at startup and is safe for concurrent use.
package store

import "errors"

// Sentinel errors returned by the façades.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("duplicate")
	ErrInvalidReference = errors.New("invalid reference")
)
