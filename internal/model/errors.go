package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned by stores on a unique constraint violation.
	ErrConflict = errors.New("already exists")
)
