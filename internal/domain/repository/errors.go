package repository

import "errors"

var (
	// ErrNotFound covers both a missing row and a row owned by another user.
	// The two cases are merged here, at the store boundary, so no handler can
	// leak the existence of a resource under a different owner.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken signals the unique-email constraint fired on registration.
	ErrEmailTaken = errors.New("email already registered")
)
