package models

import "errors"

var (
	// ErrNotFound is returned when a requested resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrConflict is returned when a write violates a uniqueness constraint,
	// e.g. creating a customer with a phone number that is already taken.
	ErrConflict = errors.New("resource already exists")
)
