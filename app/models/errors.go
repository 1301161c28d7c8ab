package models

import "errors"

// Domain error kinds. Repositories and services wrap these with detail
// via fmt.Errorf("%w: ...", ...); the API surface maps each kind to a
// transport status with errors.Is.
var (
	// ErrValidation marks malformed or out-of-range input. Caller's fault.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail marks a registration against an existing email.
	ErrDuplicateEmail = errors.New("email already exists")

	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password, deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
