// Package common defines shared sentinel errors used across curio
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors. Specific reasons wrap this sentinel, e.g.
	// fmt.Errorf("%w: name cannot be empty", ErrValidation).
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrInvalidCredentials deliberately covers both
	// "unknown email" and "wrong password" so callers cannot tell
	// the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
)
