// Package common defines the sentinel errors shared across layers of the
// Loan Gate backend. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound         = errors.New("not found")
	ErrAccountNotFound  = errors.New("account not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrDuplicateAccount = errors.New("account already exists")
	ErrDuplicateProfile = errors.New("profile already exists")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Credential verification errors.
	ErrInvalidCredential    = errors.New("invalid credentials")
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Bearer token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Generic flow control.
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)
