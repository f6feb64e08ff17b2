package domain

import "errors"

// Sentinel errors for the account domain. Use errors.Is() to check these.
var (
	// ErrEmailTaken indicates an account with that email already exists.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials indicates an unknown email or wrong password.
	// The two cases are deliberately not distinguished.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidAccount indicates account attributes violate domain constraints.
	ErrInvalidAccount = errors.New("invalid account")
)
