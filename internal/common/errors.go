// Package common contains shared helpers and sentinel errors used across
// the EduHub client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth flow errors. ErrInvalidCredentials carries the fixed user-facing
	// message shown on the login form regardless of backend detail text.
	ErrInvalidCredentials = errors.New("Incorrect Email/Username or Password")

	// Registration errors.
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrRegistrationFailed = errors.New("Registration failed. Please try again.")
)
