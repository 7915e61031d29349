// Package common defines sentinel errors and small helpers shared by the
// prover and verifier sides. Callers should match errors with errors.Is.
package common

import "errors"

var (
	// Protocol errors. Each one is terminal for the login attempt.
	ErrInvalidInput          = errors.New("invalid input")
	ErrUserNotFound          = errors.New("user not found")
	ErrChallengeNotFound     = errors.New("challenge not found")
	ErrAuthenticationFailure = errors.New("authentication failure")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")

	// Session token errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
