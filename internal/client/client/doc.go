// Package client talks to the authentication server on behalf of the prover.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the three protocol calls: Register, CreateChallenge and VerifyAnswer.
//  2. A concrete gRPC implementation (see GRPCClient) that manages the
//     connection, bounds every call with the configured timeout and maps
//     gRPC status codes to sentinel errors.
//
// # Error Handling
//
// Server rejections are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrUserNotFound,
// ErrChallengeNotFound, ErrInvalidInput. NotFound is resolved per call:
// CreateChallenge reports ErrUserNotFound, VerifyAnswer ErrChallengeNotFound.
//
// # Concurrency & Contexts
//
// GRPCClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
