// Package challenges implements the challenge ledger: the one-time-use
// mapping from auth_id to an issued login challenge.
package challenges

import (
	"context"

	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

// Repository issues and consumes challenges.
type Repository interface {
	// Create validates that userName is registered, draws a fresh auth_id
	// and challenge scalar, stores the record and returns it. It returns
	// common.ErrUserNotFound, without storing anything, for unknown users.
	Create(ctx context.Context, userName string, r1, r2 uint64) (*models.Challenge, error)

	// Consume atomically removes and returns the record for authID. Of any
	// number of concurrent calls with the same authID at most one succeeds;
	// the rest, and all later calls, get common.ErrChallengeNotFound.
	Consume(ctx context.Context, authID string) (*models.Challenge, error)

	// Len reports the number of outstanding challenges.
	Len() int
}
