package client

import (
	"context"
)

// Challenge is the verifier's reply to a commitment: the id of the pending
// login and the challenge scalar c.
type Challenge struct {
	AuthID string
	C      uint64
}

type Client interface {
	Close() error
	Register(ctx context.Context, userName string, y1, y2 uint64) (string, error)
	CreateChallenge(ctx context.Context, userName string, r1, r2 uint64) (*Challenge, error)
	VerifyAnswer(ctx context.Context, authID string, s uint64) (string, error)
	SetSession(token string)
}
