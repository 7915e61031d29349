// Package prover implements the client side of the Chaum–Pedersen login:
// turning a password into a secret exponent, committing to it, and
// answering a verifier challenge.
package prover

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/cryptox"
	"github.com/dmitrijs2005/zkpauth/internal/group"
)

const saltContext = "zkpauth v1 secret salt"

// ParseSecret parses a decimal secret and checks it lies in [1, Q-1].
func ParseSecret(s string) (uint64, error) {
	x, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: secret is not a number", common.ErrInvalidInput)
	}
	if !group.Default.IsSecret(x) {
		return 0, fmt.Errorf("%w: secret must be between 1 and %d", common.ErrInvalidInput, group.Q-1)
	}
	return x, nil
}

// DeriveSecret stretches password with argon2id and maps the result into
// [1, Q-1]. The salt is bound to userName, so equal passwords of
// different users give different secrets.
func DeriveSecret(userName string, password []byte) uint64 {
	key := cryptox.DeriveKey(password, cryptox.UserSalt(saltContext, userName))
	defer common.WipeByteArray(key)

	return 1 + binary.BigEndian.Uint64(key[:8])%(group.Q-1)
}

// SecretFromPassword accepts a password that is itself a valid numeric
// secret unchanged and derives a secret from anything else.
func SecretFromPassword(userName string, password []byte) uint64 {
	if x, err := ParseSecret(string(password)); err == nil {
		return x
	}
	return DeriveSecret(userName, password)
}

// Commit returns the registration commitments y1 = G^x, y2 = H^x mod P.
func Commit(x uint64) (y1, y2 uint64) {
	return group.ModPow(group.G, x, group.P), group.ModPow(group.H, x, group.P)
}

// Commitment is one login attempt's ephemeral secret K and its
// commitments R1 = G^K, R2 = H^K mod P. K must not be reused.
type Commitment struct {
	K, R1, R2 uint64
}

// NewCommitment draws K uniformly from [1, Q-1].
func NewCommitment() (*Commitment, error) {
	k, err := common.RandUint64N(group.Q - 1)
	if err != nil {
		return nil, err
	}
	k++

	r1, r2 := Commit(k)
	return &Commitment{K: k, R1: r1, R2: r2}, nil
}

// Respond computes s = k - c·x mod Q.
func Respond(k, c, x uint64) uint64 {
	return group.ModSub(k, group.ModMul(c, x, group.Q), group.Q)
}
