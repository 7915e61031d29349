// Package cryptox holds the password hardening primitives used to turn a
// login password into protocol material.
package cryptox

import (
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/argon2"
)

const (
	SaltSize = 16
	KeySize  = 32
)

// UserSalt derives a deterministic salt from a domain label and a user
// name. The prover has no state between runs, so the salt cannot be random.
func UserSalt(domain, userName string) []byte {
	sum := blake3.Sum256([]byte(domain + "\x00" + userName))
	return sum[:SaltSize]
}

// DeriveKey stretches password with argon2id (t=1, 64 MiB, 4 lanes).
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
}
