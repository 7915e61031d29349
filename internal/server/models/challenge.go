package models

import "time"

// Challenge is one issued, not yet answered login attempt. R1 = G^k and
// R2 = H^k are the prover's commitments for an ephemeral k; C is the
// verifier's random scalar. A Challenge is consumed exactly once.
type Challenge struct {
	AuthID   string
	UserName string
	R1       uint64
	R2       uint64
	C        uint64
	IssuedAt time.Time
}
