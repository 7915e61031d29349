// Package group implements fixed-parameter arithmetic over the order-Q
// subgroup of Z*_P used by the Chaum–Pedersen authentication protocol.
//
// Group elements (commitments y1, y2, r1, r2) live in [1, P-1] and are
// combined with ModMul / ModPow under P. Scalars (secrets x, k, the
// challenge c and the response s) live in [0, Q-1] and are combined with
// ModSub / ModMul under Q.
package group

import (
	"errors"
	"fmt"

	"github.com/cronokirby/saferith"
)

const (
	// P is the prime modulus of the multiplicative group, 2^20 - 17.
	P uint64 = 1048559
	// Q is the prime order of the subgroup; Q * 14 = P - 1.
	Q uint64 = 74897
	// G is the first generator of the order-Q subgroup.
	G uint64 = 12
	// H is the second generator of the order-Q subgroup. No relation
	// H = G^k is known to either party.
	H uint64 = 15
)

var ErrInvalidParams = errors.New("invalid group parameters")

// Params bundles a set of group constants. The process-wide set is Default.
type Params struct {
	P, Q, G, H uint64
}

// Default holds the constants the prover and verifier agree on.
var Default = Params{P: P, Q: Q, G: G, H: H}

// Validate checks that Q divides P-1 and that both generators are
// non-trivial elements of the order-Q subgroup.
func (p Params) Validate() error {
	if p.P < 3 || p.Q < 2 || p.Q >= p.P {
		return fmt.Errorf("%w: modulus/order out of range", ErrInvalidParams)
	}
	if (p.P-1)%p.Q != 0 {
		return fmt.Errorf("%w: Q does not divide P-1", ErrInvalidParams)
	}

	mod := saferith.ModulusFromNat(new(saferith.Nat).SetUint64(p.P))
	order := new(saferith.Nat).SetUint64(p.Q)
	one := new(saferith.Nat).SetUint64(1)

	for name, g := range map[string]uint64{"G": p.G, "H": p.H} {
		if g <= 1 || g >= p.P {
			return fmt.Errorf("%w: generator %s out of range", ErrInvalidParams, name)
		}
		// Q is prime, so g^Q = 1 with g != 1 means g has order exactly Q.
		x := new(saferith.Nat).SetUint64(g)
		if new(saferith.Nat).Exp(x, order, mod).Eq(one) != 1 {
			return fmt.Errorf("%w: generator %s is not in the order-Q subgroup", ErrInvalidParams, name)
		}
	}

	if p.G == p.H {
		return fmt.Errorf("%w: generators must differ", ErrInvalidParams)
	}

	return nil
}

// IsElement reports whether v is a valid group element encoding, i.e. in [1, P-1].
func (p Params) IsElement(v uint64) bool {
	return v >= 1 && v < p.P
}

// IsScalar reports whether v is a reduced scalar, i.e. in [0, Q-1].
func (p Params) IsScalar(v uint64) bool {
	return v < p.Q
}

// IsSecret reports whether v is usable as a secret exponent, i.e. in [1, Q-1].
func (p Params) IsSecret(v uint64) bool {
	return v >= 1 && v < p.Q
}
