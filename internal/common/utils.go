package common

import (
	"crypto/rand"
	"encoding/binary"
)

// RandUint64N returns a uniformly distributed value in [0, n).
// Rejection sampling removes the modulo bias. n must be positive.
func RandUint64N(n uint64) (uint64, error) {
	if n == 0 {
		panic("common: RandUint64N with n == 0")
	}

	// largest multiple of n that fits in 64 bits
	limit := ^uint64(0) - (^uint64(0) % n)

	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return v % n, nil
		}
	}
}

// WipeByteArray zeroes b. It is a no-op for nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
