package group

import "math/bits"

// ModPow returns base^exponent mod modulus by square-and-multiply.
// Intermediate products are 128 bits wide, so any modulus up to 2^64-1
// is safe. ModPow returns 0 when modulus is 1 and panics when it is 0.
func ModPow(base, exponent, modulus uint64) uint64 {
	if modulus == 1 {
		return 0
	}

	result := uint64(1)
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = ModMul(result, base, modulus)
		}
		exponent >>= 1
		base = ModMul(base, base, modulus)
	}

	return result
}

// ModMul returns a*b mod modulus using a full 128-bit product.
func ModMul(a, b, modulus uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, modulus)
}

// ModSub returns (a-b) mod modulus in [0, modulus-1], also when a < b.
func ModSub(a, b, modulus uint64) uint64 {
	a %= modulus
	b %= modulus
	if a >= b {
		return a - b
	}
	return modulus - (b - a)
}
