// This file implements the schoolbook multiplication fallback over raw word
// slices, together with the small nat helpers shared with the Toom-Cook path.

package bigfft

import "math/big"

// nat is an unsigned multi-precision integer stored as little-endian words,
// the same representation big.Int uses internally.
type nat []big.Word

// trim strips leading (most significant) zero words.
func trim(x nat) nat {
	for len(x) > 0 && x[len(x)-1] == 0 {
		x = x[:len(x)-1]
	}
	return x
}

// basicMul computes x * y by the schoolbook O(n*m) method, accumulating one
// row per word of y with addMulVVW.
func basicMul(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	z := make(nat, len(x)+len(y))
	for i, d := range y {
		if d != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, d)
		}
	}
	return trim(z)
}

// natAdd returns x + y.
func natAdd(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) == 0 {
		return x
	}
	z := make(nat, len(x)+1)
	c := addVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = addVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return trim(z)
}

// natSub returns x - y. It requires x >= y.
func natSub(x, y nat) nat {
	z := make(nat, len(x))
	if len(y) == 0 {
		copy(z, x)
		return trim(z)
	}
	c := subVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		subVW(z[len(y):], x[len(y):], c)
	}
	return trim(z)
}

// MultiplySchoolbook computes a * b by the schoolbook method. It is the
// fallback below the Toom-Cook threshold and the correctness oracle in
// tests; its output is bit-identical to every other multiplication path.
func MultiplySchoolbook(a, b *big.Int) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	z := new(big.Int).SetBits(basicMul(a.Bits(), b.Bits()))
	if a.Sign() != b.Sign() {
		z.Neg(z)
	}
	return z
}
