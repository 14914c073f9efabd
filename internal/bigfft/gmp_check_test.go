//go:build gmp

// This file cross-checks the FFT multiplier against the GMP library,
// conditionally compiled with the "gmp" build tag. The build tag
// architecture ensures that:
//   - The package builds without GMP (the default)
//   - GMP cross-checking is opt-in, requiring: go test -tags=gmp
//   - The codebase remains portable across systems without libgmp installed

package bigfft

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/ncw/gmp"
)

// gmpMul multiplies through GMP's assembly-optimized routines.
func gmpMul(a, b *big.Int) *big.Int {
	ga := new(gmp.Int).SetBytes(a.Bytes())
	gb := new(gmp.Int).SetBytes(b.Bytes())
	return new(big.Int).SetBytes(new(gmp.Int).Mul(ga, gb).Bytes())
}

func TestMultiplyFFT_AgainstGMP(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	for _, bits := range []int{30000, 100000, 500000} {
		a := randBits(rnd, bits)
		b := randBits(rnd, bits)
		want := gmpMul(a, b)
		got, err := MultiplyFFT(a, b)
		if err != nil {
			t.Fatalf("bits=%d: %v", bits, err)
		}
		if got.Cmp(want) != 0 {
			t.Errorf("bits=%d: FFT product differs from GMP", bits)
		}
	}
}
