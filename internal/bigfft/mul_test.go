package bigfft

import (
	"math/big"
	"math/rand"
	"testing"
)

// randBits returns a deterministic pseudo-random positive integer with
// exactly the given bit length.
func randBits(rnd *rand.Rand, bits int) *big.Int {
	if bits <= 0 {
		return new(big.Int)
	}
	z := new(big.Int).Rand(rnd, new(big.Int).Lsh(big.NewInt(1), uint(bits-1)))
	return z.SetBit(z, bits-1, 1)
}

// mustMultiply fails the test on an unexpected multiplication error.
func mustMultiply(t *testing.T, f func() (*big.Int, error)) *big.Int {
	t.Helper()
	z, err := f()
	if err != nil {
		t.Fatalf("unexpected multiplication error: %v", err)
	}
	return z
}

func TestMultiply_ZeroAnnihilation(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	x := randBits(rnd, 50000)
	zero := new(big.Int)

	for _, pair := range [][2]*big.Int{{zero, x}, {x, zero}, {zero, zero}} {
		got := mustMultiply(t, func() (*big.Int, error) { return Multiply(pair[0], pair[1], false) })
		if got.Sign() != 0 {
			t.Errorf("Multiply(%v, %v) = %v, want 0", pair[0].BitLen(), pair[1].BitLen(), got)
		}
	}
}

func TestMultiply_SignumLaw(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	a := randBits(rnd, 30000)
	b := randBits(rnd, 29000)

	for _, sa := range []int{1, -1} {
		for _, sb := range []int{1, -1} {
			x := new(big.Int).Set(a)
			y := new(big.Int).Set(b)
			if sa < 0 {
				x.Neg(x)
			}
			if sb < 0 {
				y.Neg(y)
			}
			got := mustMultiply(t, func() (*big.Int, error) { return Multiply(x, y, false) })
			if got.Sign() != sa*sb {
				t.Errorf("signum(Multiply) = %d for signs (%d,%d)", got.Sign(), sa, sb)
			}
			want := new(big.Int).Mul(x, y)
			if got.Cmp(want) != 0 {
				t.Errorf("Multiply with signs (%d,%d) is wrong", sa, sb)
			}
		}
	}
}

func TestMultiplyFFT_AgreesWithSchoolbook(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for _, bits := range []int{64, 1000, 9000, 30000, 49000} {
		a := randBits(rnd, bits)
		b := randBits(rnd, bits/2+1)
		want := MultiplySchoolbook(a, b)
		got := mustMultiply(t, func() (*big.Int, error) { return MultiplyFFT(a, b) })
		if got.Cmp(want) != 0 {
			t.Errorf("bits=%d: FFT product differs from schoolbook", bits)
		}
	}
}

func TestMultiply_ThresholdEdges(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	// Exactly at the FFT threshold the Toom-Cook path must be taken; one
	// bit above, the FFT path. Both must agree with the oracle.
	for _, bits := range []int{FFTThreshold, FFTThreshold + 1, ToomCook3Threshold, ToomCook3Threshold + 1} {
		a := randBits(rnd, bits)
		b := randBits(rnd, bits)
		want := new(big.Int).Mul(a, b)
		got := mustMultiply(t, func() (*big.Int, error) { return Multiply(a, b, false) })
		if got.Cmp(want) != 0 {
			t.Errorf("bits=%d: product differs from math/big", bits)
		}
	}
}

func TestMultiplyFFT_BitsPerPointRowStraddles(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	// One operand size just below and one just above each table row
	// boundary. The packed layout changes; the product must not.
	rows := []int{19 * (1 << 9), 18 * (1 << 10), 17 * (1 << 12), 16 * (1 << 14)}
	for _, boundary := range rows {
		for _, bits := range []int{boundary - 1, boundary, boundary + 1} {
			a := randBits(rnd, bits)
			b := randBits(rnd, bits)
			want := new(big.Int).Mul(a, b)
			got := mustMultiply(t, func() (*big.Int, error) { return MultiplyFFT(a, b) })
			if got.Cmp(want) != 0 {
				t.Errorf("bits=%d: FFT product differs from math/big", bits)
			}
		}
	}
}

func TestMultiplyFFT_LengthSelectionBranches(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	// Sizes chosen so that rounding the needed transform length lands in
	// the 3*2^n branch for one and the 2^n branch for the other.
	for _, bits := range []int{19 * 96 * 4, 19 * 512, 19*512 - 600, 19 * 700} {
		a := randBits(rnd, bits)
		b := randBits(rnd, bits-17)
		want := new(big.Int).Mul(a, b)
		got := mustMultiply(t, func() (*big.Int, error) { return MultiplyFFT(a, b) })
		if got.Cmp(want) != 0 {
			t.Errorf("bits=%d: FFT product differs from math/big", bits)
		}
	}
}

func TestMultiplyFFT_BalancingEdge(t *testing.T) {
	// A magnitude whose packed 19-bit points all equal base/2 sits exactly
	// on the balancing boundary: no point exceeds base/2, so none is
	// shifted or carries, and the product must still unpack correctly.
	point := new(big.Int).Lsh(big.NewInt(1), 18) // base/2 for bitsPerPoint=19
	v := new(big.Int)
	for i := 0; i < 256; i++ {
		v.Lsh(v, 19)
		v.Or(v, point)
	}
	want := new(big.Int).Mul(v, v)
	got := mustMultiply(t, func() (*big.Int, error) { return MultiplyFFT(v, v) })
	if got.Cmp(want) != 0 {
		t.Error("balancing edge: FFT square differs from math/big")
	}
}

func TestSquare_MatchesMultiply(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, bits := range []int{1, 100, 2000, FFTThreshold, FFTThreshold + 5, 60000} {
		a := randBits(rnd, bits)
		sq := mustMultiply(t, func() (*big.Int, error) { return Square(a) })
		mul := mustMultiply(t, func() (*big.Int, error) { return Multiply(a, new(big.Int).Set(a), false) })
		if sq.Cmp(mul) != 0 {
			t.Errorf("bits=%d: Square differs from Multiply(a, a)", bits)
		}
		want := new(big.Int).Mul(a, a)
		if sq.Cmp(want) != 0 {
			t.Errorf("bits=%d: Square differs from math/big", bits)
		}
	}
}

func TestMultiply_SamePointerUsesSquare(t *testing.T) {
	rnd := rand.New(rand.NewSource(8))
	a := randBits(rnd, 40000)
	got := mustMultiply(t, func() (*big.Int, error) { return Multiply(a, a, false) })
	want := new(big.Int).Mul(a, a)
	if got.Cmp(want) != 0 {
		t.Error("Multiply(a, a) differs from math/big")
	}
}

func TestMultiply_CrossAlgorithmAgreement40kbit(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping schoolbook cross-check in short mode")
	}
	rnd := rand.New(rand.NewSource(42))
	a := randBits(rnd, 40000)
	b := randBits(rnd, 40000)

	fftProduct := mustMultiply(t, func() (*big.Int, error) { return MultiplyFFT(a, b) })
	toomProduct := MultiplyToomCook3(a, b, false)
	schoolbookProduct := MultiplySchoolbook(a, b)

	if fftProduct.Cmp(toomProduct) != 0 {
		t.Error("FFT and Toom-Cook products differ")
	}
	if fftProduct.Cmp(schoolbookProduct) != 0 {
		t.Error("FFT and schoolbook products differ")
	}
}

func TestMultiply_CommutativitySpotCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 1000-pair spot check in short mode")
	}
	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 1000; i++ {
		a := randBits(rnd, 1+rnd.Intn(50000))
		b := randBits(rnd, 1+rnd.Intn(50000))
		ab := mustMultiply(t, func() (*big.Int, error) { return Multiply(a, b, false) })
		ba := mustMultiply(t, func() (*big.Int, error) { return Multiply(b, a, false) })
		if ab.Cmp(ba) != 0 {
			t.Fatalf("pair %d: Multiply is not commutative (bits %d x %d)", i, a.BitLen(), b.BitLen())
		}
	}
}

func TestGetMagnitude_RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(10))
	for _, bits := range []int{0, 1, 31, 32, 33, 64, 1000, 4097} {
		v := randBits(rnd, bits)
		mag := getMagnitude(v)
		if len(mag) > 0 && mag[0] == 0 {
			t.Errorf("bits=%d: magnitude has a leading zero word", bits)
		}
		back := newBigIntFromMagnitude(1, mag)
		if back.Cmp(v) != 0 {
			t.Errorf("bits=%d: magnitude round trip failed", bits)
		}
	}
	neg := newBigIntFromMagnitude(-1, []uint32{0, 0})
	if neg.Sign() != 0 {
		t.Error("zero magnitude with negative signum must normalise to canonical zero")
	}
}
