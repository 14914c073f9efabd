package bigfft

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genOperand derives a deterministic operand of the given bit length from a
// seed, so shrunk counterexamples stay reproducible.
func genOperand(seed int64, bits int) *big.Int {
	return randBits(rand.New(rand.NewSource(seed)), bits)
}

// TestMultiply_Commutativity_PropertyBased verifies a*b == b*a across the
// full dispatch range, including pairs that route the two operand orders
// through identical packing but different loop roles.
func TestMultiply_Commutativity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Multiply is commutative", prop.ForAll(
		func(seedA, seedB int64, bitsA, bitsB int) bool {
			a := genOperand(seedA, bitsA)
			b := genOperand(seedB, bitsB)
			ab, err := Multiply(a, b, false)
			if err != nil {
				return false
			}
			ba, err := Multiply(b, a, false)
			if err != nil {
				return false
			}
			return ab.Cmp(ba) == 0
		},
		gen.Int64(),
		gen.Int64(),
		gen.IntRange(1, 50000),
		gen.IntRange(1, 50000),
	))

	properties.TestingRun(t)
}

// TestMultiplyFFT_SchoolbookAgreement_PropertyBased verifies the FFT path
// against the schoolbook oracle for every operand pair whose combined size
// keeps the quadratic oracle tractable.
func TestMultiplyFFT_SchoolbookAgreement_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("FFT equals schoolbook below 1e5 combined bits", prop.ForAll(
		func(seedA, seedB int64, bitsA, bitsB int) bool {
			a := genOperand(seedA, bitsA)
			b := genOperand(seedB, bitsB)
			if a.BitLen()+b.BitLen() >= 100000 {
				return true
			}
			fftProduct, err := MultiplyFFT(a, b)
			if err != nil {
				return false
			}
			return fftProduct.Cmp(MultiplySchoolbook(a, b)) == 0
		},
		gen.Int64(),
		gen.Int64(),
		gen.IntRange(1, 49000),
		gen.IntRange(1, 49000),
	))

	properties.TestingRun(t)
}

// TestSquare_Identity_PropertyBased verifies square(a) == multiply(a, a)
// bit-for-bit over the whole dispatch range.
func TestSquare_Identity_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("Square(a) equals Multiply(a, a)", prop.ForAll(
		func(seed int64, bits int) bool {
			a := genOperand(seed, bits)
			sq, err := Square(a)
			if err != nil {
				return false
			}
			mul, err := Multiply(a, new(big.Int).Set(a), false)
			if err != nil {
				return false
			}
			return sq.Cmp(mul) == 0
		},
		gen.Int64(),
		gen.IntRange(1, 60000),
	))

	properties.TestingRun(t)
}
