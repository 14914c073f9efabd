// Package bigfft multiplies arbitrary-precision integers with a
// floating-point FFT once they outgrow the schoolbook and Toom-Cook
// algorithms.
//
// Floating-point math is inaccurate; to ensure the output of the FFT and
// IFFT rounds to the correct integer result for every input, the provably
// safe error bounds from "Rapid Multiplication Modulo The Sum And Difference
// of Highly Composite Numbers" by Colin Percival are applied, the packed
// vector is balanced before the transform, and accurate twiddle factors are
// used. The transform itself is a right-angle convolution: the vector is
// weighted before the FFT so that the real parts of the inverse carry the
// lower half of the product and the imaginary parts the upper half, letting
// a length-n transform do the work a plain FFT needs length 2n for.
package bigfft

import (
	"math/big"
	"math/bits"

	apperrors "github.com/agbru/decparse/internal/errors"
)

const (
	// ToomCook3Threshold is the operand size in bits above which
	// multiplication switches from schoolbook to 3-way Toom-Cook.
	ToomCook3Threshold = 240 * 8

	// FFTThreshold is the operand size in bits above which FFT
	// multiplication is used. Both operands must exceed
	// ToomCook3Threshold and at least one must exceed FFTThreshold.
	FFTThreshold = 3400 * 8
)

// Multiply returns a * b, choosing schoolbook, Toom-Cook or FFT
// multiplication from the operand bit lengths. For identical operand
// pointers it delegates to Square. The parallel flag permits concurrent
// sub-products on the Toom-Cook path; it never changes the result.
//
// The only failure mode is a product so large that its magnitude would not
// be addressable, reported as a NumericOverflowError.
func Multiply(a, b *big.Int, parallel bool) (*big.Int, error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int), nil
	}
	if a == b {
		return Square(a)
	}

	xlen := a.BitLen()
	ylen := b.BitLen()

	if xlen > ToomCook3Threshold && ylen > ToomCook3Threshold &&
		(xlen > FFTThreshold || ylen > FFTThreshold) {
		return MultiplyFFT(a, b)
	}
	if xlen > ToomCook3Threshold && ylen > ToomCook3Threshold {
		multiplicationsTotal.WithLabelValues(algorithmToomCook3).Inc()
		return MultiplyToomCook3(a, b, parallel), nil
	}
	multiplicationsTotal.WithLabelValues(algorithmSchoolbook).Inc()
	return MultiplySchoolbook(a, b), nil
}

// Square returns a * a. Above the FFT threshold only one forward transform
// is needed, roughly halving both time and memory compared to Multiply.
func Square(a *big.Int) (*big.Int, error) {
	if a.Sign() == 0 {
		return new(big.Int), nil
	}
	if a.BitLen() > FFTThreshold {
		return squareFFT(a)
	}
	if a.BitLen() > ToomCook3Threshold {
		multiplicationsTotal.WithLabelValues(algorithmToomCook3).Inc()
		return MultiplyToomCook3(a, a, false), nil
	}
	multiplicationsTotal.WithLabelValues(algorithmSchoolbook).Inc()
	return MultiplySchoolbook(a, a), nil
}

// fftShape holds the transform geometry derived from an operand bit length.
type fftShape struct {
	bitsPerPoint int
	fftLen       int
	logFFTLen    int
	mixed        bool // true for a 3*2^n transform
}

// planFFT sizes the transform for operands of at most bitLen bits. One slot
// beyond the packed payload is reserved for the balancing carry, then the
// length is rounded up to the nearer of 2^n and 3*2^(n-2).
func planFFT(bitLen int) (fftShape, error) {
	bpp := bitsPerFFTPoint(bitLen)
	fftLen := (bitLen+bpp-1)/bpp + 1
	logFFTLen := bits.Len(uint(fftLen - 1))

	shape := fftShape{bitsPerPoint: bpp, logFFTLen: logFFTLen}
	fftLen2 := 1 << logFFTLen
	fftLen3 := fftLen2 * 3 / 4
	// The mixed-radix branch needs twiddles of length fftLen/4, which only
	// exist for logFFTLen >= 4. Shorter transforms, reachable through the
	// explicit FFT entry points, stay on the power-of-two branch.
	if fftLen < fftLen3 && logFFTLen >= 4 {
		shape.fftLen = fftLen3
		shape.mixed = true
	} else {
		shape.fftLen = fftLen2
	}
	if 2*(int64(shape.fftLen)*int64(bpp)+31)/32 > maxMagWords {
		return fftShape{}, &apperrors.NumericOverflowError{Op: "fft multiply"}
	}
	return shape, nil
}

// MultiplyFFT multiplies a and b with the floating-point FFT regardless of
// their size. Multiply should normally be used instead; this entry point
// exists for explicit dispatch in the verification mode and in tests.
func MultiplyFFT(a, b *big.Int) (*big.Int, error) {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int), nil
	}
	signum := a.Sign() * b.Sign()
	aMag := getMagnitude(a)
	bMag := getMagnitude(b)
	bitLen := len(aMag)
	if len(bMag) > bitLen {
		bitLen = len(bMag)
	}
	bitLen *= 32

	shape, err := planFFT(bitLen)
	if err != nil {
		return nil, err
	}

	aVec := acquireComplexVec(shape.fftLen)
	defer releaseComplexVec(aVec)
	bVec := acquireComplexVec(shape.fftLen)
	defer releaseComplexVec(bVec)
	toFFTVector(aVec, aMag, shape.bitsPerPoint)
	toFFTVector(bVec, bMag, shape.bitsPerPoint)

	if shape.mixed {
		multiplicationsTotal.WithLabelValues(algorithmFFTMixed).Inc()
		// Radix-2 roots cover length fftLen/3, which is a power of two.
		roots2 := rootsOfUnity2(shape.logFFTLen - 2)
		weights := rootsOfUnity3(shape.logFFTLen - 2)
		twiddles := rootsOfUnity3(shape.logFFTLen - 4)
		applyWeights(aVec, weights)
		applyWeights(bVec, weights)
		fftMixedRadix(aVec, roots2, twiddles)
		fftMixedRadix(bVec, roots2, twiddles)
		mulPointwise(aVec, bVec)
		ifftMixedRadix(aVec, roots2, twiddles)
		applyInverseWeights(aVec, weights)
	} else {
		multiplicationsTotal.WithLabelValues(algorithmFFT).Inc()
		roots := rootsOfUnity2(shape.logFFTLen)
		applyWeights(aVec, roots[shape.logFFTLen])
		applyWeights(bVec, roots[shape.logFFTLen])
		fft(aVec, roots)
		fft(bVec, roots)
		mulPointwise(aVec, bVec)
		ifft(aVec, roots)
		applyInverseWeights(aVec, roots[shape.logFFTLen])
	}
	return fromFFTVector(aVec, signum, shape.bitsPerPoint), nil
}

// squareFFT computes a * a with a single forward transform.
func squareFFT(a *big.Int) (*big.Int, error) {
	mag := getMagnitude(a)
	shape, err := planFFT(len(mag) * 32)
	if err != nil {
		return nil, err
	}

	vec := acquireComplexVec(shape.fftLen)
	defer releaseComplexVec(vec)
	toFFTVector(vec, mag, shape.bitsPerPoint)

	if shape.mixed {
		multiplicationsTotal.WithLabelValues(algorithmFFTMixed).Inc()
		roots2 := rootsOfUnity2(shape.logFFTLen - 2)
		weights := rootsOfUnity3(shape.logFFTLen - 2)
		twiddles := rootsOfUnity3(shape.logFFTLen - 4)
		applyWeights(vec, weights)
		fftMixedRadix(vec, roots2, twiddles)
		squarePointwise(vec)
		ifftMixedRadix(vec, roots2, twiddles)
		applyInverseWeights(vec, weights)
	} else {
		multiplicationsTotal.WithLabelValues(algorithmFFT).Inc()
		roots := rootsOfUnity2(shape.logFFTLen)
		applyWeights(vec, roots[shape.logFFTLen])
		fft(vec, roots)
		squarePointwise(vec)
		ifft(vec, roots)
		applyInverseWeights(vec, roots[shape.logFFTLen])
	}
	// Squares are non-negative.
	return fromFFTVector(vec, 1, shape.bitsPerPoint), nil
}
