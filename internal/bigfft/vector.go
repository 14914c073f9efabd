// This file converts big.Int magnitudes to and from FFT vectors, including
// the bits-per-point sizing table and the right-angle convolution weights.

package bigfft

import (
	"math"
	"math/big"
)

// maxMagWords caps the length of the 32-bit magnitude array allocated when
// reassembling a product. Requests beyond the cap are rejected up front by
// the dispatch path as a numeric overflow.
const maxMagWords = math.MaxInt32 - 4

// getMagnitude returns the big-endian base-2^32 magnitude of x: highest-order
// word first, no leading zero word except for the canonical zero, which
// yields an empty slice. The sign of x is ignored.
func getMagnitude(x *big.Int) []uint32 {
	b := x.Bytes()
	if len(b) == 0 {
		return nil
	}
	n := (len(b) + 3) / 4
	mag := make([]uint32, n)
	// The leading word may take fewer than four bytes.
	i := len(b)
	for w := n - 1; w >= 0 && i > 0; w-- {
		var v uint32
		shift := uint(0)
		for k := 0; k < 4 && i > 0; k++ {
			i--
			v |= uint32(b[i]) << shift
			shift += 8
		}
		mag[w] = v
	}
	return mag
}

// newBigIntFromMagnitude builds a big.Int from a signum and a big-endian
// base-2^32 magnitude. Leading zero words are permitted; a zero magnitude
// yields the canonical zero regardless of signum.
func newBigIntFromMagnitude(signum int, mag []uint32) *big.Int {
	b := make([]byte, 4*len(mag))
	for i, w := range mag {
		b[4*i] = byte(w >> 24)
		b[4*i+1] = byte(w >> 16)
		b[4*i+2] = byte(w >> 8)
		b[4*i+3] = byte(w)
	}
	z := new(big.Int).SetBytes(b)
	if signum < 0 {
		z.Neg(z)
	}
	return z
}

// bitsPerFFTPoint returns the maximum number of bits that one double
// precision FFT point can carry without the rounded inverse transform
// becoming incorrect, for an operand of bitLen bits. The table implements
// the provably safe bounds from Percival, "Rapid Multiplication Modulo The
// Sum And Difference of Highly Composite Numbers", pg. 392.
func bitsPerFFTPoint(bitLen int) int {
	switch {
	case bitLen <= 19*(1<<9):
		return 19
	case bitLen <= 18*(1<<10):
		return 18
	case bitLen <= 17*(1<<12):
		return 17
	case bitLen <= 16*(1<<14):
		return 16
	case bitLen <= 15*(1<<16):
		return 15
	case bitLen <= 14*(1<<18):
		return 14
	case bitLen <= 13*(1<<20):
		return 13
	case bitLen <= 12*(1<<21):
		return 12
	case bitLen <= 11*(1<<23):
		return 11
	case bitLen <= 10*(1<<25):
		return 10
	case bitLen <= 9*(1<<27):
		return 9
	default:
		return 8
	}
}

// toFFTVector packs a magnitude into an FFT vector of length fftLen,
// streaming the magnitude's bits least-significant first and placing
// bitsPerPoint of them into the real part of each point. Imaginary parts
// start at zero.
//
// After packing, each digit is "balanced" into (-base/2, base/2] by
// subtracting base and carrying one into the next point whenever it exceeds
// base/2. Balancing halves the dynamic range of the transform and is part of
// the error-bound argument; the final carry lands in the extra point the
// caller reserved when sizing fftLen.
func toFFTVector(vec []complexPoint, mag []uint32, bitsPerPoint int) {
	fftIdx := 0
	magBitIdx := 0 // next bit of the current mag word
	magIdx := len(mag) - 1
	carry := 0
	base := 1 << bitsPerPoint
	for magIdx >= 0 {
		fftPoint := 0
		fftBitIdx := 0
		for fftBitIdx < bitsPerPoint {
			bitsToCopy := min(32-magBitIdx, bitsPerPoint-fftBitIdx)
			fftPoint |= int((mag[magIdx]>>magBitIdx)&((1<<bitsToCopy)-1)) << fftBitIdx
			fftBitIdx += bitsToCopy
			magBitIdx += bitsToCopy
			if magBitIdx >= 32 {
				magBitIdx = 0
				magIdx--
				if magIdx < 0 {
					break
				}
			}
		}

		fftPoint += carry
		if fftPoint > base/2 {
			fftPoint -= base
			carry = 1
		} else {
			carry = 0
		}

		vec[fftIdx] = complexPoint{float64(fftPoint), 0}
		fftIdx++
	}
	if carry > 0 {
		vec[fftIdx] = complexPoint{float64(carry), 0}
		fftIdx++
	}
	for fftIdx < len(vec) {
		vec[fftIdx] = complexPoint{}
		fftIdx++
	}
}

// fromFFTVector converts an FFT vector back into a big.Int with the given
// signum. After the inverse transform of a right-angle convolution the real
// parts hold the lower half of the result and the imaginary parts the upper
// half, so the coefficient stream has length 2*len(vec). Each coefficient is
// rounded to the nearest integer and carries are propagated through the low
// half first, then the high half.
func fromFFTVector(vec []complexPoint, signum int, bitsPerPoint int) *big.Int {
	fftLen := len(vec)
	magLen := 2 * (int64(fftLen)*int64(bitsPerPoint) + 31) / 32
	if magLen > maxMagWords {
		magLen = maxMagWords
	}
	mag := make([]uint32, magLen)
	magIdx := len(mag) - 1
	magBitIdx := 0
	carry := int64(0)
	for part := 0; part <= 1; part++ { // 0=real, 1=imaginary
		for fftIdx := 0; fftIdx < fftLen; fftIdx++ {
			var lane float64
			if part == 0 {
				lane = vec[fftIdx].real
			} else {
				lane = vec[fftIdx].imag
			}
			fftElem := int64(math.Round(lane)) + carry
			carry = fftElem >> bitsPerPoint
			fftElem &= (1 << bitsPerPoint) - 1
			fftBitIdx := 0
			for fftBitIdx < bitsPerPoint {
				bitsToCopy := min(32-magBitIdx, bitsPerPoint-fftBitIdx)
				if magIdx >= 0 {
					mag[magIdx] |= uint32((fftElem >> fftBitIdx) << magBitIdx)
				}
				magBitIdx += bitsToCopy
				fftBitIdx += bitsToCopy
				if magBitIdx >= 32 {
					magBitIdx = 0
					magIdx--
				}
			}
		}
	}
	return newBigIntFromMagnitude(signum, mag)
}

// applyWeights multiplies the elements of an FFT vector by the right-angle
// weights, turning the cyclic convolution of the plain FFT into a
// right-angle convolution.
func applyWeights(a []complexPoint, weights []complexPoint) {
	for i := range a {
		a[i].mul(&weights[i])
	}
}

// applyInverseWeights multiplies the elements of an FFT vector by the
// conjugate weights, undoing applyWeights after the inverse transform.
func applyInverseWeights(a []complexPoint, weights []complexPoint) {
	for i := range a {
		a[i].mulConj(&weights[i])
	}
}
