// This file implements the floating-point FFT engine: radix-4 transforms of
// length 2^n and mixed-radix transforms of length 3*2^n.
//
// The implementation incorporates several refinements over the textbook
// Cooley-Tukey algorithm:
//
//   - Radix-4 butterflies process two stages at a time.
//   - Bernstein's conjugate twiddle trick replaces the omega^3 multiply with
//     a cheaper conjugate multiply, at the cost of reordering the FFT output.
//     The IFFT applies the mirrored trick, so the reordering cancels out.
//   - Lengths 3*2^n are handled by the Bailey 4-step decomposition into 2^n
//     transforms of length 3 followed by 3 transforms of length 2^n.
//     See https://www.nas.nasa.gov/assets/pdf/techreports/1989/rnr-89-004.pdf
//
// The second twiddle omega2 is always derived as omega1^2 inside the
// butterfly rather than looked up. That is slightly less accurate than a
// fresh Cos/Sin, but it is the same error a radix-2 decomposition would
// incur, so the Percival error bound still applies. Looking up a fresh
// omega2 would not model the two underlying radix-2 stages and must not be
// done.

package bigfft

import (
	"math"
	"math/bits"
)

// fft performs an in-place FFT of length 2^n on a.
// This is a decimation-in-frequency implementation.
//
// roots must contain one set of roots at indices log2(len(a)),
// log2(len(a))-2, log2(len(a))-4, ...; each roots[s] must hold 2^s roots of
// unity covering the first quadrant, as produced by rootsOfUnity2.
func fft(a []complexPoint, roots [][]complexPoint) {
	n := len(a)
	logN := bits.Len(uint(n)) - 1
	var a0, a1, a2, a3 complexPoint

	// Two FFT stages at a time (radix-4).
	var omega2 complexPoint
	s := logN
	for ; s >= 2; s -= 2 {
		rootsS := roots[s-2]
		m := 1 << s
		for i := 0; i < n; i += m {
			for j := 0; j < m/4; j++ {
				omega1 := &rootsS[j]
				omega1.squareInto(&omega2)

				idx0 := i + j
				idx1 := i + j + m/4
				idx2 := i + j + m/2
				idx3 := i + j + m*3/4

				// Radix-4 butterfly:
				//   a[idx0] = (a[idx0] + a[idx1]      + a[idx2]      + a[idx3])      * w^0
				//   a[idx1] = (a[idx0] + a[idx1]*(-i) + a[idx2]*(-1) + a[idx3]*i)    * w^1
				//   a[idx2] = (a[idx0] + a[idx1]*(-1) + a[idx2]      + a[idx3]*(-1)) * w^2
				//   a[idx3] = (a[idx0] + a[idx1]*i    + a[idx2]*(-1) + a[idx3]*(-i)) * w^3
				// where w = omega1^(-1) = conj(omega1)
				a[idx0].addInto(&a[idx1], &a0)
				a0.add(&a[idx2])
				a0.add(&a[idx3])

				a[idx0].subTimesIInto(&a[idx1], &a1)
				a1.sub(&a[idx2])
				a1.addTimesI(&a[idx3])
				a1.mulConj(omega1)

				a[idx0].subInto(&a[idx1], &a2)
				a2.add(&a[idx2])
				a2.sub(&a[idx3])
				a2.mulConj(&omega2)

				a[idx0].addTimesIInto(&a[idx1], &a3)
				a3.sub(&a[idx2])
				a3.subTimesI(&a[idx3])
				// Bernstein's trick: multiply by omega^(-1) instead of omega^3.
				a3.mul(omega1)

				a0.copyTo(&a[idx0])
				a1.copyTo(&a[idx1])
				a2.copyTo(&a[idx2])
				a3.copyTo(&a[idx3])
			}
		}
	}

	// One final radix-2 step if there is an odd number of stages.
	if s > 0 {
		for i := 0; i < n; i += 2 {
			// omega = 1
			a[i].copyTo(&a0)
			a[i+1].copyTo(&a1)
			a[i].add(&a1)
			a0.subInto(&a1, &a[i+1])
		}
	}
}

// ifft performs an in-place inverse FFT of length 2^n on a.
// This is a decimation-in-time implementation; it consumes the output order
// produced by fft and restores natural order, then scales by 1/n.
func ifft(a []complexPoint, roots [][]complexPoint) {
	n := len(a)
	logN := bits.Len(uint(n)) - 1
	var a1, a2, a3 complexPoint
	var b0, b1, b2, b3 complexPoint

	s := 1
	// One radix-2 step if there is an odd number of stages.
	if logN%2 != 0 {
		var t0, t2 complexPoint
		for i := 0; i < n; i += 2 {
			// omega = 1
			a[i+1].copyTo(&t2)
			a[i].copyTo(&t0)
			a[i].add(&t2)
			t0.subInto(&t2, &a[i+1])
		}
		s++
	}

	// Remaining stages two at a time (radix-4).
	var omega2 complexPoint
	for ; s <= logN; s += 2 {
		rootsS := roots[s-1]
		m := 1 << (s + 1)
		for i := 0; i < n; i += m {
			for j := 0; j < m/4; j++ {
				omega1 := &rootsS[j]
				omega1.squareInto(&omega2)

				idx0 := i + j
				idx1 := i + j + m/4
				idx2 := i + j + m/2
				idx3 := i + j + m*3/4

				// Radix-4 butterfly:
				//   a[idx0] = a[idx0]*w^0 + a[idx1]*w^1      + a[idx2]*w^2      + a[idx3]*w^3
				//   a[idx1] = a[idx0]*w^0 + a[idx1]*i*w^1    + a[idx2]*(-1)*w^2 + a[idx3]*(-i)*w^3
				//   a[idx2] = a[idx0]*w^0 + a[idx1]*(-1)*w^1 + a[idx2]*w^2      + a[idx3]*(-1)*w^3
				//   a[idx3] = a[idx0]*w^0 + a[idx1]*(-i)*w^1 + a[idx2]*(-1)*w^2 + a[idx3]*i*w^3
				// where w = omega1
				a0 := &a[idx0]
				a[idx1].mulInto(omega1, &a1)
				a[idx2].mulInto(&omega2, &a2)
				// Bernstein's trick: multiply by omega^(-1) instead of omega^3.
				a[idx3].mulConjInto(omega1, &a3)

				a0.addInto(&a1, &b0)
				b0.add(&a2)
				b0.add(&a3)

				a0.addTimesIInto(&a1, &b1)
				b1.sub(&a2)
				b1.subTimesI(&a3)

				a0.subInto(&a1, &b2)
				b2.add(&a2)
				b2.sub(&a3)

				a0.subTimesIInto(&a1, &b3)
				b3.sub(&a2)
				b3.addTimesI(&a3)

				b0.copyTo(&a[idx0])
				b1.copyTo(&a[idx1])
				b2.copyTo(&a[idx2])
				b3.copyTo(&a[idx3])
			}
		}
	}

	// Divide all vector elements by n. Exact: only exponents change.
	for i := range a {
		a[i].scalePow2(-logN)
	}
}

// fftMixedRadix performs an in-place FFT of length 3*2^n on a using the
// 4-step decomposition: len(a)/3 transforms of length 3, a twiddle pass,
// then 3 transforms of length len(a)/3.
//
// roots2 is the radix-2 root table for length len(a)/3; roots3 must contain
// first-quadrant roots for a set of length len(a)/4 (the twiddle range).
func fftMixedRadix(a []complexPoint, roots2 [][]complexPoint, roots3 []complexPoint) {
	third := len(a) / 3
	a0 := a[:third]
	a1 := a[third : 2*third]
	a2 := a[2*third:]

	// Step 1: len(a)/3 transforms of length 3.
	fft3(a0, a1, a2, 1, 1)

	// Step 2: multiply by roots of unity. The roots cover only the first
	// quadrant, so the second part of the range folds in a factor of i.
	// a1[i] picks up omega^1 and a2[i] omega^2; the latter is applied as
	// two successive multiplies by omega so that both columns share the
	// same primitive, which keeps the error profile of the radix-2 model.
	for i := 0; i < len(a)/4; i++ {
		omega := &roots3[i]
		a1[i].mulConj(omega)
		a2[i].mulConj(omega)
		a2[i].mulConj(omega)
	}
	for i := len(a) / 4; i < third; i++ {
		omega := &roots3[i-len(a)/4]
		a1[i].mulConjTimesI(omega)
		a2[i].mulConjTimesI(omega)
		a2[i].mulConjTimesI(omega)
	}

	// Step 3 (transpose) is not needed.

	// Step 4: 3 transforms of length len(a)/3.
	fft(a0, roots2)
	fft(a1, roots2)
	fft(a2, roots2)
}

// ifftMixedRadix performs an in-place inverse FFT of length 3*2^n on a.
// It is the exact mirror of fftMixedRadix: radix-2 inverse transforms first,
// then the (non-conjugate) twiddle pass, finally the length-3 transforms
// with sign = -1 and scale = 1/3.
func ifftMixedRadix(a []complexPoint, roots2 [][]complexPoint, roots3 []complexPoint) {
	third := len(a) / 3
	a0 := a[:third]
	a1 := a[third : 2*third]
	a2 := a[2*third:]

	// Step 1: 3 inverse transforms of length len(a)/3.
	ifft(a0, roots2)
	ifft(a1, roots2)
	ifft(a2, roots2)

	// Step 2: multiply by roots of unity.
	for i := 0; i < len(a)/4; i++ {
		omega := &roots3[i]
		a1[i].mul(omega)
		a2[i].mul(omega)
		a2[i].mul(omega)
	}
	for i := len(a) / 4; i < third; i++ {
		omega := &roots3[i-len(a)/4]
		a1[i].mulByIAnd(omega)
		a2[i].mulByIAnd(omega)
		a2[i].mulByIAnd(omega)
	}

	// Step 3 is not needed.

	// Step 4: len(a)/3 inverse transforms of length 3.
	fft3(a0, a1, a2, -1, 1.0/3)
}

// fft3 performs FFTs or IFFTs of size 3 on the vectors (a0[i], a1[i], a2[i])
// for each i, in place. sign is 1 for a forward transform and -1 for an
// inverse transform; scale is 1 for forward and 1/3 for inverse.
func fft3(a0, a1, a2 []complexPoint, sign int, scale float64) {
	// Imaginary part of the primitive cube root: sin(sign*(-2)*pi/3).
	omegaImag := float64(sign) * -0.5 * math.Sqrt(3)
	for i := range a0 {
		a0Real := a0[i].real + a1[i].real + a2[i].real
		a0Imag := a0[i].imag + a1[i].imag + a2[i].imag
		c := omegaImag * (a2[i].imag - a1[i].imag)
		d := omegaImag * (a1[i].real - a2[i].real)
		e := 0.5 * (a1[i].real + a2[i].real)
		f := 0.5 * (a1[i].imag + a2[i].imag)
		a1Real := a0[i].real - e + c
		a1Imag := a0[i].imag + d - f
		a2Real := a0[i].real - e - c
		a2Imag := a0[i].imag - d - f
		a0[i].real = a0Real * scale
		a0[i].imag = a0Imag * scale
		a1[i].real = a1Real * scale
		a1[i].imag = a1Imag * scale
		a2[i].real = a2Real * scale
		a2[i].imag = a2Imag * scale
	}
}

// mulPointwise stores a[i] * b[i] into a[i].
func mulPointwise(a, b []complexPoint) {
	for i := range a {
		a[i].mul(&b[i])
	}
}

// squarePointwise stores v[i]^2 into v[i].
func squarePointwise(v []complexPoint) {
	for i := range v {
		v[i].square()
	}
}
