// This file provides the in-place complex arithmetic kernel used by the FFT
// engine. FFT vectors are stored as contiguous slices of complexPoint values
// so the butterflies below compile to straight-line scalar code.

package bigfft

import "math"

// complexPoint is a mutable complex number stored as a pair of float64 lanes.
// Ownership of a complexPoint is always local to a single FFT invocation.
//
// The methods below intentionally spell out the ordinary real-arithmetic
// formulas for complex multiply and add: the provable FFT error bound assumes
// exactly these operations, in this order, with no re-association.
type complexPoint struct {
	real, imag float64
}

// copyTo copies c into dst.
func (c *complexPoint) copyTo(dst *complexPoint) {
	dst.real = c.real
	dst.imag = c.imag
}

// add computes c += w.
func (c *complexPoint) add(w *complexPoint) {
	c.real += w.real
	c.imag += w.imag
}

// addInto computes dst = c + w, leaving c unmodified.
func (c *complexPoint) addInto(w, dst *complexPoint) {
	dst.real = c.real + w.real
	dst.imag = c.imag + w.imag
}

// sub computes c -= w.
func (c *complexPoint) sub(w *complexPoint) {
	c.real -= w.real
	c.imag -= w.imag
}

// subInto computes dst = c - w, leaving c unmodified.
func (c *complexPoint) subInto(w, dst *complexPoint) {
	dst.real = c.real - w.real
	dst.imag = c.imag - w.imag
}

// mul computes c *= w.
func (c *complexPoint) mul(w *complexPoint) {
	temp := c.real
	c.real = c.real*w.real - c.imag*w.imag
	c.imag = temp*w.imag + c.imag*w.real
}

// mulInto computes dst = c * w, leaving c unmodified.
func (c *complexPoint) mulInto(w, dst *complexPoint) {
	dst.real = c.real*w.real - c.imag*w.imag
	dst.imag = c.real*w.imag + c.imag*w.real
}

// mulConj computes c *= conj(w).
func (c *complexPoint) mulConj(w *complexPoint) {
	temp := c.real
	c.real = c.real*w.real + c.imag*w.imag
	c.imag = -temp*w.imag + c.imag*w.real
}

// mulConjInto computes dst = c * conj(w), leaving c unmodified.
func (c *complexPoint) mulConjInto(w, dst *complexPoint) {
	dst.real = c.real*w.real + c.imag*w.imag
	dst.imag = -c.real*w.imag + c.imag*w.real
}

// mulConjTimesI computes c = c * conj(w) * (-i), i.e. c times the conjugate
// of w*i.
func (c *complexPoint) mulConjTimesI(w *complexPoint) {
	temp := c.real
	c.real = -c.real*w.imag + c.imag*w.real
	c.imag = -temp*w.real - c.imag*w.imag
}

// mulByIAnd computes c = c * w * i.
func (c *complexPoint) mulByIAnd(w *complexPoint) {
	temp := c.real
	c.real = -c.real*w.imag - c.imag*w.real
	c.imag = temp*w.real - c.imag*w.imag
}

// addTimesI computes c += w*i.
func (c *complexPoint) addTimesI(w *complexPoint) {
	c.real -= w.imag
	c.imag += w.real
}

// addTimesIInto computes dst = c + w*i, leaving c unmodified.
func (c *complexPoint) addTimesIInto(w, dst *complexPoint) {
	dst.real = c.real - w.imag
	dst.imag = c.imag + w.real
}

// subTimesI computes c -= w*i.
func (c *complexPoint) subTimesI(w *complexPoint) {
	c.real += w.imag
	c.imag -= w.real
}

// subTimesIInto computes dst = c - w*i, leaving c unmodified.
func (c *complexPoint) subTimesIInto(w, dst *complexPoint) {
	dst.real = c.real + w.imag
	dst.imag = c.imag - w.real
}

// square computes c *= c.
func (c *complexPoint) square() {
	temp := c.real
	c.real = c.real*c.real - c.imag*c.imag
	c.imag = 2 * temp * c.imag
}

// squareInto computes dst = c * c, leaving c unmodified.
func (c *complexPoint) squareInto(dst *complexPoint) {
	dst.real = c.real*c.real - c.imag*c.imag
	dst.imag = 2 * c.real * c.imag
}

// scalePow2 multiplies both lanes by 2^n. The scaling is exact because only
// the floating-point exponent changes.
func (c *complexPoint) scalePow2(n int) {
	c.real = math.Ldexp(c.real, n)
	c.imag = math.Ldexp(c.imag, n)
}
