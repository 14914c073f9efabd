// This file implements 3-way Toom-Cook multiplication, used between the
// schoolbook and FFT regimes. Evaluation points are {0, 1, -1, -2, inf} and
// the interpolation follows Bodrato's sequence, which needs only exact
// divisions by 2 and 3.

package bigfft

import (
	"math/big"
	"math/bits"
	"sync"
)

// MaxToomCookParallelDepth limits the depth of parallel recursion to avoid
// excessive goroutine creation; below it the five sub-products run inline.
const MaxToomCookParallelDepth = 2

// toomCookParallelThresholdWords is the minimum operand size in words for
// which the five point products are worth running concurrently.
const toomCookParallelThresholdWords = 4096

var three = big.NewInt(3)

// MultiplyToomCook3 computes a * b using 3-way Toom-Cook. Callers normally
// reach it through Multiply, which applies the threshold schedule; it is
// exported so the verification mode and the tests can pin this path.
func MultiplyToomCook3(a, b *big.Int, parallel bool) *big.Int {
	if a.Sign() == 0 || b.Sign() == 0 {
		return new(big.Int)
	}
	z := toomCook3(new(big.Int).Abs(a), new(big.Int).Abs(b), parallel, 0)
	if a.Sign() != b.Sign() {
		z.Neg(z)
	}
	return z
}

// toomMul dispatches a sub-product of the Toom recursion: Toom-Cook again
// while both operands remain above the threshold, schoolbook below it.
// Operands may be negative (the evaluations at -1 and -2); toomCook3 works
// on magnitudes, so the sign of the product is restored here.
func toomMul(x, y *big.Int, parallel bool, depth int) *big.Int {
	if x.BitLen() > ToomCook3Threshold && y.BitLen() > ToomCook3Threshold {
		z := toomCook3(new(big.Int).Abs(x), new(big.Int).Abs(y), parallel, depth)
		if x.Sign() != y.Sign() {
			z.Neg(z)
		}
		return z
	}
	return MultiplySchoolbook(x, y)
}

// toomCook3 multiplies two non-negative integers.
//
// Both operands are split into three limbs of k words at base B = 2^(k*W):
//
//	x = x2*B^2 + x1*B + x0
//	y = y2*B^2 + y1*B + y0
//
// The product polynomial has degree 4 and is recovered from its values at
// the five evaluation points.
func toomCook3(x, y *big.Int, parallel bool, depth int) *big.Int {
	xw, yw := x.Bits(), y.Bits()
	n := len(xw)
	if len(yw) > n {
		n = len(yw)
	}
	k := (n + 2) / 3
	shift := uint(k * bits.UintSize)

	x0, x1, x2 := splitThree(xw, k)
	y0, y1, y2 := splitThree(yw, k)

	// Evaluate both polynomials at 1, -1 and -2.
	//   p(1)  = x0 + x1 + x2
	//   p(-1) = x0 - x1 + x2
	//   p(-2) = (p(-1) + x2)*2 - x0
	xs := new(big.Int).Add(x0, x2)
	px1 := new(big.Int).Add(xs, x1)
	pxm1 := xs.Sub(xs, x1)
	pxm2 := new(big.Int).Add(pxm1, x2)
	pxm2.Lsh(pxm2, 1)
	pxm2.Sub(pxm2, x0)

	ys := new(big.Int).Add(y0, y2)
	py1 := new(big.Int).Add(ys, y1)
	pym1 := ys.Sub(ys, y1)
	pym2 := new(big.Int).Add(pym1, y2)
	pym2.Lsh(pym2, 1)
	pym2.Sub(pym2, y0)

	// Five pointwise products. Each recursion level may fan its products
	// out once a semaphore slot is available; when the pool is saturated
	// the work simply runs inline.
	var w0, w1, wm1, wm2, winf *big.Int
	products := []struct {
		dst      **big.Int
		px, py   *big.Int
	}{
		{&w0, x0, y0},
		{&w1, px1, py1},
		{&wm1, pxm1, pym1},
		{&wm2, pxm2, pym2},
		{&winf, x2, y2},
	}
	if parallel && depth < MaxToomCookParallelDepth && n >= toomCookParallelThresholdWords {
		var wg sync.WaitGroup
		for i := range products {
			p := &products[i]
			select {
			case getSemaphore() <- struct{}{}:
				wg.Add(1)
				go func() {
					defer wg.Done()
					defer func() { <-getSemaphore() }()
					*p.dst = toomMul(p.px, p.py, parallel, depth+1)
				}()
			default:
				*p.dst = toomMul(p.px, p.py, parallel, depth+1)
			}
		}
		wg.Wait()
	} else {
		for i := range products {
			p := &products[i]
			*p.dst = toomMul(p.px, p.py, parallel, depth+1)
		}
	}

	// Interpolation, Bodrato's sequence. All divisions are exact.
	r3 := new(big.Int).Sub(wm2, w1)
	r3.Quo(r3, three)
	r1 := new(big.Int).Sub(w1, wm1)
	r1.Rsh(r1, 1)
	r2 := new(big.Int).Sub(wm1, w0)
	r3.Sub(r2, r3)
	r3.Rsh(r3, 1)
	r3.Add(r3, winf)
	r3.Add(r3, winf)
	r2.Add(r2, r1)
	r2.Sub(r2, winf)
	r1.Sub(r1, r3)

	// Recompose r0 + r1*B + r2*B^2 + r3*B^3 + r4*B^4.
	z := new(big.Int).Lsh(winf, shift)
	z.Add(z, r3)
	z.Lsh(z, shift)
	z.Add(z, r2)
	z.Lsh(z, shift)
	z.Add(z, r1)
	z.Lsh(z, shift)
	z.Add(z, w0)
	return z
}

// splitThree cuts a word slice into three limbs of k words, least
// significant first. Limbs beyond the end of w are zero. The returned
// integers own their words, so later in-place arithmetic cannot alias w.
func splitThree(w nat, k int) (*big.Int, *big.Int, *big.Int) {
	limb := func(i int) *big.Int {
		lo := i * k
		if lo >= len(w) {
			return new(big.Int)
		}
		hi := lo + k
		if hi > len(w) {
			hi = len(w)
		}
		part := make(nat, hi-lo)
		copy(part, w[lo:hi])
		return new(big.Int).SetBits(part)
	}
	return limb(0), limb(1), limb(2)
}
