// This file implements the divide-and-conquer conversion of a decimal digit
// stream into a big.Int magnitude.
//
// Small windows are folded into 64-bit accumulators eight digits at a time;
// larger windows are split recursively so that the right half always spans
// recursionThreshold * 2^i digits. The split rule keeps every multiplier a
// memoised power of ten, and the combines near the top of the recursion tree
// are large enough to dispatch into the FFT multiplier.

package decimal

import (
	"context"
	"encoding/binary"
	"math/big"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/decparse/internal/errors"
)

const (
	// MaxDigits is the largest supported input length in decimal digits.
	// Beyond it the bit length of the magnitude would overflow the FFT
	// dispatch arithmetic.
	MaxDigits = 1_292_782_622

	// blockDigits is the widest decimal block that fits a 64-bit
	// accumulator without overflow.
	blockDigits = 18

	// DefaultRecursionThreshold is the window size in digits below which
	// the scalar accumulation path beats the recursive split.
	DefaultRecursionThreshold = 400

	// DefaultParallelThreshold is the window size in digits below which
	// splitting across goroutines costs more than it saves.
	DefaultParallelThreshold = 1 << 16
)

// tenPow18 is the block radix 10^blockDigits.
var tenPow18 = big.NewInt(1_000_000_000_000_000_000)

// parseRun carries the per-invocation state of one conversion: the parser
// configuration, the progress accounting, and the cancellation context.
type parseRun struct {
	p        *Parser
	total    int64
	consumed atomic.Int64
	reporter ProgressReporter
}

// recursive converts digits into a big.Int. pos0 is the absolute position of
// digits[0] in the caller's input, used only for error reporting.
func (r *parseRun) recursive(ctx context.Context, digits []byte, pos0 int) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	threshold := r.p.opts.RecursionThreshold
	if len(digits) <= threshold {
		return r.iterative(digits, pos0)
	}

	// The right half spans threshold*2^(pow-1) digits, so its multiplier
	// is slot pow-1 of the powers-of-ten ladder.
	pow := 0
	for n := len(digits); n > threshold; n /= 2 {
		pow++
	}
	rightLen := threshold << (pow - 1)
	mid := len(digits) - rightLen

	var left, right *big.Int
	if r.p.opts.Parallel && len(digits) >= r.p.opts.ParallelThreshold {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			left, err = r.recursive(gctx, digits[:mid], pos0)
			return err
		})
		g.Go(func() error {
			var err error
			right, err = r.recursive(gctx, digits[mid:], pos0+mid)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		var err error
		if left, err = r.recursive(ctx, digits[:mid], pos0); err != nil {
			return nil, err
		}
		if right, err = r.recursive(ctx, digits[mid:], pos0+mid); err != nil {
			return nil, err
		}
	}

	multiplier, err := r.p.powers.power(pow - 1)
	if err != nil {
		return nil, err
	}
	z, err := r.p.mult.Multiply(left, multiplier, r.p.opts.Parallel)
	if err != nil {
		return nil, err
	}
	return z.Add(z, right), nil
}

// iterative converts a window of at most the recursion threshold in digits
// by accumulating 18-digit blocks: acc = acc*10^18 + block.
func (r *parseRun) iterative(digits []byte, pos0 int) (*big.Int, error) {
	head := len(digits) % blockDigits
	first, err := parseDigitsUint64(digits[:head], pos0)
	if err != nil {
		return nil, err
	}
	acc := new(big.Int).SetUint64(first)
	for i := head; i < len(digits); i += blockDigits {
		block, err := parseDigitsUint64(digits[i:i+blockDigits], pos0+i)
		if err != nil {
			return nil, err
		}
		acc.Mul(acc, tenPow18)
		acc.Add(acc, new(big.Int).SetUint64(block))
	}
	r.progress(len(digits))
	return acc, nil
}

// progress accounts len converted digits and notifies the reporter.
func (r *parseRun) progress(n int) {
	if r.reporter == nil {
		return
	}
	done := r.consumed.Add(int64(n))
	r.reporter(float64(done) / float64(r.total))
}

// parseDigitsUint64 folds up to 18 ASCII digits into a uint64, validating as
// it goes. pos0 is the absolute position of d[0] for error reporting.
func parseDigitsUint64(d []byte, pos0 int) (uint64, error) {
	var v uint64
	i := 0
	for ; i+8 <= len(d); i += 8 {
		chunk, ok := tryParseEightDigits(d[i:])
		if !ok {
			return 0, firstInvalidDigit(d[i:i+8], pos0+i)
		}
		v = v*100_000_000 + uint64(chunk)
	}
	for ; i < len(d); i++ {
		c := d[i]
		if c < '0' || c > '9' {
			return 0, apperrors.InvalidDigitError{Pos: pos0 + i, Char: rune(c)}
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}

// tryParseEightDigits converts eight ASCII digits starting at b[0] into
// their numeric value using branch-free SWAR arithmetic. It reports false if
// any of the eight bytes is not a decimal digit.
func tryParseEightDigits(b []byte) (uint32, bool) {
	v := binary.LittleEndian.Uint64(b)
	// Every byte must have high nibble 3 and low nibble 0..9.
	if v&0xF0F0F0F0F0F0F0F0 != 0x3030303030303030 {
		return 0, false
	}
	if (v+0x0606060606060606)&0xF0F0F0F0F0F0F0F0 != 0x3030303030303030 {
		return 0, false
	}
	v &= 0x0F0F0F0F0F0F0F0F
	v = (v * 2561) >> 8
	v = (v & 0x00FF00FF00FF00FF) * 6553601 >> 16
	v = (v & 0x0000FFFF0000FFFF) * 42949672960001 >> 32
	return uint32(v), true
}

// firstInvalidDigit locates the offending byte after a SWAR validation
// failure and builds the error for it.
func firstInvalidDigit(d []byte, pos0 int) error {
	for i, c := range d {
		if c < '0' || c > '9' {
			return apperrors.InvalidDigitError{Pos: pos0 + i, Char: rune(c)}
		}
	}
	// Unreachable: the caller saw at least one non-digit in d.
	return apperrors.InvalidDigitError{Pos: pos0, Char: rune(d[0])}
}
