// This file provides the UTF-16 and generic character-sequence entry points.
// Both transcode their window into ASCII bytes up front, validating as they
// go, so the recursive machinery stays monomorphic over byte slices.

package decimal

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/decparse/internal/errors"
)

// CharSequence is the minimal capability set the generic entry point needs
// from an arbitrary character container.
type CharSequence interface {
	// Len returns the number of characters in the sequence.
	Len() int
	// CharAt returns the character at index i, 0 <= i < Len().
	CharAt(i int) rune
}

// ParseUTF16 converts input[offset : offset+length], a window of UTF-16
// code units that must all be decimal digits, into a non-negative big.Int.
// Offsets and lengths are in code units.
func (p *Parser) ParseUTF16(ctx context.Context, input []uint16, offset, length int) (*big.Int, error) {
	if err := checkWindow(len(input), offset, length); err != nil {
		return nil, err
	}
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		u := input[offset+i]
		if u < '0' || u > '9' {
			return nil, apperrors.InvalidDigitError{Pos: offset + i, Char: rune(u)}
		}
		digits[i] = byte(u)
	}
	run := &parseRun{p: p, total: int64(length), reporter: p.opts.Progress}
	return run.recursive(ctx, digits, offset)
}

// ParseCharSequence converts seq[offset : offset+length] into a non-negative
// big.Int. Every character in the window must be a decimal digit.
func (p *Parser) ParseCharSequence(ctx context.Context, seq CharSequence, offset, length int) (*big.Int, error) {
	if err := checkWindow(seq.Len(), offset, length); err != nil {
		return nil, err
	}
	digits := make([]byte, length)
	for i := 0; i < length; i++ {
		c := seq.CharAt(offset + i)
		if c < '0' || c > '9' {
			return nil, apperrors.InvalidDigitError{Pos: offset + i, Char: c}
		}
		digits[i] = byte(c)
	}
	run := &parseRun{p: p, total: int64(length), reporter: p.opts.Progress}
	return run.recursive(ctx, digits, offset)
}
