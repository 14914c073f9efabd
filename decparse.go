// Package decparse converts decimal numerals of up to roughly 1.29 billion
// digits into arbitrary-precision integers in sub-quadratic time, using an
// FFT-based multiplication engine for the large products in the conversion.
//
// The package-level functions operate on a shared default parser. Callers
// that need custom thresholds, parallelism or progress reporting should use
// the decimal and bigfft packages through their own configuration surface
// (see cmd/decparse for an example).
package decparse

import (
	"context"
	"math/big"

	"github.com/agbru/decparse/internal/bigfft"
	"github.com/agbru/decparse/internal/decimal"
	apperrors "github.com/agbru/decparse/internal/errors"
)

// defaultParser backs the package-level entry points. Parallelism stays off
// so library callers get deterministic single-threaded behaviour unless they
// configure their own parser.
var defaultParser = decimal.NewParser(decimal.Options{}, nil)

// ParseBigInteger converts a decimal numeral with an optional leading '+' or
// '-' sign into a big.Int.
func ParseBigInteger(input []byte) (*big.Int, error) {
	if len(input) == 0 {
		return nil, apperrors.ValidationError{Field: "input", Message: "empty numeral"}
	}
	negative := false
	digits := input
	switch input[0] {
	case '+':
		digits = input[1:]
	case '-':
		negative = true
		digits = input[1:]
	}
	z, err := defaultParser.ParseBytes(context.Background(), digits, 0, len(digits))
	if err != nil {
		return nil, err
	}
	if negative {
		z.Neg(z)
	}
	return z, nil
}

// ParseBigIntegerBytes converts input[offset : offset+length], a window of
// ASCII decimal digits, into a non-negative big.Int.
func ParseBigIntegerBytes(input []byte, offset, length int) (*big.Int, error) {
	return defaultParser.ParseBytes(context.Background(), input, offset, length)
}

// ParseBigIntegerUTF16 converts a window of UTF-16 code units, all decimal
// digits, into a non-negative big.Int.
func ParseBigIntegerUTF16(input []uint16, offset, length int) (*big.Int, error) {
	return defaultParser.ParseUTF16(context.Background(), input, offset, length)
}

// CharSequence is the minimal character-container capability set accepted by
// ParseBigIntegerCharSequence.
type CharSequence = decimal.CharSequence

// ParseBigIntegerCharSequence converts a window of an arbitrary character
// sequence, all decimal digits, into a non-negative big.Int.
func ParseBigIntegerCharSequence(seq CharSequence, offset, length int) (*big.Int, error) {
	return defaultParser.ParseCharSequence(context.Background(), seq, offset, length)
}

// Multiply returns a * b, selecting schoolbook, Toom-Cook or FFT
// multiplication from the operand sizes. The parallel flag permits
// concurrent sub-products; it never changes the result.
func Multiply(a, b *big.Int, parallel bool) (*big.Int, error) {
	return bigfft.Multiply(a, b, parallel)
}

// Square returns a * a, using a single forward transform above the FFT
// threshold.
func Square(a *big.Int) (*big.Int, error) {
	return bigfft.Square(a)
}

// MultiplyFFT multiplies with the FFT engine regardless of operand size.
// Multiply should normally be used instead.
func MultiplyFFT(a, b *big.Int) (*big.Int, error) {
	return bigfft.MultiplyFFT(a, b)
}

// FormatDecimal renders n as a decimal numeral. It is the inverse of
// ParseBigInteger for every value the parser accepts.
func FormatDecimal(n *big.Int) string {
	return n.Text(10)
}
