// Package decimal converts very long decimal numerals into big.Int
// magnitudes in sub-quadratic time. The digit stream is sliced into blocks,
// each block is folded into a 64-bit accumulator, and the blocks are
// recombined by multiplying with memoised powers of ten; the large
// multiplications near the top of the recursion tree dispatch into
// internal/bigfft.
package decimal

//go:generate mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks

import (
	"context"
	"math/big"

	"github.com/agbru/decparse/internal/bigfft"
	apperrors "github.com/agbru/decparse/internal/errors"
)

// Multiplier abstracts the big-integer multiplication backend used for the
// combine step and the powers-of-ten ladder. The indirection only sits on
// combine-sized products, where its cost vanishes against the multiply.
type Multiplier interface {
	// Multiply returns a * b. The parallel flag permits concurrent
	// sub-products; it never changes the result.
	Multiply(a, b *big.Int, parallel bool) (*big.Int, error)

	// Square returns a * a.
	Square(a *big.Int) (*big.Int, error)
}

// ProgressReporter receives the completed fraction of a conversion in
// [0, 1]. It may be called from multiple goroutines during parallel parses.
type ProgressReporter func(done float64)

// Options configures a Parser.
type Options struct {
	// RecursionThreshold is the window size in digits below which the
	// scalar accumulation path is used. Zero selects the default.
	RecursionThreshold int

	// Parallel permits the recursive halves to run on separate
	// goroutines. The split structure is fixed, so results are identical
	// for every degree of parallelism.
	Parallel bool

	// ParallelThreshold is the window size in digits below which halves
	// are not split across goroutines. Zero selects the default.
	ParallelThreshold int

	// Progress, when non-nil, receives conversion progress updates.
	Progress ProgressReporter
}

// withDefaults fills unset options.
func (o Options) withDefaults() Options {
	if o.RecursionThreshold <= 0 {
		o.RecursionThreshold = DefaultRecursionThreshold
	}
	if o.ParallelThreshold <= 0 {
		o.ParallelThreshold = DefaultParallelThreshold
	}
	return o
}

// fftMultiplier is the default Multiplier, backed by internal/bigfft.
type fftMultiplier struct{}

func (fftMultiplier) Multiply(a, b *big.Int, parallel bool) (*big.Int, error) {
	return bigfft.Multiply(a, b, parallel)
}

func (fftMultiplier) Square(a *big.Int) (*big.Int, error) {
	return bigfft.Square(a)
}

// Parser converts decimal digit sequences into big.Int values. A Parser is
// safe for concurrent use; its only mutable state is the powers-of-ten
// ladder, which grows under a lock.
type Parser struct {
	opts   Options
	mult   Multiplier
	powers *powerCache
}

// NewParser creates a Parser with the given options. A nil multiplier
// selects the internal FFT-backed implementation.
func NewParser(opts Options, mult Multiplier) *Parser {
	if mult == nil {
		mult = fftMultiplier{}
	}
	opts = opts.withDefaults()
	return &Parser{
		opts:   opts,
		mult:   mult,
		powers: newPowerCache(opts.RecursionThreshold, mult),
	}
}

// ParseBytes converts input[offset : offset+length], a window of ASCII
// decimal digits, into a non-negative big.Int. This is the fast path; the
// UTF-16 and CharSequence entry points funnel into it after transcoding.
func (p *Parser) ParseBytes(ctx context.Context, input []byte, offset, length int) (*big.Int, error) {
	if err := checkWindow(len(input), offset, length); err != nil {
		return nil, err
	}
	digits := input[offset : offset+length]
	run := &parseRun{p: p, total: int64(length), reporter: p.opts.Progress}
	return run.recursive(ctx, digits, offset)
}

// checkWindow validates an (offset, length) window against an input of n
// units and the supported maximum length.
func checkWindow(n, offset, length int) error {
	if offset < 0 || length < 0 || offset > n-length {
		return apperrors.ValidationError{Field: "offset/length", Message: "window out of bounds"}
	}
	if length == 0 {
		return apperrors.ValidationError{Field: "length", Message: "empty digit sequence"}
	}
	if length > MaxDigits {
		return apperrors.LengthExceededError{Length: length, Max: MaxDigits}
	}
	return nil
}
