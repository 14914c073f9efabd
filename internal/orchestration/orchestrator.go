// Package orchestration runs the independent multiplication paths
// concurrently and cross-checks their results. It backs the CLI --verify
// mode: the parsed value is squared through each path and every output must
// be bit-identical.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/decparse/internal/bigfft"
	apperrors "github.com/agbru/decparse/internal/errors"
	"github.com/agbru/decparse/internal/format"
	"github.com/agbru/decparse/internal/ui"
)

// PathResult encapsulates the outcome of one multiplication path. It serves
// as a standardized container for results from different algorithms,
// facilitating comparison and reporting.
type PathResult struct {
	// Name is the identifier of the path (e.g., "FFT").
	Name string
	// Result is the computed square. It is nil if an error occurred.
	Result *big.Int
	// Duration is the time taken to complete the multiplication.
	Duration time.Duration
	// Err contains any error that occurred during the multiplication.
	Err error
}

// multiplicationPath couples a display name with an explicit dispatch.
type multiplicationPath struct {
	name string
	run  func(v *big.Int) (*big.Int, error)
}

// paths returns the multiplication paths to cross-check for an operand of
// the given bit length. The schoolbook oracle joins only below a size cap;
// its quadratic cost is prohibitive beyond it.
func paths(bitLen int) []multiplicationPath {
	ps := []multiplicationPath{
		{"FFT", func(v *big.Int) (*big.Int, error) {
			return bigfft.MultiplyFFT(v, v)
		}},
		{"Toom-Cook-3", func(v *big.Int) (*big.Int, error) {
			return bigfft.MultiplyToomCook3(v, v, true), nil
		}},
	}
	if bitLen <= 1_000_000 {
		ps = append(ps, multiplicationPath{"Schoolbook", func(v *big.Int) (*big.Int, error) {
			return bigfft.MultiplySchoolbook(v, v), nil
		}})
	}
	return ps
}

// ExecuteVerification squares v through every applicable multiplication
// path concurrently and collects the results.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - v: The operand to square.
//
// Returns:
//   - []PathResult: One entry per executed path.
func ExecuteVerification(ctx context.Context, v *big.Int) []PathResult {
	ps := paths(v.BitLen())
	results := make([]PathResult, len(ps))

	g, ctx := errgroup.WithContext(ctx)
	for i, p := range ps {
		idx, path := i, p
		g.Go(func() error {
			startTime := time.Now()
			if err := ctx.Err(); err != nil {
				results[idx] = PathResult{Name: path.name, Err: err}
				return nil
			}
			res, err := path.run(v)
			results[idx] = PathResult{
				Name: path.name, Result: res, Duration: time.Since(startTime), Err: err,
			}
			return nil
		})
	}
	g.Wait()

	return results
}

// AnalyzeVerificationResults validates consistency across the executed
// paths and writes a comparative summary.
//
// Parameters:
//   - results: The per-path outcomes.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeVerificationResults(results []PathResult, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	theme := ui.GetCurrentTheme()
	var reference *PathResult
	exitCode := apperrors.ExitSuccess

	for i := range results {
		r := &results[i]
		if r.Err != nil {
			fmt.Fprintf(out, "%s✗ %-12s%s %v\n", theme.Error, r.Name, theme.Reset, r.Err)
			if exitCode == apperrors.ExitSuccess {
				exitCode = apperrors.ExitCodeFor(r.Err)
			}
			continue
		}
		marker := theme.Success + "✓"
		if reference == nil {
			reference = r
		} else if reference.Result.Cmp(r.Result) != 0 {
			marker = theme.Error + "✗ mismatch vs " + reference.Name
			exitCode = apperrors.ExitErrorMismatch
		}
		fmt.Fprintf(out, "%s %-12s%s %s\n", marker, r.Name, theme.Reset,
			format.ExecutionDuration(r.Duration))
	}

	if reference == nil && exitCode == apperrors.ExitSuccess {
		exitCode = apperrors.ExitErrorGeneric
	}
	return exitCode
}
