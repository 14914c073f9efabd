// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//   - Write* functions write data to files on the filesystem.

package cli

import (
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/decparse/internal/format"
	"github.com/agbru/decparse/internal/ui"
)

const (
	// TruncationLimit is the longest parsed value, in digits, shown in full;
	// longer values are truncated in standard output to avoid cluttering the
	// terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the
	// beginning and end of a truncated number.
	DisplayEdges = 25
)

// ParseReport bundles everything the presenter needs about a finished
// conversion.
type ParseReport struct {
	// Digits is the input length in decimal digits.
	Digits int
	// Value is the parsed integer.
	Value *big.Int
	// Duration is the wall time of the conversion.
	Duration time.Duration
}

// FormatTruncated renders a decimal numeral, eliding the middle of values
// longer than TruncationLimit digits.
func FormatTruncated(s string) string {
	if len(s) <= TruncationLimit {
		return s
	}
	return fmt.Sprintf("%s...%s (%s digits)",
		s[:DisplayEdges], s[len(s)-DisplayEdges:], format.Count(len(s)))
}

// DisplayReport writes the standard human-readable parse report.
//
// Parameters:
//   - out: The output writer.
//   - report: The finished conversion.
//   - showValue: Whether to print the (possibly truncated) value itself.
func DisplayReport(out io.Writer, report ParseReport, showValue bool) {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(out, "%sParsed %s digits%s in %s (%s)\n",
		theme.Success, format.Count(report.Digits), theme.Reset,
		format.ExecutionDuration(report.Duration),
		format.Throughput(report.Digits, report.Duration))
	fmt.Fprintf(out, "%sBit length:%s %s\n",
		theme.Secondary, theme.Reset, format.Count(report.Value.BitLen()))
	fmt.Fprintf(out, "%sLow 64 bits:%s 0x%016x\n",
		theme.Secondary, theme.Reset, lowUint64(report.Value))
	if showValue {
		fmt.Fprintf(out, "%sValue:%s %s\n",
			theme.Primary, theme.Reset, FormatTruncated(report.Value.Text(10)))
	}
}

// DisplayQuietReport outputs only the parsed value, suitable for scripting.
func DisplayQuietReport(out io.Writer, report ParseReport) {
	fmt.Fprintln(out, report.Value.Text(10))
}

// lowUint64 extracts the low 64 bits of the magnitude of v.
func lowUint64(v *big.Int) uint64 {
	words := v.Bits()
	if len(words) == 0 {
		return 0
	}
	low := uint64(words[0])
	if bits.UintSize == 32 && len(words) > 1 {
		// 32-bit words: fold in the second word.
		low |= uint64(words[1]) << 32
	}
	return low
}

// WriteReportToFile writes a parse report to a file, creating parent
// directories as needed.
//
// Parameters:
//   - path: Destination file path.
//   - report: The finished conversion.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteReportToFile(path string, report ParseReport) error {
	if path == "" {
		return nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# Decimal Parse Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Duration: %s\n", report.Duration)
	fmt.Fprintf(file, "# Digits: %d\n", report.Digits)
	fmt.Fprintf(file, "# Bits: %d\n", report.Value.BitLen())
	fmt.Fprintf(file, "\n%s\n", report.Value.Text(10))

	return nil
}
