// Package config defines the application configuration and its resolution
// chain. Values are resolved with the priority: CLI flags, environment
// variables (DECPARSE_ prefix), adaptive hardware estimation, static
// defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/decparse/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by this package.
const EnvPrefix = "DECPARSE_"

// DefaultTimeout bounds a single conversion run in the CLI.
const DefaultTimeout = 10 * time.Minute

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	// Input is the decimal numeral given directly on the command line.
	Input string
	// InputFile is a path to read the numeral from instead; "-" means stdin.
	InputFile string
	// OutputFile is a path to save the parse report to (empty for none).
	OutputFile string

	// RecursionThreshold is the digit count below which the scalar
	// conversion path is used. Zero selects the library default.
	RecursionThreshold int
	// ParallelThreshold is the digit count below which recursive halves
	// are not split across goroutines. Zero selects an adaptive value.
	ParallelThreshold int
	// Parallel permits concurrent conversion of recursion halves.
	Parallel bool

	// Verify re-multiplies the parsed value over every multiplication
	// path and compares the results.
	Verify bool
	// ShowValue prints the parsed value itself (truncated when long).
	ShowValue bool
	// Timeout bounds the whole run.
	Timeout time.Duration

	// Verbose enables detailed output including hardware and memory
	// reports; Quiet reduces output to the value alone.
	Verbose bool
	Quiet   bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI runs the conversion under the interactive dashboard.
	TUI bool
	// MetricsAddr, when non-empty, serves Prometheus metrics on the
	// given listen address for the duration of the run.
	MetricsAddr string
}

// ParseConfig parses command-line arguments into an AppConfig and applies
// environment overrides for flags that were not set explicitly.
//
// Parameters:
//   - programName: The name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errWriter: Destination for flag parsing errors and usage.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: A ConfigError for invalid values, or flag.ErrHelp.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	var cfg AppConfig
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	fs.StringVar(&cfg.Input, "value", "", "decimal numeral to parse")
	fs.StringVar(&cfg.InputFile, "file", "", "file containing the numeral (\"-\" for stdin)")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the parse report to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for --output")
	fs.IntVar(&cfg.RecursionThreshold, "recursion-threshold", 0, "digits below which the scalar path is used (0 = default)")
	fs.IntVar(&cfg.ParallelThreshold, "parallel-threshold", 0, "digits below which halves are not parallelized (0 = adaptive)")
	fs.BoolVar(&cfg.Parallel, "parallel", true, "convert recursion halves concurrently")
	fs.BoolVar(&cfg.Verify, "verify", false, "cross-check the multiplication paths on the parsed value")
	fs.BoolVar(&cfg.ShowValue, "c", false, "print the parsed value")
	fs.BoolVar(&cfg.ShowValue, "calculate", false, "print the parsed value")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "maximum run duration")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "verbose output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the parsed value")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for --quiet")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.BoolVar(&cfg.TUI, "tui", false, "run with the interactive dashboard")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while running")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&cfg, fs)
	if cfg.Input == "" && cfg.InputFile == "" && fs.NArg() > 0 {
		cfg.Input = fs.Arg(0)
	}

	if err := validate(cfg); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

// validate rejects contradictory or out-of-range configurations.
func validate(cfg AppConfig) error {
	if cfg.Input == "" && cfg.InputFile == "" {
		return apperrors.NewConfigError("no input: pass a numeral as an argument, via --value, or via --file")
	}
	if cfg.Input != "" && cfg.InputFile != "" {
		return apperrors.NewConfigError("--value and --file are mutually exclusive")
	}
	if cfg.RecursionThreshold < 0 {
		return apperrors.NewConfigError("--recursion-threshold must be >= 0, got %d", cfg.RecursionThreshold)
	}
	if cfg.RecursionThreshold > 0 && cfg.RecursionThreshold < 19 {
		return apperrors.NewConfigError("--recursion-threshold must be at least 19 digits, got %d", cfg.RecursionThreshold)
	}
	if cfg.Timeout <= 0 {
		return apperrors.NewConfigError("--timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.Quiet && cfg.Verbose {
		return apperrors.NewConfigError("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

// String renders the configuration for verbose diagnostics.
func (c AppConfig) String() string {
	return fmt.Sprintf("recursionThreshold=%d parallel=%t parallelThreshold=%d verify=%t timeout=%s",
		c.RecursionThreshold, c.Parallel, c.ParallelThreshold, c.Verify, c.Timeout)
}
