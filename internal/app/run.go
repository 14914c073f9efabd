// This file implements the parse run itself: input acquisition, progress
// display, verification and reporting.

package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/big"
	"os"
	"sync"
	"time"

	"github.com/agbru/decparse/internal/bigfft"
	"github.com/agbru/decparse/internal/cli"
	"github.com/agbru/decparse/internal/decimal"
	apperrors "github.com/agbru/decparse/internal/errors"
	"github.com/agbru/decparse/internal/format"
	"github.com/agbru/decparse/internal/logging"
	"github.com/agbru/decparse/internal/metrics"
	"github.com/agbru/decparse/internal/orchestration"
	"github.com/agbru/decparse/internal/tui"
	"github.com/agbru/decparse/internal/ui"
)

// readInput returns the numeral bytes selected by the configuration.
func (a *Application) readInput() ([]byte, error) {
	if a.Config.Input != "" {
		return []byte(a.Config.Input), nil
	}
	var (
		data []byte
		err  error
	)
	if a.Config.InputFile == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(a.Config.InputFile)
	}
	if err != nil {
		return nil, apperrors.WrapError(err, "reading input")
	}
	return bytes.TrimSpace(data), nil
}

// splitSign strips an optional leading '+' or '-' from the numeral.
func splitSign(numeral []byte) (digits []byte, negative bool) {
	if len(numeral) == 0 {
		return numeral, false
	}
	switch numeral[0] {
	case '+':
		return numeral[1:], false
	case '-':
		return numeral[1:], true
	}
	return numeral, false
}

// runParse performs the conversion and reporting for one numeral.
func (a *Application) runParse(ctx context.Context, out io.Writer) int {
	numeral, err := a.readInput()
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	digits, negative := splitSign(numeral)
	a.Log.Debug("input resolved",
		logging.Int("digits", len(digits)),
		logging.String("config", a.Config.String()))

	memBefore := metrics.NewMemoryCollector().Snapshot()

	var value *big.Int
	var duration time.Duration
	if a.Config.TUI {
		value, duration, err = a.parseWithTUI(ctx, digits)
	} else {
		value, duration, err = a.parseWithSpinner(ctx, digits, out)
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeFor(err)
	}
	if negative {
		value.Neg(value)
	}
	a.Log.Debug("conversion finished",
		logging.Int("bits", value.BitLen()),
		logging.Float64("seconds", duration.Seconds()))

	report := cli.ParseReport{Digits: len(digits), Value: value, Duration: duration}
	if a.Config.Quiet {
		cli.DisplayQuietReport(out, report)
	} else {
		cli.DisplayReport(out, report, a.Config.ShowValue)
		if a.Config.Verbose {
			a.displayVerboseDiagnostics(out, memBefore)
		}
	}

	if a.Config.OutputFile != "" {
		if err := cli.WriteReportToFile(a.Config.OutputFile, report); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			theme := ui.GetCurrentTheme()
			fmt.Fprintf(out, "%s✓ Report saved to: %s%s\n", theme.Success, a.Config.OutputFile, theme.Reset)
		}
	}

	if a.Config.Verify {
		results := orchestration.ExecuteVerification(ctx, value)
		return orchestration.AnalyzeVerificationResults(results, out)
	}
	return apperrors.ExitSuccess
}

// newParser builds the configured, instrumented parser with the given
// progress reporter.
func (a *Application) newParser(progress decimal.ProgressReporter) decimal.BigIntParser {
	core := decimal.NewParser(decimal.Options{
		RecursionThreshold: a.Config.RecursionThreshold,
		Parallel:           a.Config.Parallel,
		ParallelThreshold:  a.Config.ParallelThreshold,
		Progress:           progress,
	}, nil)
	return decimal.NewInstrumentedParser(core)
}

// parseWithSpinner runs the conversion behind the terminal spinner.
func (a *Application) parseWithSpinner(ctx context.Context, digits []byte, out io.Writer) (*big.Int, time.Duration, error) {
	updates := make(chan float64, 64)
	reporter := func(done float64) {
		select {
		case updates <- done:
		default: // drop bursts; the display coalesces anyway
		}
	}

	var displayWg sync.WaitGroup
	showProgress := !a.Config.Quiet && len(digits) >= 1_000_000
	if showProgress {
		displayWg.Add(1)
		go cli.DisplayProgress(&displayWg, updates, out)
	}

	parser := a.newParser(reporter)
	start := time.Now()
	value, err := parser.ParseBytes(ctx, digits, 0, len(digits))
	duration := time.Since(start)

	close(updates)
	if showProgress {
		displayWg.Wait()
	}
	return value, duration, err
}

// parseWithTUI runs the conversion under the interactive dashboard.
func (a *Application) parseWithTUI(ctx context.Context, digits []byte) (*big.Int, time.Duration, error) {
	var value *big.Int
	var duration time.Duration
	title := fmt.Sprintf("decparse — %s digits", format.Count(len(digits)))
	err := tui.Run(ctx, title, func(ctx context.Context, report func(float64)) (string, error) {
		parser := a.newParser(decimal.ProgressReporter(report))
		start := time.Now()
		v, err := parser.ParseBytes(ctx, digits, 0, len(digits))
		if err != nil {
			return "", err
		}
		value = v
		duration = time.Since(start)
		return fmt.Sprintf("done: %s bits in %s",
			format.Count(v.BitLen()), format.ExecutionDuration(duration)), nil
	})
	if err != nil {
		return nil, 0, err
	}
	return value, duration, nil
}

// displayVerboseDiagnostics prints hardware and memory details after a run.
func (a *Application) displayVerboseDiagnostics(out io.Writer, before metrics.MemorySnapshot) {
	theme := ui.GetCurrentTheme()
	delta := metrics.Delta(before, metrics.NewMemoryCollector().Snapshot())
	fmt.Fprintf(out, "%sConfig:%s %s\n", theme.Secondary, theme.Reset, a.Config)
	fmt.Fprintf(out, "%sHardware:%s %s\n", theme.Secondary, theme.Reset, bigfft.DetectCPUFeatures())
	fmt.Fprintf(out, "%sMemory:%s heap=%d MiB sys=%d MiB gc=%d pause=%s\n",
		theme.Secondary, theme.Reset,
		delta.HeapAlloc/(1<<20), delta.Sys/(1<<20), delta.NumGC,
		time.Duration(delta.PauseTotalNs))
}
