package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress
	// display. 200ms keeps the terminal churn low without looking stale.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// It decouples DisplayProgress from a specific spinner implementation,
// facilitating easier testing. It defines the essential controls for a
// spinner: starting, stopping, and updating its status message.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	//
	// Parameters:
	//   - suffix: The text string to display.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the spinner.Spinner that implements the
// Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

// Start begins the spinner animation.
func (rs *realSpinner) Start() {
	rs.s.Start()
}

// Stop halts the spinner animation.
func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the text that is displayed after the spinner.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

// newSpinner is replaceable in tests.
var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize.
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// renderBar renders a fixed-width progress bar for the fraction done.
func renderBar(done float64) string {
	if done < 0 {
		done = 0
	}
	if done > 1 {
		done = 1
	}
	filled := int(done * ProgressBarWidth)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", ProgressBarWidth-filled) + "]"
}

// DisplayProgress consumes conversion progress updates and animates a
// spinner with a progress bar until the channel closes.
//
// Parameters:
//   - wg: Signalled once the final state has been rendered.
//   - updates: The stream of completed fractions in [0, 1].
//   - out: Destination for the final newline once the spinner stops.
func DisplayProgress(wg *sync.WaitGroup, updates <-chan float64, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.UpdateSuffix(fmt.Sprintf(" parsing %s %5.1f%%", renderBar(0), 0.0))
	sp.Start()
	defer sp.Stop()

	// Coalesce bursts of updates; redraw at most once per refresh tick.
	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	latest := 0.0
	for {
		select {
		case done, ok := <-updates:
			if !ok {
				sp.UpdateSuffix(fmt.Sprintf(" parsing %s 100.0%%", renderBar(1)))
				return
			}
			if done > latest {
				latest = done
			}
		case <-ticker.C:
			sp.UpdateSuffix(fmt.Sprintf(" parsing %s %5.1f%%", renderBar(latest), latest*100))
		}
	}
}
