// Package tui renders an interactive progress dashboard for long-running
// conversions on top of bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/decparse/internal/parallel"
	"github.com/agbru/decparse/internal/ui"
)

// progressMsg carries a completed fraction from the worker goroutine.
type progressMsg float64

// doneMsg carries the final outcome of the conversion.
type doneMsg struct {
	summary string
	err     error
}

// keyMap defines the dashboard key bindings.
type keyMap struct {
	Quit key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// model is the bubbletea model for the conversion dashboard.
type model struct {
	title    string
	bar      progress.Model
	percent  float64
	done     bool
	summary  string
	err      error
	quitting bool
	cancel   context.CancelFunc

	styleTitle  lipgloss.Style
	styleFrame  lipgloss.Style
	styleStatus lipgloss.Style
	styleError  lipgloss.Style
}

func newModel(title string, cancel context.CancelFunc) model {
	theme := ui.GetCurrentTUITheme()
	return model{
		title:  title,
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithWidth(48)),
		cancel: cancel,
		styleTitle: lipgloss.NewStyle().
			Foreground(theme.Accent).Bold(true),
		styleFrame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(1, 2),
		styleStatus: lipgloss.NewStyle().Foreground(theme.Dim),
		styleError:  lipgloss.NewStyle().Foreground(theme.Error),
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}
	case progressMsg:
		if float64(msg) > m.percent {
			m.percent = float64(msg)
		}
		return m, nil
	case doneMsg:
		m.done = true
		m.summary = msg.summary
		m.err = msg.err
		m.percent = 1
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.quitting && !m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.styleTitle.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.percent))
	b.WriteString(fmt.Sprintf("  %5.1f%%\n\n", m.percent*100))
	switch {
	case m.err != nil:
		b.WriteString(m.styleError.Render(m.err.Error()))
	case m.done:
		b.WriteString(m.summary)
	default:
		b.WriteString(m.styleStatus.Render("press q to cancel"))
	}
	return m.styleFrame.Render(b.String()) + "\n"
}

// Run executes work under the dashboard. The work function receives a
// progress reporter safe to call from any goroutine and should return a
// one-line summary for the final frame.
//
// Returns the work error, or the context error when the user quit early.
func Run(ctx context.Context, title string, work func(ctx context.Context, report func(float64)) (string, error)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newModel(title, cancel), tea.WithContext(ctx))

	var ec parallel.ErrorCollector
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		summary, err := work(ctx, func(done float64) {
			p.Send(progressMsg(done))
		})
		ec.SetError(err)
		p.Send(doneMsg{summary: summary, err: err})
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		ec.SetError(err)
	}
	wg.Wait()
	return ec.Err()
}
