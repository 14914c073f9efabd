// Package ui provides terminal color themes shared by the CLI presenter and
// the TUI dashboard.
package ui
