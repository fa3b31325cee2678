// Package tui holds the terminal presentation helpers for the CLI.
package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown to ANSI. The coach
// speaks markdown (bold scenario names, bullet advice), so the chat loop
// pipes its messages through this.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(s string) (string, error) { return s, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
