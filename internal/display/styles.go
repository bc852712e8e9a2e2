// Package display renders the startup banner, result tables and status lines.
// Nothing here keeps state between calls.
package display

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	cyan  = lipgloss.Color("6")
	grey  = lipgloss.Color("8")
	red   = lipgloss.Color("9")
	green = lipgloss.Color("10")
)

// Styles groups the lipgloss styles used by a Renderer.
type Styles struct {
	Banner  lipgloss.Style
	Header  lipgloss.Style
	Cell    lipgloss.Style
	Border  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Notice  lipgloss.Style
}

// DefaultStyles builds styles bound to r so colors follow the output's
// capabilities (plain text when writing to a pipe or buffer).
func DefaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Banner:  r.NewStyle().Border(lipgloss.ASCIIBorder()),
		Header:  r.NewStyle().Foreground(cyan).Bold(true).Padding(0, 1),
		Cell:    r.NewStyle().Padding(0, 1),
		Border:  r.NewStyle().Foreground(grey),
		Success: r.NewStyle().Foreground(green),
		Error:   r.NewStyle().Foreground(red),
		Notice:  r.NewStyle().Faint(true),
	}
}

// Renderer writes everything the operator sees to a single writer.
type Renderer struct {
	out    io.Writer
	styles Styles
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out:    out,
		styles: DefaultStyles(lipgloss.NewRenderer(out)),
	}
}

// Writer exposes the underlying output, e.g. for prompts that share it.
func (r *Renderer) Writer() io.Writer {
	return r.out
}
