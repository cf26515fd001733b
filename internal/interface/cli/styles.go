// Package cli is the interactive terminal front end: a read-eval-print loop that
// feeds lines to the logic layer and renders the filtered module list after
// every command.
package cli

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A3FC0", Dark: "#9D8CFF"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#8A8A8A"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#1E7B34", Dark: "#5FD068"}
	colorError   = lipgloss.AdaptiveColor{Light: "#B3261E", Dark: "#FF6B6B"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#9A6700", Dark: "#F2C94C"}
)

// Styles holds every style the presenter uses.
type Styles struct {
	Title   lipgloss.Style
	Index   lipgloss.Style
	Module  lipgloss.Style
	Heading lipgloss.Style
	Muted   lipgloss.Style
	Done    lipgloss.Style
	Overdue lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
}

// NewStyles builds the styles for r. A renderer writing to something other than
// a terminal drops colours, so tests see plain text.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),

		Index: r.NewStyle().
			Foreground(colorMuted),

		Module: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),

		Heading: r.NewStyle().
			Underline(true),

		Muted: r.NewStyle().
			Foreground(colorMuted),

		Done: r.NewStyle().
			Foreground(colorSuccess),

		Overdue: r.NewStyle().
			Foreground(colorWarning),

		Success: r.NewStyle().
			Foreground(colorSuccess),

		Error: r.NewStyle().
			Foreground(colorError).
			Bold(true),

		Prompt: r.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
	}
}
