package ui

import (
	"github.com/charmbracelet/lipgloss"
	tint "github.com/lrstanley/bubbletint"
)

// Styles holds the lipgloss styles used across the TUI, derived from
// the current theme.
type Styles struct {
	Title     lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style

	Running lipgloss.Style
	Stopped lipgloss.Style
	Elapsed lipgloss.Style

	Selected lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Project  lipgloss.Style
	Total    lipgloss.Style

	Error  lipgloss.Style
	Border lipgloss.Style
	Help   lipgloss.Style
}

// NewStylesFromRegistry builds styles from the registry's current tint.
func NewStylesFromRegistry(r *tint.Registry) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(r.Purple()),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(r.Bg()).
			Background(r.Purple()).
			Padding(0, 1),
		Tab: lipgloss.NewStyle().
			Foreground(r.BrightBlack()).
			Padding(0, 1),

		Running: lipgloss.NewStyle().
			Bold(true).
			Foreground(r.Green()),
		Stopped: lipgloss.NewStyle().
			Foreground(r.BrightBlack()),
		Elapsed: lipgloss.NewStyle().
			Bold(true).
			Foreground(r.Cyan()),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(r.BrightPurple()),
		Normal: lipgloss.NewStyle().
			Foreground(r.Fg()),
		Muted: lipgloss.NewStyle().
			Foreground(r.BrightBlack()),
		Project: lipgloss.NewStyle().
			Foreground(r.Yellow()),
		Total: lipgloss.NewStyle().
			Bold(true).
			Foreground(r.Cyan()),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(r.Red()),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(r.BrightBlack()).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(r.BrightBlack()),
	}
}
