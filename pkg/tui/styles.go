// pkg/tui/styles.go

package tui

import "github.com/charmbracelet/lipgloss"

// Palette. Adaptive pairs keep the form readable on both light and
// dark terminals.
var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#6d28d9", Dark: "#a78bfa"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#15803d", Dark: "#86efac"}
	colorError   = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#fca5a5"}
)

// Styles holds the rendered look of every form element.
type Styles struct {
	Title   lipgloss.Style
	Group   lipgloss.Style
	Label   lipgloss.Style
	Focused lipgloss.Style
	Toggle  lipgloss.Style
	Help    lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Stat    lipgloss.Style
	Preview lipgloss.Style
	Spinner lipgloss.Style
}

// DefaultStyles returns the standard pythia look.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Group:   lipgloss.NewStyle().Bold(true).Foreground(colorMuted),
		Label:   lipgloss.NewStyle(),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(colorAccent),
		Toggle:  lipgloss.NewStyle(),
		Help:    lipgloss.NewStyle().Foreground(colorMuted),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Success: lipgloss.NewStyle().Foreground(colorSuccess),
		Stat:    lipgloss.NewStyle().Bold(true),
		Preview: lipgloss.NewStyle().Foreground(colorMuted),
		Spinner: lipgloss.NewStyle().Foreground(colorAccent),
	}
}
