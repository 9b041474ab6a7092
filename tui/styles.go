package tui

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles of the terminal dashboard
type Styles struct {
	Title     lipgloss.Style
	Nav       lipgloss.Style
	Card      lipgloss.Style
	CardLabel lipgloss.Style
	CardValue lipgloss.Style
	Search    lipgloss.Style
	Focused   lipgloss.Style
	Band      lipgloss.Style
	BandOn    lipgloss.Style
	Table     lipgloss.Style
	Muted     lipgloss.Style
}

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5B3FD6", Dark: "#A78BFA"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#C4B5FD", Dark: "#4C3F7A"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// DefaultStyles returns the purple glass palette used by the web dashboard
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Nav:   lipgloss.NewStyle().Foreground(colorMuted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			Width(24),
		CardLabel: lipgloss.NewStyle().Foreground(colorMuted),
		CardValue: lipgloss.NewStyle().Bold(true),
		Search: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1),
		Band:   lipgloss.NewStyle().Foreground(colorMuted),
		BandOn: lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true),
		Table: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorBorder),
		Muted: lipgloss.NewStyle().Foreground(colorMuted),
	}
}
