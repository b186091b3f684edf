package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the interface renders with
type Styles struct {
	Header    lipgloss.Style
	Log       lipgloss.Style
	HandInfo  lipgloss.Style
	Actions   lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Joker     lipgloss.Style
	Selected  lipgloss.Style
	Label     lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Help      lipgloss.Style
	Prompt    lipgloss.Style
	Text      lipgloss.Style

	Accent lipgloss.Color // Focused borders
	Muted  lipgloss.Color // Unfocused borders
}

// NewStyles returns the styles for a theme: "default", "dark" or "light".
// Unknown themes fall back to the default.
func NewStyles(theme string) Styles {
	fg := lipgloss.Color("#FAFAFA")
	black := lipgloss.Color("#000000")
	muted := lipgloss.Color("#626262")

	switch theme {
	case "dark":
		black = lipgloss.Color("#C0C0C0")
	case "light":
		fg = lipgloss.Color("#1A1A1A")
		muted = lipgloss.Color("#8A8A8A")
	}

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),

		Log: lipgloss.NewStyle().
			Foreground(fg),

		HandInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Actions: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		BlackCard: lipgloss.NewStyle().
			Foreground(black).
			Bold(true),

		Joker: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(muted),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(muted),

		Help: lipgloss.NewStyle().
			Foreground(muted),

		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(fg),

		Accent: lipgloss.Color("#04B575"),
		Muted:  muted,
	}
}
