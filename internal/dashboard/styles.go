package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	colorGreen   = lipgloss.Color("42")
	colorYellow  = lipgloss.Color("214")
	colorRed     = lipgloss.Color("196")
	colorBlue    = lipgloss.Color("39")
	colorCyan    = lipgloss.Color("45")
	colorGray    = lipgloss.Color("245")
	colorMagenta = lipgloss.Color("165")
	colorWhite   = lipgloss.Color("255")
	colorBorder  = lipgloss.Color("240")
)

// Styles defines the visual styles for the workload dashboard
type Styles struct {
	// Box styles
	TitleBox lipgloss.Style
	Card     lipgloss.Style
	HelpBar  lipgloss.Style
	Overlay  lipgloss.Style

	// Text styles
	Title    lipgloss.Style
	Header   lipgloss.Style
	Muted    lipgloss.Style
	Banner   lipgloss.Style
	ErrorMsg lipgloss.Style

	// Run-state colors
	StatusRunning    lipgloss.Style
	StatusExited     lipgloss.Style
	StatusStopped    lipgloss.Style
	StatusDead       lipgloss.Style
	StatusRestarting lipgloss.Style
	StatusCreated    lipgloss.Style
	StatusPaused     lipgloss.Style
	StatusUnknown    lipgloss.Style

	// Log line colors
	LogError lipgloss.Style
	LogWarn  lipgloss.Style
	LogInfo  lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		TitleBox: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Padding(0, 1),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),

		HelpBar: lipgloss.NewStyle().
			Foreground(colorGray).
			Padding(0, 1),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorGray),

		Muted: lipgloss.NewStyle().
			Foreground(colorGray),

		Banner: lipgloss.NewStyle().
			Foreground(colorGreen),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(colorRed),

		StatusRunning: lipgloss.NewStyle().
			Foreground(colorGreen),

		StatusExited: lipgloss.NewStyle().
			Foreground(colorYellow),

		StatusStopped: lipgloss.NewStyle().
			Foreground(colorYellow),

		StatusDead: lipgloss.NewStyle().
			Foreground(colorRed),

		StatusRestarting: lipgloss.NewStyle().
			Foreground(colorCyan),

		StatusCreated: lipgloss.NewStyle().
			Foreground(colorBlue),

		StatusPaused: lipgloss.NewStyle().
			Foreground(colorGray),

		StatusUnknown: lipgloss.NewStyle().
			Foreground(colorMagenta),

		LogError: lipgloss.NewStyle().
			Foreground(colorRed),

		LogWarn: lipgloss.NewStyle().
			Foreground(colorYellow),

		LogInfo: lipgloss.NewStyle().
			Foreground(colorWhite),
	}
}

// StyleStatus returns a styled run-state badge.
func (s Styles) StyleStatus(status, label string) string {
	switch status {
	case "running":
		return s.StatusRunning.Render("● " + label)
	case "exited":
		return s.StatusExited.Render("◐ " + label)
	case "stopped":
		return s.StatusStopped.Render("◐ " + label)
	case "dead":
		return s.StatusDead.Render("✗ " + label)
	case "restarting":
		return s.StatusRestarting.Render("◌ " + label)
	case "created":
		return s.StatusCreated.Render("○ " + label)
	case "paused":
		return s.StatusPaused.Render("◑ " + label)
	default:
		return s.StatusUnknown.Render("? " + label)
	}
}

// StyleLogLine colors a log line according to its severity.
func (s Styles) StyleLogLine(level, text string) string {
	switch level {
	case "error":
		return s.LogError.Render(text)
	case "warn":
		return s.LogWarn.Render(text)
	default:
		return s.LogInfo.Render(text)
	}
}
