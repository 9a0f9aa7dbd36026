package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for the monitor UI
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - healthy readings
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors
	WarningColor = lipgloss.Color("#FFA500") // Orange - stale data
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 60 // Minimum supported terminal width
	MaxContentWidth  = 80 // Maximum content width before capping
)

// Shared styles for the monitor UI
var (
	// TitleStyle is for the monitor header line
	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// HostStyle is for the device address shown next to the title
	HostStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	// LabelStyle is for reading labels (e.g., "Target temperature")
	LabelStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2).
			Width(24)

	// ValueStyle is for reading values
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	// ModeStyle is for the HVAC mode name
	ModeStyle = lipgloss.NewStyle().
			Foreground(SuccessColor).
			Bold(true)

	// ErrorStyle is for fetch errors
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			PaddingLeft(2)

	// StaleStyle marks readings older than one poll interval
	StaleStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// FooterStyle is for the timestamp/help footer
	FooterStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2)

	// PanelStyle frames the readings block
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(PrimaryColor).
			Padding(1, 2)
)

// TerminalWidth returns the current terminal width, capped to the layout
// limits. Falls back to the minimum width when not attached to a tty.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
