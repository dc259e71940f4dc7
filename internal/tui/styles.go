package tui

import "github.com/charmbracelet/lipgloss"

var (
	orange = lipgloss.Color("#F97316")
	blue   = lipgloss.Color("#3B82F6")
	green  = lipgloss.Color("#04B575")
	red    = lipgloss.Color("#FF0000")
	yellow = lipgloss.Color("#EAB308")
	grey   = lipgloss.Color("#888888")
)

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(orange)

	// Section headers ("Next steps:")
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(blue)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(red).
			Bold(true)

	// Warning styling
	WarningStyle = lipgloss.NewStyle().
			Foreground(yellow).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(green).
			Bold(true)

	// Shell commands the user is asked to run
	CommandStyle = lipgloss.NewStyle().
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	// Description styling
	DescStyle = lipgloss.NewStyle().
			Foreground(grey).
			Italic(true)
)
