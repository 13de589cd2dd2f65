package ui

import "github.com/charmbracelet/lipgloss"

var (
	Primary   = lipgloss.Color("#00ED64")
	Secondary = lipgloss.Color("#7C3AED")

	ColorSuccess = lipgloss.Color("#10B981")
	ColorWarning = lipgloss.Color("#F59E0B")
	ColorError   = lipgloss.Color("#EF4444")
	ColorInfo    = lipgloss.Color("#06B6D4")
	ColorMuted   = lipgloss.Color("#6B7280")

	Text    = lipgloss.Color("#F9FAFB")
	TextDim = lipgloss.Color("#9CA3AF")
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	DoneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)
)

// Selector styles
var (
	selectorTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Primary)

	selectorHelpStyle = lipgloss.NewStyle().
				Foreground(ColorWarning)

	selectorRuleStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	selectorCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(Text)

	selectorCheckedStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	selectorFooterStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)
)
