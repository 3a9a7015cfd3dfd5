package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#01B4E4") // TMDB light blue
	secondaryColor = lipgloss.Color("#F5F5F1") // Light cream color
	accentColor    = lipgloss.Color("#564D4D") // Dark gray
	mutedColor     = lipgloss.Color("#8A8A8A")
	successColor   = lipgloss.Color("#90CEA1") // TMDB green
	errorColor     = lipgloss.Color("#FF4D4D")
	bgColor        = lipgloss.Color("#0D253F") // TMDB dark blue

	// Text styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	normalTextStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	highlightedTextStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	// Component styles
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1).
			Width(50)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(primaryColor)

	placeholderCardStyle = cardStyle.
				Foreground(mutedColor)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	closeButtonStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true)

	pageStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	currentPageStyle = lipgloss.NewStyle().
				Foreground(bgColor).
				Background(primaryColor).
				Bold(true)

	disabledPageStyle = lipgloss.NewStyle().
				Foreground(accentColor)

	infoToastStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Background(accentColor).
			Padding(0, 1)

	errorToastStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Background(errorColor).
			Bold(true).
			Padding(0, 1)
)
