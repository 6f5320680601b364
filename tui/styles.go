package tui

import "github.com/charmbracelet/lipgloss"

// Chrome colors. Swatch colors come from the extracted palette.
var (
	salmonPink = lipgloss.Color("#FFB3BA")
	mutedGray  = lipgloss.Color("#6B7280")
	labelDark  = lipgloss.Color("#000000")
	labelLight = lipgloss.Color("#FFFFFF")
)

var (
	appStyle = lipgloss.NewStyle().
			Margin(1)

	titleStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(0, 1)

	swatchStyle = lipgloss.NewStyle().
			Align(lipgloss.Center, lipgloss.Center)
)
