package theme

import "github.com/charmbracelet/lipgloss"

var (
	PanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	FocusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	HelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	StatusReadyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	StatusCopiedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	StatusWarningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	StatusErrorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	ButtonStyle        = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder())
	ButtonFocusedStyle = ButtonStyle.BorderForeground(lipgloss.Color("10")).Foreground(lipgloss.Color("10"))
	ButtonHoverStyle   = ButtonStyle.BorderForeground(lipgloss.Color("15")).Foreground(lipgloss.Color("15"))
)
