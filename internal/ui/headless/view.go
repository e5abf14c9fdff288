package headless

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"listclip/internal/ui/headless/render"
	"listclip/internal/ui/headless/theme"
)

const (
	copyButtonZone  = "listclip.copy"
	clearButtonZone = "listclip.clear"
)

func (m *headlessModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width <= 0 {
		return "loading..."
	}

	title := theme.TitleStyle.Render("ListClip " + m.buildVersion)
	inputPanel := render.Frame(m.input.View(), m.width, m.inputPanelStyle())
	buttons := m.renderButtons()
	status := render.TruncateDisplayWidth(m.statusStyle().Render(m.status), max(m.width-2, 1))
	logPanel := render.Frame(m.logView.View(), m.width, theme.PanelStyle)
	helpLine := theme.HelpStyle.Render(m.help.View(m.keys))

	view := strings.Join([]string{
		title,
		inputPanel,
		buttons,
		status,
		logPanel,
		helpLine,
	}, "\n")
	return zone.Scan(view)
}

func (m *headlessModel) inputPanelStyle() lipgloss.Style {
	if m.focus == focusInput {
		return theme.PanelStyle.BorderForeground(lipgloss.Color("10"))
	}
	return theme.PanelStyle
}

func (m *headlessModel) renderButtons() string {
	copyLabel := "Format & Copy"
	clearLabel := "Clear"

	copyButton := zone.Mark(copyButtonZone, m.buttonStyle(focusCopyButton).Render(copyLabel))
	clearButton := zone.Mark(clearButtonZone, m.buttonStyle(focusClearButton).Render(clearLabel))
	return lipgloss.JoinHorizontal(lipgloss.Top, copyButton, " ", clearButton)
}

func (m *headlessModel) buttonStyle(target focusTarget) lipgloss.Style {
	if m.focus == target {
		return theme.ButtonFocusedStyle
	}
	if m.hasHover && m.hovered == target {
		return theme.ButtonHoverStyle
	}
	return theme.ButtonStyle
}

func (m *headlessModel) statusStyle() lipgloss.Style {
	switch m.kind {
	case statusCopied:
		return theme.StatusCopiedStyle
	case statusWarning:
		return theme.StatusWarningStyle
	case statusError:
		return theme.StatusErrorStyle
	default:
		return theme.StatusReadyStyle
	}
}
