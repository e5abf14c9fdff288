package headless

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"listclip/internal/format"
	"listclip/internal/logging"
	"listclip/internal/ui/headless/render"
)

func (m *headlessModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		return m, nil
	case logMsg:
		m.appendLogLine(string(msg))
		return m, waitForLog(m.logCh)
	case copyResultMsg:
		m.applyCopyResult(msg)
		return m, nil
	case tea.MouseMsg:
		return m.updateMouseMsg(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *headlessModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.cleanup()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Copy):
		return m, m.formatAndCopyCmd()
	case key.Matches(msg, m.keys.Clear):
		m.clearInput()
		return m, nil
	case key.Matches(msg, m.keys.NextFocus):
		m.cycleFocus(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevFocus):
		m.cycleFocus(-1)
		return m, nil
	case key.Matches(msg, m.keys.Activate) && m.focus != focusInput:
		return m, m.activateFocused()
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *headlessModel) updateMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mouse := tea.MouseEvent(msg)
	m.hasHover = false
	switch {
	case zone.Get(copyButtonZone).InBounds(msg):
		m.hovered = focusCopyButton
		m.hasHover = true
	case zone.Get(clearButtonZone).InBounds(msg):
		m.hovered = focusClearButton
		m.hasHover = true
	}

	if mouse.Action != tea.MouseActionRelease || mouse.Button != tea.MouseButtonLeft {
		return m, nil
	}
	switch {
	case zone.Get(copyButtonZone).InBounds(msg):
		m.focus = focusCopyButton
		m.setInputFocus()
		return m, m.formatAndCopyCmd()
	case zone.Get(clearButtonZone).InBounds(msg):
		m.focus = focusClearButton
		m.setInputFocus()
		m.clearInput()
		return m, nil
	}
	return m, nil
}

func (m *headlessModel) cycleFocus(step int) {
	m.focus = focusTarget((int(m.focus) + step + focusTargetCount) % focusTargetCount)
	m.setInputFocus()
}

func (m *headlessModel) setInputFocus() {
	if m.focus == focusInput {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m *headlessModel) activateFocused() tea.Cmd {
	switch m.focus {
	case focusCopyButton:
		return m.formatAndCopyCmd()
	case focusClearButton:
		m.clearInput()
	}
	return nil
}

// formatAndCopyCmd snapshots the buffer and runs the collapse-and-write
// step as a command so a slow clipboard helper cannot stall the UI loop.
func (m *headlessModel) formatAndCopyCmd() tea.Cmd {
	raw := m.input.Value()
	return func() tea.Msg {
		return m.performCopy(raw)
	}
}

func (m *headlessModel) performCopy(raw string) copyResultMsg {
	result, err := format.CollapseWith(raw, m.opts.Separator)
	if err != nil {
		return copyResultMsg{err: err}
	}
	if writeErr := m.writer.Write(m.rootCtx, result); writeErr != nil {
		return copyResultMsg{err: writeErr}
	}
	count := format.CountItems(raw)
	m.logger.Info("copied items",
		logging.Field("count", count),
		logging.Field("output", logging.Truncate(result)),
	)
	return copyResultMsg{count: count}
}

func (m *headlessModel) applyCopyResult(msg copyResultMsg) {
	if errors.Is(msg.err, format.ErrNoItems) {
		m.logger.Warn("format rejected", logging.Field("reason", msg.err))
		m.status = "Nothing to copy: enter at least one non-empty line"
		m.kind = statusWarning
		return
	}
	if msg.err != nil {
		m.logger.Error("copy failed", logging.Field("error", msg.err))
		m.status = "Error: " + msg.err.Error()
		m.kind = statusError
		return
	}
	if msg.count == 1 {
		m.status = "Copied 1 item"
	} else {
		m.status = fmt.Sprintf("Copied %d items", msg.count)
	}
	m.kind = statusCopied
}

func (m *headlessModel) clearInput() {
	m.input.Reset()
	m.status = "Ready"
	m.kind = statusReady
	m.logger.Debug("input cleared")
}

func (m *headlessModel) appendLogLine(line string) {
	wasAtBottom := m.logView.AtBottom()
	trimmed := strings.TrimRight(line, "\n")
	m.logLines = append(m.logLines, trimmed)
	if len(m.logLines) > logLineLimit {
		m.logLines = append([]string(nil), m.logLines[len(m.logLines)-logLineLimit:]...)
	}
	m.refreshLogView()
	if wasAtBottom {
		m.logView.GotoBottom()
	}
}

func (m *headlessModel) refreshLogView() {
	width := max(m.logView.Width, 1)
	wrapped := render.WrapLines(m.logLines, width)
	m.logView.SetContent(strings.Join(wrapped, "\n"))
}

func (m *headlessModel) resizePanes() {
	inner := max(m.width-4, 10)
	m.input.SetWidth(inner)
	m.input.SetHeight(max(m.height-layoutReserveRows, 3))
	m.logView.Width = inner
	m.logView.Height = max(min(m.height/4, 8), minLogPanelHeight)
	m.refreshLogView()
	m.logView.GotoBottom()
}
