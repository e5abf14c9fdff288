package headless

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"listclip/internal/clip"
	"listclip/internal/config"
	"listclip/internal/logging"
	"listclip/internal/ui/headless/keyboard"
)

const runErrorExitCode = 1

func Run(rootCtx context.Context, buildVersion string, opts config.Options) {
	logger := logging.New(opts.Debug)
	// Stderr output would tear the alt-screen; events reach the log pane
	// through the subscriber instead.
	logger.SetTerminalOutputEnabled(false)
	logger.Info("starting listclip TUI", logging.Field("version", buildVersion))

	m := newHeadlessModel(rootCtx, buildVersion, opts, logger, clip.NewSystem())
	zone.NewGlobal()
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	result, runErr := program.Run()
	if model, ok := result.(*headlessModel); ok && model != nil {
		model.cleanup()
	}
	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(runErrorExitCode)
	}
}

func newHeadlessModel(rootCtx context.Context, buildVersion string, opts config.Options, logger *logging.Logger, writer clip.Writer) *headlessModel {
	if rootCtx == nil {
		rootCtx = context.Background()
	}
	runCtx, runCancel := context.WithCancel(rootCtx)

	input := textarea.New()
	input.Placeholder = "One item per line..."
	input.ShowLineNumbers = false
	input.Focus()

	m := &headlessModel{
		buildVersion: buildVersion,
		opts:         opts,
		logger:       logger,
		writer:       writer,
		rootCtx:      runCtx,
		rootCancel:   runCancel,
		logCh:        make(chan string, logChannelBufferSize),
		input:        input,
		logView:      viewport.New(0, minLogPanelHeight),
		help:         help.New(),
		keys:         keyboard.New(),
		status:       "Ready",
		kind:         statusReady,
	}

	m.unsubscribe = logger.Subscribe(func(event logging.Event) {
		line := logging.FormatEventANSI(event)
		select {
		case m.logCh <- line:
		default:
			select {
			case <-m.logCh:
			default:
			}
			m.logCh <- line
		}
	})

	return m
}

func (m *headlessModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		waitForLog(m.logCh),
	)
}

func waitForLog(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		line, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(line)
	}
}

func (m *headlessModel) cleanup() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
	if m.rootCancel != nil {
		m.rootCancel()
	}
}
