package headless

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"

	"listclip/internal/clip"
	"listclip/internal/config"
	"listclip/internal/logging"
	"listclip/internal/ui/headless/keyboard"
)

const (
	logChannelBufferSize = 256
	logLineLimit         = 500
	minLogPanelHeight    = 4
	layoutReserveRows    = 14
)

type logMsg string

type copyResultMsg struct {
	count int
	err   error
}

type statusKind int

const (
	statusReady statusKind = iota
	statusCopied
	statusWarning
	statusError
)

type focusTarget int

const (
	focusInput focusTarget = iota
	focusCopyButton
	focusClearButton
)

const focusTargetCount = 3

type headlessModel struct {
	buildVersion string
	opts         config.Options
	logger       *logging.Logger
	writer       clip.Writer
	rootCtx      context.Context
	rootCancel   context.CancelFunc
	unsubscribe  func()

	logCh    chan string
	logLines []string

	input   textarea.Model
	logView viewport.Model
	help    help.Model
	keys    keyboard.Map

	focus    focusTarget
	hovered  focusTarget
	hasHover bool

	status   string
	kind     statusKind
	width    int
	height   int
	quitting bool
}
