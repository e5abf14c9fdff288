// Package presence tracks whether the main window is shown, hidden to the
// system tray, or exited.
package presence

type State int

const (
	Visible State = iota
	HiddenToTray
	Exited
)

func (s State) String() string {
	switch s {
	case Visible:
		return "visible"
	case HiddenToTray:
		return "hidden-to-tray"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// Tracker is a single-window visibility state machine. It is not safe for
// concurrent use; all transitions happen on the UI thread.
type Tracker struct {
	state State
}

// New returns a tracker in the Visible state.
func New() *Tracker {
	return &Tracker{state: Visible}
}

func (t *Tracker) State() State {
	return t.state
}

// CloseRequested converts a window close request into a hide-to-tray
// transition. It reports whether the window should be hidden; once the
// tracker has exited nothing moves it back.
func (t *Tracker) CloseRequested() bool {
	if t.state != Visible {
		return false
	}
	t.state = HiddenToTray
	return true
}

// Restore brings a tray-hidden window back. Restoring a visible window is a
// no-op; restoring after exit is ignored.
func (t *Tracker) Restore() bool {
	if t.state != HiddenToTray {
		return false
	}
	t.state = Visible
	return true
}

// Exit moves the tracker to its terminal state from either live state.
func (t *Tracker) Exit() bool {
	if t.state == Exited {
		return false
	}
	t.state = Exited
	return true
}
