package presence

import "testing"

func TestCloseRequestedHidesToTray(t *testing.T) {
	tracker := New()
	if tracker.State() != Visible {
		t.Fatalf("initial state = %v, want Visible", tracker.State())
	}
	if !tracker.CloseRequested() {
		t.Fatal("CloseRequested() = false, want true")
	}
	if tracker.State() != HiddenToTray {
		t.Fatalf("state after close request = %v, want HiddenToTray", tracker.State())
	}
}

func TestRestoreReversesHide(t *testing.T) {
	tracker := New()
	tracker.CloseRequested()
	if !tracker.Restore() {
		t.Fatal("Restore() = false, want true")
	}
	if tracker.State() != Visible {
		t.Fatalf("state after restore = %v, want Visible", tracker.State())
	}
	if tracker.Restore() {
		t.Fatal("Restore() on visible window = true, want false")
	}
}

func TestExitIsTerminalFromEitherState(t *testing.T) {
	visible := New()
	if !visible.Exit() {
		t.Fatal("Exit() from Visible = false, want true")
	}
	if visible.State() != Exited {
		t.Fatalf("state = %v, want Exited", visible.State())
	}

	hidden := New()
	hidden.CloseRequested()
	if !hidden.Exit() {
		t.Fatal("Exit() from HiddenToTray = false, want true")
	}
	if hidden.State() != Exited {
		t.Fatalf("state = %v, want Exited", hidden.State())
	}

	if hidden.Exit() {
		t.Fatal("Exit() after exit = true, want false")
	}
	if hidden.CloseRequested() {
		t.Fatal("CloseRequested() after exit = true, want false")
	}
	if hidden.Restore() {
		t.Fatal("Restore() after exit = true, want false")
	}
}
