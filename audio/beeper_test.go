package audio

import "testing"

// TestAlertFallsBack verifies the bell fallback fires when no audio device is
// available. Speaker-backed playback needs real hardware and is not covered
// here.
func TestAlertFallsBack(t *testing.T) {
	rang := false
	b := &Beeper{fallback: func() { rang = true }}

	b.Alert()

	if !rang {
		t.Error("expected fallback bell without an initialized speaker")
	}
}

// TestAlertWrapsTerminalBell exercises the wiring shape used by the command
// layer: the terminal bell returns an error, so it is adapted into the
// fallback with a discarding closure.
func TestAlertWrapsTerminalBell(t *testing.T) {
	rang := false
	bell := func() error {
		rang = true
		return nil
	}
	b := &Beeper{fallback: func() { _ = bell() }}

	b.Alert()

	if !rang {
		t.Error("expected the wrapped bell to ring")
	}
}

func TestAlertNilFallback(t *testing.T) {
	b := &Beeper{}
	// Must not panic.
	b.Alert()
	b.Close()
}
