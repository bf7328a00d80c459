package snapshot

import (
	"os"
	"testing"
	"time"
)

func TestSaveWritesFrame(t *testing.T) {
	dir := t.TempDir()
	sink := New(dir)

	path, err := sink.Save("Every 1000ms: echo hi    Exit: 0", "----", []string{"hi"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "Every 1000ms: echo hi    Exit: 0\n----\nhi\n"
	if string(data) != want {
		t.Errorf("expected %q, got %q", want, string(data))
	}
}

func TestSaveStripsEscapes(t *testing.T) {
	sink := New(t.TempDir())

	path, err := sink.Save("header", "-", []string{"\x1b[31mred\x1b[0m"})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "header\n-\nred\n" {
		t.Errorf("escapes should not reach disk, got %q", string(data))
	}
}

func TestSaveCollisionSuffix(t *testing.T) {
	sink := New(t.TempDir())
	fixed := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	sink.now = func() time.Time { return fixed }

	first, err := sink.Save("h", "-", nil)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}
	second, err := sink.Save("h", "-", nil)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}

	if first == second {
		t.Fatalf("same-second saves collided: %s", first)
	}
}

func TestSaveNoDirIsNoop(t *testing.T) {
	sink := New("")

	path, err := sink.Save("h", "-", []string{"x"})
	if err != nil {
		t.Fatalf("noop save errored: %v", err)
	}
	if path != "" {
		t.Errorf("expected empty path, got %q", path)
	}
}
