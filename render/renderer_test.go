package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/khooz/Watch-Cmd/diff"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(width, height)
	return screen
}

// rowString reads one row of the simulation screen as trimmed text.
func rowString(screen tcell.SimulationScreen, y int) string {
	width, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDrawHeaderAndBody(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := &Renderer{Screen: screen, Color: true}

	r.Draw(&Frame{
		Header:    "Every 1000ms: echo hi    Exit: 0",
		Separator: "--------------------------------",
		Lines:     diff.Plain([]string{"hi"}),
	})

	if got := rowString(screen, 0); !strings.Contains(got, "Every 1000ms:") {
		t.Errorf("header row missing interval: %q", got)
	}
	if got := rowString(screen, 0); !strings.Contains(got, "Exit: 0") {
		t.Errorf("header row missing exit code: %q", got)
	}
	if got := rowString(screen, 1); !strings.HasPrefix(got, "---") {
		t.Errorf("separator row: %q", got)
	}
	if got := rowString(screen, 2); got != "hi" {
		t.Errorf("body row: expected %q, got %q", "hi", got)
	}
}

func TestDrawNoTitle(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := &Renderer{Screen: screen, NoTitle: true}

	r.Draw(&Frame{
		Header:    "Every 1000ms: true    Exit: 0",
		Separator: "----",
		Lines:     diff.Plain([]string{"body"}),
	})

	if got := rowString(screen, 0); got != "body" {
		t.Errorf("expected body on first row with titles suppressed, got %q", got)
	}
}

func TestDrawNoWrapTruncates(t *testing.T) {
	screen := newTestScreen(t, 10, 24)
	r := &Renderer{Screen: screen, NoTitle: true, NoWrap: true}

	r.Draw(&Frame{Lines: diff.Plain([]string{"abcdefghijk"})})

	if got := rowString(screen, 0); got != "abcdefghij" {
		t.Errorf("expected truncation to 10 chars, got %q", got)
	}
	if got := rowString(screen, 1); got != "" {
		t.Errorf("expected no wrapped continuation, got %q", got)
	}
}

func TestDrawWrapContinues(t *testing.T) {
	screen := newTestScreen(t, 10, 24)
	r := &Renderer{Screen: screen, NoTitle: true}

	r.Draw(&Frame{Lines: diff.Plain([]string{"abcdefghijk", "next"})})

	if got := rowString(screen, 0); got != "abcdefghij" {
		t.Errorf("first wrapped row: %q", got)
	}
	if got := rowString(screen, 1); got != "k" {
		t.Errorf("second wrapped row: expected %q, got %q", "k", got)
	}
	if got := rowString(screen, 2); got != "next" {
		t.Errorf("following line should start on a fresh row, got %q", got)
	}
}

func TestDrawDiffPrefixes(t *testing.T) {
	screen := newTestScreen(t, 40, 24)
	r := &Renderer{Screen: screen, Color: true, NoTitle: true}

	r.Draw(&Frame{Lines: []diff.Line{
		{Text: "kept", Tag: diff.Unchanged},
		{Text: "gone", Tag: diff.Removed},
		{Text: "new", Tag: diff.Added},
	}})

	if got := rowString(screen, 0); got != "kept" {
		t.Errorf("unchanged line: %q", got)
	}
	if got := rowString(screen, 1); got != "- gone" {
		t.Errorf("removed line: %q", got)
	}
	if got := rowString(screen, 2); got != "+ new" {
		t.Errorf("added line: %q", got)
	}

	// Tag colors only apply when color is on.
	_, _, style, _ := screen.GetContent(0, 2)
	fg, _, _ := style.Decompose()
	if fg != tcell.ColorGreen {
		t.Errorf("added line should be green, got %v", fg)
	}
}

func TestDrawColorDisabledStripsEscapes(t *testing.T) {
	screen := newTestScreen(t, 40, 24)
	r := &Renderer{Screen: screen, NoTitle: true}

	r.Draw(&Frame{Lines: diff.Plain([]string{"\x1b[31mred\x1b[0m text"})})

	if got := rowString(screen, 0); got != "red text" {
		t.Errorf("expected escapes stripped, got %q", got)
	}
}

func TestDrawColorEnabledMapsSGR(t *testing.T) {
	screen := newTestScreen(t, 40, 24)
	r := &Renderer{Screen: screen, Color: true, NoTitle: true}

	r.Draw(&Frame{Lines: diff.Plain([]string{"\x1b[32mok\x1b[0m"})})

	if got := rowString(screen, 0); got != "ok" {
		t.Errorf("expected escape bytes consumed, got %q", got)
	}
	_, _, style, _ := screen.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	if fg != tcell.ColorGreen {
		t.Errorf("expected SGR 32 mapped to green, got %v", fg)
	}
}

func TestDrawPrompt(t *testing.T) {
	screen := newTestScreen(t, 40, 24)
	r := &Renderer{Screen: screen, NoTitle: true}

	r.Draw(&Frame{
		Lines:  diff.Plain([]string{"failed"}),
		Prompt: "press any key to quit",
	})

	if got := rowString(screen, 1); got != "press any key to quit" {
		t.Errorf("prompt row: %q", got)
	}
}

func TestStrip(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"\x1b[1;31mbold red\x1b[0m", "bold red"},
		{"a\x1b[2Jb", "ab"},
		{"tail\x1b[", "tail"},
	}
	for _, c := range cases {
		if got := Strip(c.in); got != c.want {
			t.Errorf("Strip(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
