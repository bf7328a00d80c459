// Package render draws full-screen frames of command output onto a tcell
// screen.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/khooz/Watch-Cmd/diff"
)

// Frame is one complete screen's worth of content.
type Frame struct {
	Header    string
	Separator string
	Lines     []diff.Line

	// Prompt, when non-empty, is drawn after the body (used for the
	// error-exit "press any key" message).
	Prompt string
}

// Renderer writes frames to a screen. A frame always starts from a cleared
// screen and cursor origin, so nothing from a previous, longer frame can
// survive.
type Renderer struct {
	Screen  tcell.Screen
	Color   bool
	NoTitle bool
	NoWrap  bool
}

// Draw renders f and flushes it to the terminal.
func (r *Renderer) Draw(f *Frame) {
	r.Screen.Clear()
	width, height := r.Screen.Size()

	y := 0
	chrome := styleDefault
	if r.Color {
		chrome = styleHeader
	}

	if !r.NoTitle {
		y = r.drawSegments(y, width, height, []segment{{text: f.Header, style: chrome}})
		y = r.drawSegments(y, width, height, []segment{{text: f.Separator, style: chrome}})
	}

	for _, line := range f.Lines {
		if y >= height {
			break
		}
		y = r.drawSegments(y, width, height, r.lineSegments(line))
	}

	if f.Prompt != "" && y < height {
		r.drawSegments(y, width, height, []segment{{text: f.Prompt, style: styleDefault}})
	}

	r.Screen.Show()
}

// lineSegments converts one annotated output line into styled segments,
// applying the tag prefix and either stripping or interpreting embedded
// escape sequences.
func (r *Renderer) lineSegments(line diff.Line) []segment {
	base := styleDefault
	prefix := ""
	switch line.Tag {
	case diff.Added:
		prefix = "+ "
		if r.Color {
			base = styleAdded
		}
	case diff.Removed:
		prefix = "- "
		if r.Color {
			base = styleRemoved
		}
	}

	var segs []segment
	if prefix != "" {
		segs = append(segs, segment{text: prefix, style: base})
	}
	if r.Color {
		segs = append(segs, parseSGR(line.Text, base)...)
	} else {
		segs = append(segs, segment{text: Strip(line.Text), style: base})
	}
	return segs
}

// drawSegments writes one logical line starting at row y and returns the next
// free row. Long lines wrap onto following rows unless NoWrap is set, in
// which case they are cut at the screen width.
func (r *Renderer) drawSegments(y, width, height int, segs []segment) int {
	if width <= 0 || y >= height {
		return y + 1
	}

	x := 0
	for _, seg := range segs {
		for _, ch := range seg.text {
			if x >= width {
				if r.NoWrap {
					return y + 1
				}
				x = 0
				y++
				if y >= height {
					return y
				}
			}
			r.Screen.SetContent(x, y, ch, nil, seg.style)
			x++
		}
	}
	return y + 1
}
