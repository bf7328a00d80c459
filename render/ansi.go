package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// segment is a run of text carrying one foreground style, produced by
// splitting a raw output line on its embedded SGR sequences.
type segment struct {
	text  string
	style tcell.Style
}

// Strip removes every CSI escape sequence from s, leaving plain text.
func Strip(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			i = skipCSI(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// parseSGR splits s into styled segments, interpreting the basic SGR
// foreground codes (30-37, 90-97, 39, 0) against base. Every other escape
// sequence is dropped. The closed color table lives in colors.go.
func parseSGR(s string, base tcell.Style) []segment {
	if !strings.ContainsRune(s, 0x1b) {
		return []segment{{text: s, style: base}}
	}

	var segs []segment
	var b strings.Builder
	style := base
	i := 0
	flush := func() {
		if b.Len() > 0 {
			segs = append(segs, segment{text: b.String(), style: style})
			b.Reset()
		}
	}
	for i < len(s) {
		if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '[' {
			end := skipCSI(s, i)
			if end > i+2 && s[end-1] == 'm' {
				flush()
				style = applySGR(s[i+2:end-1], style, base)
			}
			i = end
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	flush()
	return segs
}

// applySGR folds one SGR parameter list into the current style.
func applySGR(params string, cur, base tcell.Style) tcell.Style {
	if params == "" {
		return base
	}
	for _, p := range strings.Split(params, ";") {
		switch {
		case p == "" || p == "0":
			cur = base
		case p == "39":
			cur = cur.Foreground(tcell.ColorDefault)
		default:
			if c, ok := sgrForeground[p]; ok {
				cur = cur.Foreground(c)
			}
		}
	}
	return cur
}

// skipCSI returns the index just past the CSI sequence starting at i
// (s[i] == ESC, s[i+1] == '['). Unterminated sequences consume to the end.
func skipCSI(s string, i int) int {
	j := i + 2
	for j < len(s) {
		c := s[j]
		j++
		if c >= 0x40 && c <= 0x7e {
			return j
		}
	}
	return j
}
