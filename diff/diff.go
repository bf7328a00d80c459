// Package diff computes line-level deltas between command outputs.
package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// Tag classifies a rendered line relative to the reference output.
type Tag int

const (
	Unchanged Tag = iota
	Added
	Removed
)

// Line is one output line annotated with its diff classification.
type Line struct {
	Text string
	Tag  Tag
}

// Plain wraps raw output lines as an untagged sequence, for when diffing is
// disabled.
func Plain(lines []string) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = Line{Text: l, Tag: Unchanged}
	}
	return out
}

// Compute aligns current against reference as ordered sequences and returns
// the annotated result: reference-only lines are Removed, current-only lines
// are Added, aligned lines are Unchanged. Repeated identical lines are matched
// positionally, not as a set.
func Compute(current, reference []string) []Line {
	m := difflib.NewMatcher(reference, current)

	var out []Line
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			for _, l := range current[op.J1:op.J2] {
				out = append(out, Line{Text: l, Tag: Unchanged})
			}
		case 'd':
			for _, l := range reference[op.I1:op.I2] {
				out = append(out, Line{Text: l, Tag: Removed})
			}
		case 'i':
			for _, l := range current[op.J1:op.J2] {
				out = append(out, Line{Text: l, Tag: Added})
			}
		case 'r':
			for _, l := range reference[op.I1:op.I2] {
				out = append(out, Line{Text: l, Tag: Removed})
			}
			for _, l := range current[op.J1:op.J2] {
				out = append(out, Line{Text: l, Tag: Added})
			}
		}
	}
	return out
}

// Equal reports whether two outputs are byte-for-byte identical, line by line.
func Equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
