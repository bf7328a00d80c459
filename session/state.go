package session

import "time"

// ScreenState is the last observed terminal geometry. The scheduler updates
// it from resize events; the renderer reads the live size itself, so this
// exists to detect changes between polls.
type ScreenState struct {
	Width  int
	Height int
}

// State is the long-lived loop state, owned exclusively by the session and
// discarded on any exit path.
type State struct {
	// PreviousLines is the output of the prior run; nil before the first.
	PreviousLines []string

	// BaselineLines is fixed on the first run under permanent-diff mode
	// and never overwritten.
	BaselineLines []string
	baselineSet   bool

	// StableCount is the number of consecutive runs whose output was
	// byte-identical to PreviousLines.
	StableCount int

	// LastRunAt anchors the next deadline; zero means no run has happened
	// and the first one fires immediately.
	LastRunAt time.Time

	ranBefore bool
}
