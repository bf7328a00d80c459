// Package config holds the immutable per-session run configuration.
package config

import (
	"fmt"
	"time"
)

const (
	// MinIntervalMs is the smallest accepted refresh interval.
	MinIntervalMs = 100
	// MaxIntervalMs caps the interval at 31 days.
	MaxIntervalMs = 2_678_400_000
)

// Config describes one watch session. It is populated by the command-line
// layer, validated once, and never mutated afterwards.
type Config struct {
	IntervalMs int64

	Beep          bool
	ColorEnabled  bool
	ColorDisabled bool
	ShowDiffs     bool
	PermanentDiff bool
	ErrExit       bool
	ChgExit       bool
	NoRerun       bool
	NoTitle       bool
	NoWrap        bool
	ExecMode      bool

	// EquExitCycles is the stability-exit threshold; 0 means disabled.
	EquExitCycles int

	// ShotsDir is where snapshot files are written; empty disables saving.
	ShotsDir string

	// Command is the argv to run each cycle. Never empty after Validate.
	Command []string
}

// ClampInterval forces ms into the accepted interval range.
func ClampInterval(ms int64) int64 {
	if ms < MinIntervalMs {
		return MinIntervalMs
	}
	if ms > MaxIntervalMs {
		return MaxIntervalMs
	}
	return ms
}

// Interval returns the refresh interval as a duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// ColorOn reports whether the session renders with color. Color is on by
// default; an explicit disable wins over an explicit enable.
func (c *Config) ColorOn() bool {
	return !c.ColorDisabled
}

// Validate checks the fields the command-line layer cannot express as flag
// constraints.
func (c *Config) Validate() error {
	if len(c.Command) == 0 {
		return fmt.Errorf("config: no command given")
	}
	if c.IntervalMs < MinIntervalMs || c.IntervalMs > MaxIntervalMs {
		return fmt.Errorf("config: interval %dms outside [%d, %d]", c.IntervalMs, MinIntervalMs, MaxIntervalMs)
	}
	if c.EquExitCycles < 0 {
		return fmt.Errorf("config: equ-exit cycles must be positive, got %d", c.EquExitCycles)
	}
	return nil
}
