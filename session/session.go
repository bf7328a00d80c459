// Package session drives the watch loop: schedule, run, diff, render, check.
package session

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/khooz/Watch-Cmd/config"
	"github.com/khooz/Watch-Cmd/diff"
	"github.com/khooz/Watch-Cmd/render"
	"github.com/khooz/Watch-Cmd/runner"
	"github.com/khooz/Watch-Cmd/snapshot"
)

// CommandRunner executes the watched command once per call.
type CommandRunner interface {
	Run() *runner.Result
}

// Notifier raises the audible alert for failed runs.
type Notifier interface {
	Alert()
}

// Session owns all loop state and sequences one cycle after another:
// Sleeping (scheduler wait) -> Running -> Rendering -> Checking. All state
// is confined to this single cooperative loop; nothing here needs locking.
type Session struct {
	cfg      *config.Config
	screen   tcell.Screen
	runner   CommandRunner
	renderer *render.Renderer
	sched    *Scheduler
	shots    *snapshot.Sink
	notify   Notifier

	state State
	scr   ScreenState

	// Last completed frame, kept for on-demand snapshots.
	lastHeader string
	lastSep    string
	lastLines  []string
}

// New wires a session from a validated configuration, an initialized screen
// and its event channel.
func New(cfg *config.Config, screen tcell.Screen, events <-chan tcell.Event, notify Notifier) *Session {
	s := &Session{
		cfg:    cfg,
		screen: screen,
		runner: &runner.Runner{Command: cfg.Command, ExecMode: cfg.ExecMode},
		renderer: &render.Renderer{
			Screen:  screen,
			Color:   cfg.ColorOn(),
			NoTitle: cfg.NoTitle,
			NoWrap:  cfg.NoWrap,
		},
		shots:  snapshot.New(cfg.ShotsDir),
		notify: notify,
	}
	s.scr.Width, s.scr.Height = screen.Size()
	s.sched = &Scheduler{
		Interval: cfg.Interval(),
		NoRerun:  cfg.NoRerun,
		Events:   events,
		OnSave:   s.saveSnapshot,
	}
	return s
}

// Run executes cycles until an exit condition fires and returns the process
// exit code: 0 for quit, change-exit and stability-exit; the failed
// command's own code (127 when it never launched) for error-exit.
func (s *Session) Run() int {
	for {
		if s.sched.Wait(s.state.LastRunAt, &s.scr) == wakeQuit {
			return 0
		}

		res := s.runner.Run()
		s.state.LastRunAt = res.StartedAt

		changed := !diff.Equal(res.Lines, s.state.PreviousLines)
		switch {
		case !s.state.ranBefore:
			// No prior cycle to be stable against; a silent command's
			// first empty output is not a repeat.
		case changed:
			s.state.StableCount = 0
		default:
			s.state.StableCount++
		}

		frame := s.buildFrame(res)
		s.renderer.Draw(frame)

		if s.cfg.Beep && res.ExitCode != 0 {
			s.notify.Alert()
		}

		if s.cfg.ChgExit && s.state.ranBefore && changed {
			return 0
		}
		if s.cfg.EquExitCycles > 0 && s.state.StableCount >= s.cfg.EquExitCycles {
			return 0
		}
		if s.cfg.ErrExit && res.ExitCode != 0 {
			frame.Prompt = "press any key to quit"
			s.renderer.Draw(frame)
			s.waitAnyKey()
			return res.ExitCode
		}

		s.state.PreviousLines = res.Lines
		s.state.ranBefore = true
	}
}

// buildFrame assembles header, separator and annotated body for one run and
// records them for snapshots.
func (s *Session) buildFrame(res *runner.Result) *render.Frame {
	header := fmt.Sprintf("Every %dms: %s    Exit: %d    %dms    %s",
		s.cfg.IntervalMs,
		strings.Join(s.cfg.Command, " "),
		res.ExitCode,
		res.ElapsedMs(),
		res.StartedAt.Format("2006-01-02 15:04:05"),
	)
	sep := strings.Repeat("-", utf8.RuneCountInString(header))

	var lines []diff.Line
	switch {
	case !s.cfg.ShowDiffs:
		lines = diff.Plain(res.Lines)
	case !s.state.ranBefore && !s.cfg.PermanentDiff:
		// Nothing to compare against yet.
		lines = diff.Plain(res.Lines)
	default:
		lines = diff.Compute(res.Lines, s.reference(res))
	}

	s.lastHeader = header
	s.lastSep = sep
	s.lastLines = res.Lines

	return &render.Frame{Header: header, Separator: sep, Lines: lines}
}

// reference picks the comparison snapshot: the fixed first-run baseline under
// permanent-diff, the previous run's output otherwise.
func (s *Session) reference(res *runner.Result) []string {
	if s.cfg.PermanentDiff {
		if !s.state.baselineSet {
			s.state.BaselineLines = res.Lines
			s.state.baselineSet = true
		}
		return s.state.BaselineLines
	}
	return s.state.PreviousLines
}

// saveSnapshot writes the current frame through the sink. Best-effort: a
// failed write must not take the session down, and there is no channel to
// report it on while the screen is active.
func (s *Session) saveSnapshot() {
	_, _ = s.shots.Save(s.lastHeader, s.lastSep, s.lastLines)
}

// waitAnyKey blocks until one key event arrives (resizes are ignored).
func (s *Session) waitAnyKey() {
	for ev := range s.sched.Events {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}

// Pump forwards screen events into a channel the scheduler can poll without
// blocking. The channel closes when the screen is finalized.
func Pump(screen tcell.Screen) <-chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}
