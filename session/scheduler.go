package session

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// DefaultQuantum is the polling sleep used while waiting for the next
// deadline. Short enough that keys and resizes feel immediate.
const DefaultQuantum = 100 * time.Millisecond

type wake int

const (
	// wakeRun means the deadline elapsed or the user forced a rerun.
	wakeRun wake = iota
	// wakeQuit means the user asked to terminate.
	wakeQuit
)

// Scheduler owns the wall-clock deadline for the next run and performs an
// interruptible wait over the terminal event channel. It is the only place
// the loop suspends; each quantum is a checkpoint for quit, refresh, save
// and resize.
type Scheduler struct {
	Interval time.Duration
	NoRerun  bool
	Quantum  time.Duration

	Events <-chan tcell.Event

	// OnSave captures the current frame; wired by the session.
	OnSave func()
}

// Wait blocks until the next run is due. A zero lastRunAt returns
// immediately (first run), as does an already-overdue deadline: missed
// cycles are not caught up, lastRunAt stays the anchor.
func (s *Scheduler) Wait(lastRunAt time.Time, scr *ScreenState) wake {
	if lastRunAt.IsZero() {
		return wakeRun
	}

	quantum := s.Quantum
	if quantum <= 0 {
		quantum = DefaultQuantum
	}

	for {
		remaining := s.Interval - time.Since(lastRunAt)
		if remaining <= 0 {
			return wakeRun
		}

		if w, done := s.drainEvents(scr); done {
			return w
		}

		if remaining < quantum {
			time.Sleep(remaining)
		} else {
			time.Sleep(quantum)
		}
	}
}

// drainEvents consumes every currently pending event without blocking.
// The returned bool reports whether the wait should end now.
func (s *Scheduler) drainEvents(scr *ScreenState) (wake, bool) {
	for {
		select {
		case ev, ok := <-s.Events:
			if !ok {
				// Event pump gone: the screen was finalized.
				return wakeQuit, true
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				w, h := ev.Size()
				changed := w != scr.Width || h != scr.Height
				scr.Width, scr.Height = w, h
				if changed && !s.NoRerun {
					return wakeRun, true
				}
			case *tcell.EventKey:
				switch classifyKey(ev) {
				case keyQuit:
					return wakeQuit, true
				case keyRefresh:
					return wakeRun, true
				case keySave:
					if s.OnSave != nil {
						s.OnSave()
					}
				}
			}
		default:
			return wakeRun, false
		}
	}
}
