package session

import "github.com/gdamore/tcell/v2"

type keyAction int

const (
	keyNone keyAction = iota
	keyQuit
	keyRefresh
	keySave
)

// classifyKey maps a key event to a session action: q/Escape/Ctrl-C quit,
// r/Space force a refresh, s saves a snapshot.
func classifyKey(ev *tcell.EventKey) keyAction {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return keyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return keyQuit
		case 'r', 'R', ' ':
			return keyRefresh
		case 's', 'S':
			return keySave
		}
	}
	return keyNone
}
