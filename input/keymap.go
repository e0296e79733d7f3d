package input

import "github.com/gdamore/tcell/v2"

// MapTcellKey translates a terminal key event into a logical game key
// Unbound keys map to KeyNone and are dropped by the key state
func MapTcellKey(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyEnter:
		return KeyConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return KeyShoot
		case 'a', 'h':
			return KeyLeft
		case 'd', 'l':
			return KeyRight
		case 'q':
			return KeyQuit
		}
	}
	return KeyNone
}
