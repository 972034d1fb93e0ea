package ui

import (
	"fyne.io/fyne/v2"
)

// Action enumerates the playback and navigation commands a key press can
// trigger. The mapping is a pure table so it stays independent of how the
// toolkit delivers key events.
type Action int

const (
	ActionNone Action = iota
	ActionTogglePlay
	ActionStepBackward
	ActionStepForward
	ActionSeekFirst
	ActionSeekLast
	ActionPrevCharacter
	ActionNextCharacter
	ActionPrevAnimation
	ActionNextAnimation
	ActionFPSUp
	ActionFPSDown
	ActionQuit
)

// String returns a short name for the action, used in logs
func (a Action) String() string {
	switch a {
	case ActionTogglePlay:
		return "toggle-play"
	case ActionStepBackward:
		return "step-backward"
	case ActionStepForward:
		return "step-forward"
	case ActionSeekFirst:
		return "seek-first"
	case ActionSeekLast:
		return "seek-last"
	case ActionPrevCharacter:
		return "prev-character"
	case ActionNextCharacter:
		return "next-character"
	case ActionPrevAnimation:
		return "prev-animation"
	case ActionNextAnimation:
		return "next-animation"
	case ActionFPSUp:
		return "fps-up"
	case ActionFPSDown:
		return "fps-down"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// ActionForKey maps a named (non-printable) key to an action
func ActionForKey(name fyne.KeyName) Action {
	switch name {
	case fyne.KeySpace:
		return ActionTogglePlay
	case fyne.KeyLeft:
		return ActionStepBackward
	case fyne.KeyRight:
		return ActionStepForward
	case fyne.KeyHome:
		return ActionSeekFirst
	case fyne.KeyEnd:
		return ActionSeekLast
	case fyne.KeyUp:
		return ActionFPSUp
	case fyne.KeyDown:
		return ActionFPSDown
	case fyne.KeyEscape:
		return ActionQuit
	default:
		return ActionNone
	}
}

// ActionForRune maps a typed character to an action. Both cases are accepted
// so the bindings work with caps lock on. Space is deliberately absent: the
// canvas reports it as a named key and a rune, and mapping both would toggle
// playback twice per press.
func ActionForRune(r rune) Action {
	switch r {
	case 'p', 'P':
		return ActionTogglePlay
	case 'w', 'W':
		return ActionPrevCharacter
	case 's', 'S':
		return ActionNextCharacter
	case 'a', 'A':
		return ActionPrevAnimation
	case 'd', 'D':
		return ActionNextAnimation
	case 'q', 'Q':
		return ActionQuit
	default:
		return ActionNone
	}
}
