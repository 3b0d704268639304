package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"smooth-snake/input"
)

var runeBindings = map[rune]input.Command{
	'w': input.Move(input.UP),
	'd': input.Move(input.RIGHT),
	's': input.Move(input.DOWN),
	'a': input.Move(input.LEFT),
	'p': {Action: input.ActionTogglePause},
	' ': {Action: input.ActionTogglePause},
	'm': {Action: input.ActionToggleSmooth},
	'r': {Action: input.ActionRestart},
	'g': {Action: input.ActionGrow},
	'q': {Action: input.ActionQuit},
}

// KeyCommand decodes a key event, ok is false for unbound keys
func KeyCommand(ev *tcell.EventKey) (input.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.Move(input.UP), true
	case tcell.KeyRight:
		return input.Move(input.RIGHT), true
	case tcell.KeyDown:
		return input.Move(input.DOWN), true
	case tcell.KeyLeft:
		return input.Move(input.LEFT), true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Command{Action: input.ActionQuit}, true
	case tcell.KeyRune:
		cmd, ok := runeBindings[unicode.ToLower(ev.Rune())]
		return cmd, ok
	}
	return input.Command{}, false
}
