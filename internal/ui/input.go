package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeoncrawl/internal/game"
)

// Command is what a key press asks the session to do.
type Command int

const (
	CommandNone Command = iota
	CommandIntent
	CommandQuit
)

// keyToCommand maps a key event to a session command and, for CommandIntent,
// the intent to forward to the engine. Unmapped keys yield CommandNone.
func keyToCommand(ev *tcell.EventKey) (Command, game.Intent) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit, game.IntentNone
	case tcell.KeyUp:
		return CommandIntent, game.IntentUp
	case tcell.KeyDown:
		return CommandIntent, game.IntentDown
	case tcell.KeyLeft:
		return CommandIntent, game.IntentLeft
	case tcell.KeyRight:
		return CommandIntent, game.IntentRight
	case tcell.KeyRune:
	default:
		return CommandNone, game.IntentNone
	}

	switch ev.Rune() {
	case 'w', 'W':
		return CommandIntent, game.IntentUp
	case 's', 'S':
		return CommandIntent, game.IntentDown
	case 'a', 'A':
		return CommandIntent, game.IntentLeft
	case 'd', 'D':
		return CommandIntent, game.IntentRight
	case ' ':
		return CommandIntent, game.IntentAttack
	case 'q', 'Q':
		return CommandQuit, game.IntentNone
	}
	return CommandNone, game.IntentNone
}
