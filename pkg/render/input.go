package render

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-bridge/pkg/level"
)

// commandKind is what a key event asks the game to do.
type commandKind uint8

const (
	cmdNone commandKind = iota
	cmdMove
	cmdCycleView
	cmdFreeMove
	cmdQuit
)

type command struct {
	kind commandKind
	move level.Move
	free FreeMove
}

// commandFor maps a key event to a game command. Movement, view cycling and
// the free-fly camera act on release; Escape quits on press.
func commandFor(key glfw.Key, action glfw.Action) command {
	if action == Press {
		if key == KeyEscape {
			return command{kind: cmdQuit}
		}
		return command{}
	}
	if action != Release {
		return command{}
	}

	switch key {
	case KeyUp:
		return command{kind: cmdMove, move: level.Up}
	case KeyDown:
		return command{kind: cmdMove, move: level.Down}
	case KeyLeft:
		return command{kind: cmdMove, move: level.Left}
	case KeyRight:
		return command{kind: cmdMove, move: level.Right}
	case KeySpace:
		return command{kind: cmdCycleView}
	case KeyW:
		return command{kind: cmdFreeMove, free: FreeForward}
	case KeyS:
		return command{kind: cmdFreeMove, free: FreeBackward}
	case KeyA:
		return command{kind: cmdFreeMove, free: FreeLeft}
	case KeyD:
		return command{kind: cmdFreeMove, free: FreeRight}
	}
	return command{}
}

// isQuitChar reports whether a typed character closes the game.
func isQuitChar(char rune) bool {
	return char == 'q' || char == 'Q'
}
