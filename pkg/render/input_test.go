package render

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-bridge/pkg/level"
	"github.com/stretchr/testify/assert"
)

func TestCommandFor(t *testing.T) {
	tests := []struct {
		name   string
		key    glfw.Key
		action glfw.Action
		want   command
	}{
		{"up", KeyUp, Release, command{kind: cmdMove, move: level.Up}},
		{"down", KeyDown, Release, command{kind: cmdMove, move: level.Down}},
		{"left", KeyLeft, Release, command{kind: cmdMove, move: level.Left}},
		{"right", KeyRight, Release, command{kind: cmdMove, move: level.Right}},
		{"space", KeySpace, Release, command{kind: cmdCycleView}},
		{"w", KeyW, Release, command{kind: cmdFreeMove, free: FreeForward}},
		{"s", KeyS, Release, command{kind: cmdFreeMove, free: FreeBackward}},
		{"a", KeyA, Release, command{kind: cmdFreeMove, free: FreeLeft}},
		{"d", KeyD, Release, command{kind: cmdFreeMove, free: FreeRight}},
		{"escape press", KeyEscape, Press, command{kind: cmdQuit}},

		{"arrow press is ignored", KeyUp, Press, command{}},
		{"arrow repeat is ignored", KeyUp, Repeat, command{}},
		{"escape release is ignored", KeyEscape, Release, command{}},
		{"unbound key", glfw.KeyF1, Release, command{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commandFor(tt.key, tt.action))
		})
	}
}

func TestIsQuitChar(t *testing.T) {
	assert.True(t, isQuitChar('q'))
	assert.True(t, isQuitChar('Q'))
	assert.False(t, isQuitChar('w'))
}
