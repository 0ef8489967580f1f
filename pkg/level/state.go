// Package level holds the rolling-block game state and the rules that decide
// when the block has left the bridge.
package level

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Fall parameters.
const (
	// FallStep is how far the block drops each frame once it has fallen off.
	FallStep = 0.5
	// KillDepth is the height below which a falling block ends the level.
	KillDepth = -10
)

// Cause records why the block fell.
type Cause uint8

const (
	CauseNone Cause = iota
	// CauseEdge means the block centre left the path.
	CauseEdge
	// CauseHole means the block stood up over the hole.
	CauseHole
	// CauseBreakable means the block stood up on a breakable tile.
	CauseBreakable
)

func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseEdge:
		return "edge"
	case CauseHole:
		return "hole"
	case CauseBreakable:
		return "breakable"
	default:
		return "unknown"
	}
}

// State is the mutable game state for one layout.
type State struct {
	Layout *Layout
	Block  Block
	Moves  int

	// Spin is +1 or -1 and flips on every right click. It sets the direction
	// the tower camera orbits in.
	Spin float32

	falling bool
	cause   Cause
	broken  Cell
	drop    float32
}

// NewState places the block on the layout's start cell.
func NewState(layout *Layout) *State {
	s := &State{Layout: layout, Spin: 1}
	s.Reset()
	return s
}

// Reset puts the block back on the start cell, standing, and clears the
// move counter and any fall in progress.
func (s *State) Reset() {
	start := s.Layout.Start.Center()
	s.Block = Block{
		Position:    mgl32.Vec3{start.X(), StandingHeight, start.Z()},
		Orientation: Standing,
		Rotation:    90,
		Axis:        AxisX,
	}
	s.Moves = 0
	s.falling = false
	s.cause = CauseNone
	s.broken = Cell{}
	s.drop = 0
}

// Apply rolls the block one step. Moves are ignored while falling. It reports
// whether the move was taken.
func (s *State) Apply(m Move) bool {
	if s.falling {
		return false
	}

	b := &s.Block
	switch m {
	case Up, Down:
		dz := float32(1)
		if m == Down {
			dz = -1
		}
		switch b.Orientation {
		case Standing:
			b.roll(0, dz*RollStep, LyingZ)
		case LyingZ:
			b.roll(0, dz*RollStep, Standing)
		case LyingX:
			b.slide(0, dz*SlideStep)
		}
	case Left, Right:
		dx := float32(1)
		if m == Right {
			dx = -1
		}
		switch b.Orientation {
		case Standing:
			b.roll(dx*RollStep, 0, LyingX)
		case LyingZ:
			b.slide(dx*SlideStep, 0)
		case LyingX:
			b.roll(dx*RollStep, 0, Standing)
		}
	default:
		return false
	}

	s.Moves++
	return true
}

// ToggleSpin flips the spin direction.
func (s *State) ToggleSpin() {
	s.Spin = -s.Spin
}

// Check evaluates the fall rules against the block's current position. It
// returns the cause if the block has just started to fall, and CauseNone
// otherwise, including when it was already falling.
func (s *State) Check() Cause {
	if s.falling {
		return CauseNone
	}

	cause, broken := s.evaluate()
	if cause == CauseNone {
		return CauseNone
	}

	s.falling = true
	s.cause = cause
	s.broken = broken
	return cause
}

func (s *State) evaluate() (Cause, Cell) {
	x, z := s.Block.Position.X(), s.Block.Position.Z()

	if s.Block.Orientation == Standing {
		if c, ok := CellAt(x, z); ok {
			if s.Layout.IsBreakable(c) {
				return CauseBreakable, c
			}
			if c == s.Layout.Hole {
				return CauseHole, Cell{}
			}
		}
	}

	for _, zone := range s.Layout.Zones {
		if zone.Contains(x, z) {
			return CauseEdge, Cell{}
		}
	}

	return CauseNone, Cell{}
}

// Step drops a falling block by one frame. The block is drawn upright while it
// falls. Step does nothing if the block is not falling.
func (s *State) Step() {
	if !s.falling {
		return
	}
	s.Block.Position[1] -= FallStep
	s.Block.Rotation = 90
	s.Block.Axis = AxisX
	s.drop += FallStep
}

// Falling reports whether the block has left the path.
func (s *State) Falling() bool {
	return s.falling
}

// Cause returns why the block fell, or CauseNone.
func (s *State) Cause() Cause {
	return s.cause
}

// Broken returns the breakable tile that gave way and how far it has dropped.
// ok is false unless the fall was caused by a breakable tile.
func (s *State) Broken() (cell Cell, drop float32, ok bool) {
	if s.cause != CauseBreakable {
		return Cell{}, 0, false
	}
	return s.broken, s.drop, true
}

// Over reports whether the block has fallen past the kill depth.
func (s *State) Over() bool {
	return s.falling && s.Block.Position.Y() < KillDepth
}
