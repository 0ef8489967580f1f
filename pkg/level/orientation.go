package level

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Orientation is the way the block is resting on the floor.
type Orientation uint8

const (
	// Standing on its square end, covering one tile.
	Standing Orientation = iota
	// LyingZ is lying with its long side along z, covering two tiles.
	LyingZ
	// LyingX is lying with its long side along x, covering two tiles.
	LyingX
)

func (o Orientation) String() string {
	switch o {
	case Standing:
		return "oy"
	case LyingZ:
		return "oz"
	case LyingX:
		return "ox"
	default:
		return "unknown"
	}
}

// Axis selects the axis the block mesh is rotated about when drawn.
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
	AxisY
)

// Vector returns the unit vector of the axis
func (a Axis) Vector() mgl32.Vec3 {
	switch a {
	case AxisZ:
		return mgl32.Vec3{0, 0, 1}
	case AxisY:
		return mgl32.Vec3{0, 1, 0}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}

// Move is one discrete roll command.
type Move uint8

const (
	Up Move = iota
	Down
	Left
	Right
)

func (m Move) String() string {
	switch m {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
