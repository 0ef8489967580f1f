package render

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Key constants for keyboard input
const (
	KeyUp     = glfw.KeyUp
	KeyDown   = glfw.KeyDown
	KeyLeft   = glfw.KeyLeft
	KeyRight  = glfw.KeyRight
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeySpace  = glfw.KeySpace
	KeyEscape = glfw.KeyEscape
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Camera constants
const (
	// Projection
	DefaultFOV = math.Pi / 2
	NearPlane  = 0.1
	FarPlane   = 500.0

	// Tower camera orbit
	TowerRadius     = 5.0
	TowerHeight     = 3.0
	TowerStartAngle = 225.0 // degrees
	TowerOrbitSpeed = 90.0  // degrees per second
	TowerAngleWrap  = 720.0

	// Top camera height
	TopHeight = 7.0

	// Free-fly camera step per key release
	FreeMoveSpeed = 0.5
)

// Scene constants
var (
	ClearColor = mgl32.Vec4{0.3, 0.3, 0.3, 0.0}

	// Follow camera sits just in front of the block and looks further ahead.
	FollowEyeOffset    = mgl32.Vec3{0, 0, 0.5}
	FollowTargetOffset = mgl32.Vec3{0, 0, 1}

	// Behind camera trails the block along -z.
	BehindEyeOffset = mgl32.Vec3{0, 0, -2}

	FreeStartPosition = mgl32.Vec3{0, 0, 3}
	FreeStartFront    = mgl32.Vec3{0, 0, -1}
	WorldUp           = mgl32.Vec3{0, 1, 0}
)

// RollDuration is how long the block takes to ease into a new cell, in seconds.
const RollDuration = 0.12
