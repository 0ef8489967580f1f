package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FreeMove is a free-fly camera step direction.
type FreeMove uint8

const (
	FreeForward FreeMove = iota
	FreeBackward
	FreeLeft
	FreeRight
)

// Camera holds the state behind all five view modes and the shared
// perspective projection.
type Camera struct {
	// Tower orbit angle in degrees
	angle float32

	// Free-fly camera
	position mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	speed    float32

	// Projection
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera with the start-of-level defaults
func NewCamera(width, height int) *Camera {
	c := &Camera{
		angle:    TowerStartAngle,
		position: FreeStartPosition,
		front:    FreeStartFront,
		up:       WorldUp,
		speed:    FreeMoveSpeed,
	}
	c.UpdateProjectionMatrix(width, height)
	return c
}

// UpdateProjectionMatrix updates the projection matrix with new framebuffer
// dimensions. A zero-sized framebuffer (minimised window) keeps the old one.
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width = width
	c.height = height
	aspect := float32(width) / float32(height)
	c.projection = mgl32.Perspective(DefaultFOV, aspect, NearPlane, FarPlane)
}

// ProjectionMatrix returns the current projection matrix
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Angle returns the tower orbit angle in degrees.
func (c *Camera) Angle() float32 {
	return c.angle
}

// Advance orbits the tower camera by dt seconds in direction dir (+1 or -1).
func (c *Camera) Advance(dt, dir float32) {
	c.angle += TowerOrbitSpeed * dt * dir
	for c.angle > TowerAngleWrap {
		c.angle -= TowerAngleWrap
	}
	for c.angle < -TowerAngleWrap {
		c.angle += TowerAngleWrap
	}
}

// TowerEye returns the orbiting eye position.
func (c *Camera) TowerEye() mgl32.Vec3 {
	rad := float64(mgl32.DegToRad(c.angle))
	return mgl32.Vec3{
		float32(TowerRadius * math.Cos(rad)),
		TowerHeight,
		float32(TowerRadius * math.Sin(rad)),
	}
}

// Position returns the free-fly camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// MoveFree steps the free-fly camera.
func (c *Camera) MoveFree(m FreeMove) {
	right := c.front.Cross(c.up).Normalize()
	switch m {
	case FreeForward:
		c.position = c.position.Add(c.front.Mul(c.speed))
	case FreeBackward:
		c.position = c.position.Sub(c.front.Mul(c.speed))
	case FreeLeft:
		c.position = c.position.Sub(right.Mul(c.speed))
	case FreeRight:
		c.position = c.position.Add(right.Mul(c.speed))
	}
}

// ViewMatrix returns the view matrix for mode. block is the block position
// the follow and behind cameras track.
func (c *Camera) ViewMatrix(mode ViewMode, block mgl32.Vec3) mgl32.Mat4 {
	switch mode {
	case Tower:
		return mgl32.LookAtV(c.TowerEye(), mgl32.Vec3{}, WorldUp)
	case Follow:
		return mgl32.LookAtV(block.Add(FollowEyeOffset), block.Add(FollowTargetOffset), WorldUp)
	case Top:
		return mgl32.LookAtV(mgl32.Vec3{0, TopHeight, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	case Behind:
		return mgl32.LookAtV(block.Add(BehindEyeOffset), block, WorldUp)
	case Free:
		return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
	default:
		return mgl32.Ident4()
	}
}
