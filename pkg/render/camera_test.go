package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3InDelta(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, want[i], got[i], 1e-4, "component %d of %v", i, got)
	}
}

func TestViewModeNext(t *testing.T) {
	v := Tower
	seen := []ViewMode{v}
	for range 5 {
		v = v.Next()
		seen = append(seen, v)
	}
	assert.Equal(t, []ViewMode{Tower, Follow, Top, Behind, Free, Tower}, seen)
	assert.Equal(t, "behind", Behind.String())
}

func TestTowerEye(t *testing.T) {
	c := NewCamera(700, 700)
	assert.Equal(t, float32(TowerStartAngle), c.Angle())

	d := float32(5 * math.Cos(math.Pi/4))
	assertVec3InDelta(t, mgl32.Vec3{-d, 3, -d}, c.TowerEye())
}

func TestAdvanceWraps(t *testing.T) {
	c := NewCamera(700, 700)

	c.Advance(1, 1)
	assert.InDelta(t, 315, c.Angle(), 1e-4)

	c.Advance(5, 1) // 315 + 450 = 765
	assert.InDelta(t, 45, c.Angle(), 1e-4)

	c.Advance(10, -1) // 45 - 900 = -855
	assert.InDelta(t, -135, c.Angle(), 1e-4)
}

func TestMoveFree(t *testing.T) {
	tests := []struct {
		move FreeMove
		want mgl32.Vec3
	}{
		{FreeForward, mgl32.Vec3{0, 0, 2.5}},
		{FreeBackward, mgl32.Vec3{0, 0, 3.5}},
		{FreeLeft, mgl32.Vec3{-0.5, 0, 3}},
		{FreeRight, mgl32.Vec3{0.5, 0, 3}},
	}

	for _, tt := range tests {
		c := NewCamera(700, 700)
		c.MoveFree(tt.move)
		assertVec3InDelta(t, tt.want, c.Position())
	}
}

func TestViewMatrix(t *testing.T) {
	c := NewCamera(700, 700)
	block := mgl32.Vec3{1, 0.25, -1}

	tests := []struct {
		mode ViewMode
		want mgl32.Mat4
	}{
		{Tower, mgl32.LookAtV(c.TowerEye(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})},
		{Follow, mgl32.LookAtV(mgl32.Vec3{1, 0.25, -0.5}, mgl32.Vec3{1, 0.25, 0}, mgl32.Vec3{0, 1, 0})},
		{Top, mgl32.LookAtV(mgl32.Vec3{0, 7, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})},
		{Behind, mgl32.LookAtV(mgl32.Vec3{1, 0.25, -3}, block, mgl32.Vec3{0, 1, 0})},
		{Free, mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{0, 0, 2}, mgl32.Vec3{0, 1, 0})},
		{viewModeCount, mgl32.Ident4()},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.True(t, tt.want.ApproxEqual(c.ViewMatrix(tt.mode, block)))
		})
	}
}

// The block must land in front of the top camera, inside the clip volume.
func TestTopViewSeesOrigin(t *testing.T) {
	c := NewCamera(700, 700)
	mvp := c.ProjectionMatrix().Mul4(c.ViewMatrix(Top, mgl32.Vec3{}))
	clip := mvp.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())

	assert.InDelta(t, 0, ndc.X(), 1e-4)
	assert.InDelta(t, 0, ndc.Y(), 1e-4)
	assert.Greater(t, ndc.Z(), float32(-1))
	assert.Less(t, ndc.Z(), float32(1))
}

func TestUpdateProjectionMatrix(t *testing.T) {
	c := NewCamera(700, 700)
	square := c.ProjectionMatrix()
	assert.True(t, square.ApproxEqual(mgl32.Perspective(math.Pi/2, 1, 0.1, 500)))

	c.UpdateProjectionMatrix(0, 0)
	assert.Equal(t, square, c.ProjectionMatrix())

	c.UpdateProjectionMatrix(1400, 700)
	assert.True(t, c.ProjectionMatrix().ApproxEqual(mgl32.Perspective(math.Pi/2, 2, 0.1, 500)))
}
