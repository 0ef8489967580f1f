package level

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Block is the movable cuboid. Position is the centre of the mesh; the
// rotation turns the z-aligned mesh into the current resting pose.
type Block struct {
	Position    mgl32.Vec3
	Orientation Orientation
	Rotation    float32 // degrees, 0 or 90
	Axis        Axis
}

// Model returns the model matrix for drawing the block at pos.
func (b Block) Model(pos mgl32.Vec3) mgl32.Mat4 {
	translate := mgl32.Translate3D(pos.X(), pos.Y(), pos.Z())
	rotate := mgl32.HomogRotate3D(mgl32.DegToRad(b.Rotation), b.Axis.Vector())
	return translate.Mul4(rotate)
}

// roll tips the block over an edge onto a new face.
func (b *Block) roll(dx, dz float32, to Orientation) {
	b.Position[0] += dx
	b.Position[2] += dz
	b.Orientation = to

	switch to {
	case Standing:
		b.Position[1] = StandingHeight
		b.Rotation = 90
		b.Axis = AxisX
	case LyingZ:
		b.Position[1] = 0
		b.Rotation = 0
		b.Axis = AxisX
	case LyingX:
		b.Position[1] = 0
		b.Rotation = 90
		b.Axis = AxisY
	}
}

// slide moves the block sideways along its long edge without changing pose.
func (b *Block) slide(dx, dz float32) {
	b.Position[0] += dx
	b.Position[2] += dz
}
