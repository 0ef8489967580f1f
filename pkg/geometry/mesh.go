// Package geometry holds the static vertex and colour data for the block
// and the floor tiles. Nothing here touches OpenGL.
package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a non-indexed triangle list. Positions and Colors are flat xyz and
// rgb streams of equal length.
type Mesh struct {
	Positions []float32
	Colors    []float32
}

// VertexCount returns the number of vertices in the mesh
func (m Mesh) VertexCount() int {
	return len(m.Positions) / 3
}

// Validate checks that the two streams describe the same whole vertices.
func (m Mesh) Validate() error {
	if len(m.Positions)%3 != 0 {
		return fmt.Errorf("positions: length %d is not a multiple of 3", len(m.Positions))
	}
	if len(m.Colors) != len(m.Positions) {
		return fmt.Errorf("colors: length %d, want %d", len(m.Colors), len(m.Positions))
	}
	return nil
}

// Solid returns a colour stream painting n vertices with one colour.
func Solid(n int, rgb mgl32.Vec3) []float32 {
	colors := make([]float32, 0, 3*n)
	for range n {
		colors = append(colors, rgb[0], rgb[1], rgb[2])
	}
	return colors
}

// BlockColor is the colour of the movable block.
var BlockColor = mgl32.Vec3{1.0, 0.643, 0.0}

// BlockHalfExtents are the half sizes of the block along x, y and z when it
// lies along the z axis with no rotation applied.
var BlockHalfExtents = mgl32.Vec3{0.25, 0.25, 0.5}

// TileHalfSize is half the edge length of a floor tile.
const TileHalfSize = 0.25

// TileY is the height of the floor plane in tile-local space.
const TileY = -0.25

// Cuboid returns the 12 triangles of the block.
func Cuboid() Mesh {
	x, y, z := BlockHalfExtents[0], BlockHalfExtents[1], BlockHalfExtents[2]

	positions := []float32{
		// +z
		-x, y, z, -x, -y, z, x, -y, z,
		-x, y, z, x, -y, z, x, y, z,
		// +x
		x, y, z, x, -y, z, x, -y, -z,
		x, y, z, x, -y, -z, x, y, -z,
		// -z
		x, y, -z, x, -y, -z, -x, -y, -z,
		x, y, -z, -x, -y, -z, -x, y, -z,
		// -x
		-x, y, -z, -x, -y, -z, -x, -y, z,
		-x, y, -z, -x, -y, z, -x, y, z,
		// +y
		-x, y, -z, -x, y, z, x, y, z,
		-x, y, -z, x, y, z, x, y, -z,
		// -y
		-x, -y, z, -x, -y, -z, x, -y, -z,
		-x, -y, z, x, -y, -z, x, -y, z,
	}

	return Mesh{
		Positions: positions,
		Colors:    Solid(len(positions)/3, BlockColor),
	}
}

func floorSquare() []float32 {
	h := float32(TileHalfSize)
	return []float32{
		-h, TileY, h,
		h, TileY, h,
		-h, TileY, -h,
		-h, TileY, -h,
		h, TileY, h,
		h, TileY, -h,
	}
}

// Tile returns a normal floor tile shaded in greys.
func Tile() Mesh {
	return Mesh{
		Positions: floorSquare(),
		Colors: []float32{
			0.82, 0.82, 0.82,
			0.65, 0.65, 0.65,
			0.6, 0.6, 0.8,
			0.6, 0.6, 0.8,
			0.65, 0.65, 0.65,
			0.23, 0.32, 0.32,
		},
	}
}

// BreakableTile returns a tile with the same shape as Tile, shaded in
// yellows so that it reads as fragile.
func BreakableTile() Mesh {
	return Mesh{
		Positions: floorSquare(),
		Colors: []float32{
			0.85, 0.85, 0,
			1, 0.9, 0,
			0.8, 0.39, 0,
			0.8, 0.39, 0,
			1, 0.9, 0,
			1, 1, 1,
		},
	}
}
