package geometry_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-bridge/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCuboid(t *testing.T) {
	m := geometry.Cuboid()
	require.NoError(t, m.Validate())
	assert.Equal(t, 36, m.VertexCount())

	lo := mgl32.Vec3{1, 1, 1}
	hi := mgl32.Vec3{-1, -1, -1}
	for i := 0; i < len(m.Positions); i += 3 {
		for axis := range 3 {
			v := m.Positions[i+axis]
			if v < lo[axis] {
				lo[axis] = v
			}
			if v > hi[axis] {
				hi[axis] = v
			}
		}
	}
	assert.Equal(t, mgl32.Vec3{-0.25, -0.25, -0.5}, lo)
	assert.Equal(t, mgl32.Vec3{0.25, 0.25, 0.5}, hi)

	for i := 0; i < len(m.Colors); i += 3 {
		assert.Equal(t, geometry.BlockColor, mgl32.Vec3{m.Colors[i], m.Colors[i+1], m.Colors[i+2]})
	}
}

// Every face of the block must be covered by exactly two triangles.
func TestCuboidFaces(t *testing.T) {
	m := geometry.Cuboid()
	faces := map[[2]int]int{}
	for tri := 0; tri < m.VertexCount()/3; tri++ {
		base := tri * 9
		for axis := range 3 {
			a := m.Positions[base+axis]
			if a == m.Positions[base+3+axis] && a == m.Positions[base+6+axis] {
				sign := 1
				if a < 0 {
					sign = -1
				}
				faces[[2]int{axis, sign}]++
			}
		}
	}
	assert.Len(t, faces, 6)
	for face, n := range faces {
		assert.Equal(t, 2, n, "face %v", face)
	}
}

func TestTiles(t *testing.T) {
	for name, m := range map[string]geometry.Mesh{
		"normal":    geometry.Tile(),
		"breakable": geometry.BreakableTile(),
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, m.Validate())
			assert.Equal(t, 6, m.VertexCount())
			for i := 1; i < len(m.Positions); i += 3 {
				assert.Equal(t, float32(geometry.TileY), m.Positions[i])
			}
		})
	}

	assert.Equal(t, geometry.Tile().Positions, geometry.BreakableTile().Positions)
	assert.NotEqual(t, geometry.Tile().Colors, geometry.BreakableTile().Colors)
}

func TestValidate(t *testing.T) {
	assert.Error(t, geometry.Mesh{Positions: []float32{0, 0}}.Validate())
	assert.Error(t, geometry.Mesh{Positions: []float32{0, 0, 0}, Colors: []float32{1}}.Validate())
	assert.NoError(t, geometry.Mesh{}.Validate())
}

func TestSolid(t *testing.T) {
	c := geometry.Solid(2, mgl32.Vec3{0.1, 0.2, 0.3})
	assert.Equal(t, []float32{0.1, 0.2, 0.3, 0.1, 0.2, 0.3}, c)
	assert.Empty(t, geometry.Solid(0, mgl32.Vec3{}))
}
