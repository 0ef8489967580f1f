package openglhelper

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Attribute slots shared with the colour shader.
const (
	PositionAttrib uint32 = 0
	ColorAttrib    uint32 = 1
)

// ColorMesh is a non-indexed triangle list with one xyz position buffer and
// one rgb colour buffer, each bound to its own attribute slot.
type ColorMesh struct {
	vao         *VertexArrayObject
	positions   *BufferObject
	colors      *BufferObject
	vertexCount int32
	mode        uint32
}

// checkColorData reports whether positions and colors describe the same
// number of three-component vertices.
func checkColorData(positions, colors []float32) error {
	if len(positions) == 0 {
		return fmt.Errorf("mesh has no vertices")
	}
	if len(positions)%3 != 0 {
		return fmt.Errorf("position data length %d is not a multiple of 3", len(positions))
	}
	if len(colors) != len(positions) {
		return fmt.Errorf("color data length %d does not match position data length %d", len(colors), len(positions))
	}
	return nil
}

// NewColorMesh uploads positions and colours into a fresh VAO.
func NewColorMesh(positions, colors []float32) (*ColorMesh, error) {
	if err := checkColorData(positions, colors); err != nil {
		return nil, err
	}

	vao := NewVAO()
	vao.Bind()

	posVBO := NewVBO(positions, StaticDraw)
	vao.SetVertexAttribPointer(PositionAttrib, 3, gl.FLOAT, false, 0, 0)

	colVBO := NewVBO(colors, StaticDraw)
	vao.SetVertexAttribPointer(ColorAttrib, 3, gl.FLOAT, false, 0, 0)

	vao.Unbind()

	return &ColorMesh{
		vao:         vao,
		positions:   posVBO,
		colors:      colVBO,
		vertexCount: int32(len(positions) / 3),
		mode:        gl.TRIANGLES,
	}, nil
}

// VertexCount returns the number of vertices drawn per call.
func (m *ColorMesh) VertexCount() int32 {
	return m.vertexCount
}

// Draw issues the draw call with whatever program and uniforms are current.
func (m *ColorMesh) Draw() {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	m.vao.Bind()
	gl.DrawArrays(m.mode, 0, m.vertexCount)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *ColorMesh) Delete() {
	m.vao.Delete()
	m.positions.Delete()
	m.colors.Delete()
}
