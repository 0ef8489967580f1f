package openglhelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckColorData(t *testing.T) {
	tests := []struct {
		name      string
		positions []float32
		colors    []float32
		wantErr   string
	}{
		{"empty", nil, nil, "no vertices"},
		{"ragged positions", []float32{0, 0}, []float32{1, 1}, "not a multiple of 3"},
		{"color mismatch", []float32{0, 0, 0}, []float32{1, 1, 1, 1, 1, 1}, "does not match"},
		{"ok", []float32{0, 0, 0, 1, 1, 1}, []float32{1, 0, 0, 0, 1, 0}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkColorData(tt.positions, tt.colors)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewColorMeshRejectsBadDataBeforeTouchingGL(t *testing.T) {
	mesh, err := NewColorMesh([]float32{0, 0, 0}, []float32{1})
	assert.Nil(t, mesh)
	assert.Error(t, err)
}
