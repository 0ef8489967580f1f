package audio

import (
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesize(t *testing.T) {
	tests := []struct {
		effect  Effect
		seconds float64
	}{
		{EffectRoll, 0.09},
		{EffectFall, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.effect.String(), func(t *testing.T) {
			buf := Synthesize(tt.effect)
			require.Len(t, buf, frames(tt.seconds)*BytesPerFrame)

			for i := 0; i < len(buf); i += BytesPerFrame {
				left := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
				right := math.Float32frombits(binary.LittleEndian.Uint32(buf[i+4:]))
				require.Equal(t, left, right, "frame %d", i/BytesPerFrame)
				require.LessOrEqual(t, math.Abs(float64(left)), 1.0)
			}
		})
	}

	assert.Nil(t, Synthesize(Effect(99)))
}

func TestPutStereoF32(t *testing.T) {
	buf := make([]byte, 2*BytesPerFrame)
	putStereoF32(buf, 1, 0.5)

	assert.Equal(t, make([]byte, BytesPerFrame), buf[:BytesPerFrame])
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[12:])))
}

func TestSoundReader(t *testing.T) {
	r := &soundReader{data: []byte{1, 2, 3, 4, 5}}
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, got)

	n, err := r.Read(make([]byte, 4))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, io.EOF)
}

func TestDisabledPlayerIsSilent(t *testing.T) {
	p, err := NewPlayer(false, 1)
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	assert.NotPanics(t, func() { p.Play(EffectFall) })

	var nilPlayer *Player
	assert.False(t, nilPlayer.Enabled())
	assert.NotPanics(t, func() { nilPlayer.Play(EffectRoll) })
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, clamp(-1, 0, 1))
	assert.Equal(t, 1.0, clamp(2, 0, 1))
	assert.Equal(t, 0.3, clamp(0.3, 0, 1))
}
