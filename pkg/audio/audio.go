// Package audio plays the game's procedural sound effects through oto.
package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/hajimehoshi/oto/v2"
	log "github.com/sirupsen/logrus"
)

// formatFloat32LE is oto's 32-bit float sample format.
const formatFloat32LE = oto.FormatFloat32LE

// Player plays effects on a shared oto context. The zero value is a silent
// player.
type Player struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	cache  map[Effect][]byte
}

// NewPlayer opens the audio device. A disabled player never touches the
// device and plays nothing.
func NewPlayer(enabled bool, volume float64) (*Player, error) {
	if !enabled {
		return &Player{}, nil
	}

	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, formatFloat32LE)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio device: %w", err)
	}

	p := &Player{
		ctx:    ctx,
		ready:  ready,
		volume: clamp(volume, 0, 1),
		cache:  make(map[Effect][]byte),
	}
	for _, e := range []Effect{EffectRoll, EffectFall} {
		p.cache[e] = Synthesize(e)
	}
	return p, nil
}

// Enabled reports whether the player is attached to a device.
func (p *Player) Enabled() bool {
	return p != nil && p.ctx != nil
}

// Play starts e in the background. It never blocks the frame loop; the
// effect is dropped if the device is not ready yet.
func (p *Player) Play(e Effect) {
	if !p.Enabled() {
		return
	}
	select {
	case <-p.ready:
	default:
		log.WithField("effect", e).Debug("audio device not ready, dropping effect")
		return
	}

	samples := p.cache[e]
	if len(samples) == 0 {
		return
	}

	go func() {
		player := p.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(p.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := player.Close(); err != nil {
			log.WithError(err).Warn("closing audio player")
		}
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
