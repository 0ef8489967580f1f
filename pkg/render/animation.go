package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// roll eases the drawn block position towards its logical position so that
// a move reads as motion rather than a jump.
type roll struct {
	current mgl32.Vec3
	tweens  [3]*gween.Tween
}

func newRoll(start mgl32.Vec3) *roll {
	return &roll{current: start}
}

// To starts a new ease from the currently drawn position to target.
func (r *roll) To(target mgl32.Vec3) {
	for i := range r.tweens {
		r.tweens[i] = gween.New(r.current[i], target[i], RollDuration, ease.OutQuad)
	}
}

// Snap jumps straight to pos and cancels any ease in progress.
func (r *roll) Snap(pos mgl32.Vec3) {
	r.current = pos
	r.tweens = [3]*gween.Tween{}
}

// Update advances the ease by dt seconds and returns the drawn position.
func (r *roll) Update(dt float32) mgl32.Vec3 {
	for i, t := range r.tweens {
		if t == nil {
			continue
		}
		v, done := t.Update(dt)
		r.current[i] = v
		if done {
			r.tweens[i] = nil
		}
	}
	return r.current
}

// Position returns the drawn position
func (r *roll) Position() mgl32.Vec3 {
	return r.current
}

// Moving reports whether an ease is still in progress.
func (r *roll) Moving() bool {
	for _, t := range r.tweens {
		if t != nil {
			return true
		}
	}
	return false
}
