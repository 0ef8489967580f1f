package render

import (
	"fmt"

	"github.com/leterax/go-bridge/pkg/audio"
	"github.com/leterax/go-bridge/pkg/level"
	log "github.com/sirupsen/logrus"
)

// SoundPlayer plays sound effects. *audio.Player satisfies it.
type SoundPlayer interface {
	Play(e audio.Effect)
}

// session is the per-run game state that sits between input events and the
// draw calls. It owns no GL resources.
type session struct {
	state  *level.State
	camera *Camera
	roll   *roll
	view   ViewMode
	sounds SoundPlayer

	orbit bool
	retry bool
	quit  bool

	losses int
	log    *log.Entry
}

func newSession(cfg Config, layout *level.Layout, sounds SoundPlayer) *session {
	state := level.NewState(layout)
	return &session{
		state:  state,
		camera: NewCamera(cfg.Width, cfg.Height),
		roll:   newRoll(state.Block.Position),
		view:   Tower,
		sounds: sounds,
		orbit:  cfg.Orbit,
		retry:  cfg.Retry,
		log:    log.WithField("layout", layout.Name),
	}
}

// handle applies one input command.
func (s *session) handle(cmd command) {
	switch cmd.kind {
	case cmdMove:
		if !s.state.Apply(cmd.move) {
			return
		}
		s.roll.To(s.state.Block.Position)
		s.sounds.Play(audio.EffectRoll)
		s.log.WithFields(log.Fields{
			"move":        cmd.move,
			"orientation": s.state.Block.Orientation,
			"position":    s.state.Block.Position,
			"moves":       s.state.Moves,
		}).Debug("block rolled")
	case cmdCycleView:
		s.view = s.view.Next()
		s.log.WithField("view", s.view).Debug("view changed")
	case cmdFreeMove:
		s.camera.MoveFree(cmd.free)
	case cmdQuit:
		s.quit = true
	}
}

// toggleSpin reverses the tower camera's orbit direction.
func (s *session) toggleSpin() {
	s.state.ToggleSpin()
	s.log.WithField("spin", s.state.Spin).Debug("orbit direction flipped")
}

// update advances the session by dt seconds.
func (s *session) update(dt float32) {
	if s.quit {
		return
	}
	if s.orbit {
		s.camera.Advance(dt, s.state.Spin)
	}
	s.roll.Update(dt)

	if cause := s.state.Check(); cause != level.CauseNone {
		s.sounds.Play(audio.EffectFall)
		s.log.WithFields(log.Fields{
			"cause":    cause,
			"position": s.state.Block.Position,
			"moves":    s.state.Moves,
		}).Info("block fell off the bridge")
	}

	// Let the last roll finish before the block starts to drop.
	if !s.state.Falling() || s.roll.Moving() {
		return
	}
	s.state.Step()
	s.roll.Snap(s.state.Block.Position)

	if s.state.Over() {
		s.lost()
	}
}

func (s *session) lost() {
	s.losses++
	entry := s.log.WithFields(log.Fields{
		"moves":  s.state.Moves,
		"cause":  s.state.Cause(),
		"losses": s.losses,
	})

	if !s.retry {
		entry.Info("level lost")
		s.quit = true
		return
	}

	entry.Info("level lost, restarting")
	s.state.Reset()
	s.roll.Snap(s.state.Block.Position)
}

// title returns the window title for the current state.
func (s *session) title(base string) string {
	return fmt.Sprintf("%s | Moves: %d | View: %s", base, s.state.Moves, s.view)
}
