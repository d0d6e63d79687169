package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning for the evasive control: stiffness 400 and damping 25 on a
// unit mass give an angular frequency of 20 and a damping ratio of 0.625.
const (
	springFrequency = 20.0
	springDamping   = 0.625
	springRest      = 0.05
)

// controlSpring animates the evasive control towards its target cell.
type controlSpring struct {
	spring harmonica.Spring
	x, y   float64
	vx, vy float64
	active bool
}

func newControlSpring(frame time.Duration) controlSpring {
	return controlSpring{
		spring: harmonica.NewSpring(frame.Seconds(), springFrequency, springDamping),
	}
}

// launch starts the spring at (x, y) if it is not already moving.
func (s *controlSpring) launch(x, y int) {
	if s.active {
		return
	}
	s.x, s.y = float64(x), float64(y)
	s.vx, s.vy = 0, 0
	s.active = true
}

// step advances the spring one frame towards (tx, ty), snapping once at rest.
func (s *controlSpring) step(tx, ty int) {
	if !s.active {
		return
	}
	fx, fy := float64(tx), float64(ty)
	s.x, s.vx = s.spring.Update(s.x, s.vx, fx)
	s.y, s.vy = s.spring.Update(s.y, s.vy, fy)
	if math.Abs(s.x-fx) < springRest && math.Abs(s.y-fy) < springRest &&
		math.Abs(s.vx) < springRest && math.Abs(s.vy) < springRest {
		s.x, s.y, s.vx, s.vy = fx, fy, 0, 0
	}
}

// position returns the cell the control is drawn at.
func (s controlSpring) position() (int, int) {
	return int(math.Round(s.x)), int(math.Round(s.y))
}

// reset parks the spring, for when the control returns to its layout slot.
func (s *controlSpring) reset() {
	s.x, s.y, s.vx, s.vy = 0, 0, 0, 0
	s.active = false
}
