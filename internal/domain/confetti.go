package domain

import "time"

// ConfettiCount is the number of particles shown on acceptance.
const ConfettiCount = 60

// ConfettiPalette is the number of confetti colours.
const ConfettiPalette = 6

// ConfettiShape is the shape of a confetti particle.
type ConfettiShape int

const (
	ConfettiCircle ConfettiShape = iota
	ConfettiSquare
	ConfettiHeart
)

// Confetti is one falling celebration particle.
type Confetti struct {
	Index    int
	Shape    ConfettiShape
	Color    int
	Size     float64 // 8..20
	X        float64 // percent of viewport width
	Duration time.Duration
	Delay    time.Duration
	Drift    float64 // horizontal travel over one fall, in columns
}

// ConfettiFrame is a particle's animated state at one instant.
type ConfettiFrame struct {
	Visible  bool
	XPercent float64
	XOffset  float64
	YPercent float64
	Opacity  float64
	Rotation float64
}

// GenerateConfetti creates n particles; colours and shapes cycle by index.
func GenerateConfetti(rng Random, n int) []Confetti {
	particles := make([]Confetti, n)
	for i := range particles {
		particles[i] = Confetti{
			Index:    i,
			Shape:    ConfettiShape(i % 3),
			Color:    i % ConfettiPalette,
			Size:     8 + rng.Float64()*12,
			X:        rng.Float64() * 100,
			Duration: seconds(3 + rng.Float64()*4),
			Delay:    seconds(rng.Float64() * 2),
			Drift:    (rng.Float64() - 0.5) * 15,
		}
	}
	return particles
}

// At returns the particle's frame after elapsed time since acceptance.
// Particles are hidden until their delay passes, then fall from just above
// the viewport to below it, fading out over the second half of each fall.
func (c Confetti) At(elapsed time.Duration) ConfettiFrame {
	if elapsed < c.Delay {
		return ConfettiFrame{}
	}
	p := cycle(elapsed-c.Delay, c.Duration)
	opacity := 1.0
	if p > 0.5 {
		opacity = 1 - (p-0.5)*2
	}
	return ConfettiFrame{
		Visible:  true,
		XPercent: c.X,
		XOffset:  c.Drift * p,
		YPercent: -5 + 115*p,
		Opacity:  opacity,
		Rotation: 720 * p,
	}
}
