package domain

import (
	"math"
	"time"
)

// FieldSize is the number of ornaments floating behind the card.
const FieldSize = 45

// OrnamentKind is the shape of a background ornament.
type OrnamentKind int

const (
	OrnamentHeart OrnamentKind = iota
	OrnamentSparkle
	OrnamentFlower
)

// OrnamentPalette is the number of background colours ornaments cycle through.
const OrnamentPalette = 5

// Ornament is a purely decorative background element. Its parameters are
// generated once and never change; its position is a function of time.
type Ornament struct {
	ID       int
	Kind     OrnamentKind
	Size     float64 // 10..45
	Color    int     // index into the background palette
	InitialX float64 // percent of viewport width
	Duration time.Duration
	Delay    time.Duration // zero or negative: the ornament starts mid-flight
	Sway     float64       // percent of viewport width
}

// OrnamentFrame is an ornament's animated state at one instant.
type OrnamentFrame struct {
	XPercent float64
	YPercent float64
	Opacity  float64
	Rotation float64
}

// ornamentKindFor cycles a four-slot pattern: sparkle, flower, heart, heart.
func ornamentKindFor(i int) OrnamentKind {
	switch i % 4 {
	case 0:
		return OrnamentSparkle
	case 1:
		return OrnamentFlower
	default:
		return OrnamentHeart
	}
}

// GenerateField creates n ornaments with randomized size, position and timing.
func GenerateField(rng Random, n int) []Ornament {
	field := make([]Ornament, n)
	for i := range field {
		field[i] = Ornament{
			ID:       i,
			Kind:     ornamentKindFor(i),
			Size:     10 + rng.Float64()*35,
			Color:    i % OrnamentPalette,
			InitialX: rng.Float64() * 100,
			Duration: seconds(25 + rng.Float64()*35),
			Delay:    -seconds(rng.Float64() * 50),
			Sway:     5 + rng.Float64()*15,
		}
	}
	return field
}

// At returns the ornament's frame after elapsed time since the field was
// generated. The vertical motion loops forever from below the viewport
// (110%) to above it (-20%).
func (o Ornament) At(elapsed time.Duration) OrnamentFrame {
	rise := cycle(elapsed-o.Delay, o.Duration)
	sway := cycle(elapsed, o.Duration/3)
	pulse := cycle(elapsed, o.Duration)
	spin := cycle(elapsed, o.Duration/2)

	return OrnamentFrame{
		XPercent: o.InitialX + o.Sway*easeBounce(sway),
		YPercent: 110 - 130*rise,
		Opacity:  0.1 + 0.4*easeBounce(pulse),
		Rotation: 360 * spin,
	}
}

// cycle returns the fractional progress of t through a repeating period, in
// [0, 1).
func cycle(t, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	p := math.Mod(float64(t)/float64(period), 1)
	if p < 0 {
		p++
	}
	return p
}

// easeBounce maps [0,1) to an ease-in-out 0 → 1 → 0 curve.
func easeBounce(p float64) float64 {
	return (1 - math.Cos(2*math.Pi*p)) / 2
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Pulse returns a repeating 0 → 1 → 0 ease-in-out wave with the given
// period, evaluated at t.
func Pulse(t, period time.Duration) float64 {
	return easeBounce(cycle(t, period))
}
