package domain

import "math"

// Placement constants for the evasive control, in terminal cells.
const (
	// PlacementMarginX and PlacementMarginY keep the control off the edges.
	PlacementMarginX = 4
	PlacementMarginY = 2

	// ProximityRadius is measured in column widths; rows are scaled by
	// CellAspect so the radius is roughly circular on screen.
	ProximityRadius = 14.0
	CellAspect      = 2.0

	maxRotation = 30.0
	minScale    = 0.7
	scaleRange  = 0.5
)

// DefaultControlSize is used before the control has been measured.
var DefaultControlSize = Size{Width: 10, Height: 3}

// Random is the source of randomness for generated layouts.
// *math/rand/v2.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Size is a width and height in cells.
type Size struct {
	Width  int
	Height int
}

// IsZero reports whether the size has not been measured yet.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Point is a cell coordinate.
type Point struct {
	X int
	Y int
}

// Rect is a cell-aligned box.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether p lies inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Center returns the rect centre in fractional cells.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.Width)/2, float64(r.Y) + float64(r.Height)/2
}

// ControlPosition is the placement override of the evasive control. The
// default value means "use the layout position"; a non-zero X means an
// absolute override is active.
type ControlPosition struct {
	X        int
	Y        int
	Rotation float64
	Scale    float64
}

// DefaultControlPosition returns the layout-position placement.
func DefaultControlPosition() ControlPosition {
	return ControlPosition{Scale: 1}
}

// IsOverride reports whether the control has been moved off its layout slot.
func (p ControlPosition) IsOverride() bool {
	return p.X != 0
}

// Bounds returns the allowed [min, max] range for X and Y given the viewport
// and control size. When the viewport is too small the range collapses to the
// margin.
func Bounds(viewport, control Size) (minX, maxX, minY, maxY int) {
	if control.IsZero() {
		control = DefaultControlSize
	}
	minX, minY = PlacementMarginX, PlacementMarginY
	maxX = viewport.Width - control.Width - PlacementMarginX
	maxY = viewport.Height - control.Height - PlacementMarginY
	if maxX < minX {
		maxX = minX
	}
	if maxY < minY {
		maxY = minY
	}
	return minX, maxX, minY, maxY
}

// Reposition picks a new placement for the control inside the viewport, with
// a random tilt and scale.
func Reposition(rng Random, viewport, control Size) ControlPosition {
	minX, maxX, minY, maxY := Bounds(viewport, control)
	x := minX + int(rng.Float64()*float64(maxX-minX+1))
	y := minY + int(rng.Float64()*float64(maxY-minY+1))
	if x > maxX {
		x = maxX
	}
	if y > maxY {
		y = maxY
	}
	return ControlPosition{
		X:        x,
		Y:        y,
		Rotation: (rng.Float64() - 0.5) * 2 * maxRotation,
		Scale:    minScale + rng.Float64()*scaleRange,
	}
}

// Distance returns the on-screen distance from p to the centre of r, in
// column widths.
func Distance(p Point, r Rect) float64 {
	cx, cy := r.Center()
	dx := float64(p.X) + 0.5 - cx
	dy := (float64(p.Y) + 0.5 - cy) * CellAspect
	return math.Sqrt(dx*dx + dy*dy)
}

// WithinProximity reports whether the pointer is close enough to the control
// to make it flee.
func WithinProximity(p Point, r Rect) bool {
	return Distance(p, r) < ProximityRadius
}
