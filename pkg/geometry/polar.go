package geometry

import (
	"fmt"
	"math"
)

// Polar is a velocity expressed as a speed and a heading.
// Length is in px/frame, Angle in degrees (screen coordinates).
// Keeping the heading separate from the length means that setting the
// speed to zero never loses the direction the bird was facing.
type Polar struct {
	Length float64 `json:"length" yaml:"length"`
	Angle  float64 `json:"angle" yaml:"angle"`
}

// NewPolar creates a Polar, negative lengths are clamped to zero.
func NewPolar(length, angle float64) Polar {
	return Polar{Length: math.Max(length, 0), Angle: angle}
}

// Vector converts the polar velocity into its cartesian displacement.
func (p Polar) Vector() Vector2D {
	rad := p.Angle * math.Pi / 180
	x := p.Length * math.Cos(rad)
	y := p.Length * math.Sin(rad)

	// Handle standard floating point precision issues near zero
	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}
	return Vector2D{X: x, Y: y}
}

// String implements the fmt.Stringer interface.
func (p Polar) String() string {
	return fmt.Sprintf("%.2fpx@%.1f°", p.Length, p.Angle)
}
