package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrEmptyPolygon is returned when a polygon is built without any vertex.
var ErrEmptyPolygon = errors.New("polygon needs at least one vertex")

// Obstacle is a region of the viewport that birds avoid.
// Implementations must never panic on degenerate geometry: a zero-area
// obstacle contains nothing and its nearest point is on the shape itself.
type Obstacle interface {
	// Contains reports whether p lies inside the obstacle (boundary included).
	Contains(p Vector2D) bool
	// NearestPoint returns the point of the obstacle boundary closest to p.
	NearestPoint(p Vector2D) Vector2D
}

// Size is the extent of the viewport in pixels.
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Center returns the middle of a viewport of this size.
func (s Size) Center() Vector2D {
	return Vector2D{X: s.Width / 2, Y: s.Height / 2}
}

func (s Size) String() string {
	return fmt.Sprintf("%.0fx%.0f", s.Width, s.Height)
}

// ============================================================================
// Rect
// ============================================================================

// Rect is an axis-aligned rectangle, typically the bounding box of the text region.
type Rect struct {
	Left   float64 `json:"left" yaml:"left"`
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

var _ Obstacle = Rect{}

// NewRect builds a Rect from two opposite corners given in any order.
func NewRect(a, b Vector2D) Rect {
	return Rect{
		Left:   math.Min(a.X, b.X),
		Top:    math.Min(a.Y, b.Y),
		Right:  math.Max(a.X, b.X),
		Bottom: math.Max(a.Y, b.Y),
	}
}

// Width of the rectangle, never negative.
func (r Rect) Width() float64 { return math.Max(r.Right-r.Left, 0) }

// Height of the rectangle, never negative.
func (r Rect) Height() float64 { return math.Max(r.Bottom-r.Top, 0) }

// Center returns the middle point of the rectangle.
func (r Rect) Center() Vector2D {
	return Vector2D{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Width() < Epsilon || r.Height() < Epsilon
}

// Contains reports whether p lies inside r, edges included.
// An empty rectangle contains nothing.
func (r Rect) Contains(p Vector2D) bool {
	if r.IsEmpty() {
		return false
	}
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// NearestPoint returns the point on the border of r closest to p.
// For outside points this is the clamped position; for inside points it is the
// projection onto the closest edge.
func (r Rect) NearestPoint(p Vector2D) Vector2D {
	clamped := Vector2D{
		X: Clamp(p.X, r.Left, math.Max(r.Left, r.Right)),
		Y: Clamp(p.Y, r.Top, math.Max(r.Top, r.Bottom)),
	}
	if !r.Contains(p) {
		return clamped
	}

	// inside: push out through the closest edge
	left, right := p.X-r.Left, r.Right-p.X
	top, bottom := p.Y-r.Top, r.Bottom-p.Y
	best := math.Min(math.Min(left, right), math.Min(top, bottom))
	switch best {
	case left:
		return Vector2D{X: r.Left, Y: p.Y}
	case right:
		return Vector2D{X: r.Right, Y: p.Y}
	case top:
		return Vector2D{X: p.X, Y: r.Top}
	default:
		return Vector2D{X: p.X, Y: r.Bottom}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.1f,%.1f → %.1f,%.1f]", r.Left, r.Top, r.Right, r.Bottom)
}

// ============================================================================
// Polygon
// ============================================================================

// Polygon is a closed polygon; the last vertex connects back to the first.
type Polygon struct {
	vertices []Vector2D
	area     float64
}

var _ Obstacle = (*Polygon)(nil)

// NewPolygon copies the given vertices into a new Polygon.
func NewPolygon(vertices ...Vector2D) (*Polygon, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyPolygon
	}
	for i, v := range vertices {
		if !v.IsFinite() {
			return nil, fmt.Errorf("polygon vertex %d %s is not finite", i, v)
		}
	}
	p := &Polygon{vertices: append([]Vector2D(nil), vertices...)}
	p.area = p.signedArea()
	return p, nil
}

// isEmpty holds for a nil or zero-value polygon.
func (p *Polygon) isEmpty() bool {
	return p == nil || len(p.vertices) == 0
}

// Vertices returns a copy of the polygon vertices.
func (p *Polygon) Vertices() []Vector2D {
	if p.isEmpty() {
		return nil
	}
	return append([]Vector2D(nil), p.vertices...)
}

// Area returns the absolute area enclosed by the polygon.
func (p *Polygon) Area() float64 {
	if p.isEmpty() {
		return 0
	}
	return math.Abs(p.area)
}

// Bounds returns the axis-aligned bounding box of the polygon, a polygon
// without vertices has the zero Rect.
func (p *Polygon) Bounds() Rect {
	if p.isEmpty() {
		return Rect{}
	}
	r := Rect{Left: p.vertices[0].X, Top: p.vertices[0].Y, Right: p.vertices[0].X, Bottom: p.vertices[0].Y}
	for _, v := range p.vertices[1:] {
		r.Left = math.Min(r.Left, v.X)
		r.Top = math.Min(r.Top, v.Y)
		r.Right = math.Max(r.Right, v.X)
		r.Bottom = math.Max(r.Bottom, v.Y)
	}
	return r
}

// Contains uses the even-odd rule, points on an edge count as inside.
// Polygons with less than 3 vertices or no area contain nothing.
func (p *Polygon) Contains(pt Vector2D) bool {
	if p.isEmpty() || len(p.vertices) < 3 || p.Area() < Epsilon {
		return false
	}
	if pt.DistanceTo(p.NearestPoint(pt)) < Epsilon {
		return true
	}

	inside := false
	n := len(p.vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[i], p.vertices[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			xCross := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// NearestPoint returns the point on the polygon outline closest to pt.
// A polygon without vertices returns pt itself.
func (p *Polygon) NearestPoint(pt Vector2D) Vector2D {
	if p.isEmpty() {
		return pt
	}
	if len(p.vertices) == 1 {
		return p.vertices[0]
	}

	best := p.vertices[0]
	bestDistSq := math.MaxFloat64
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		candidate := nearestOnSegment(pt, p.vertices[i], p.vertices[(i+1)%n])
		if d := pt.DistanceSquaredTo(candidate); d < bestDistSq {
			bestDistSq = d
			best = candidate
		}
	}
	return best
}

// signedArea is the shoelace formula, positive for clockwise vertices on screen.
func (p *Polygon) signedArea() float64 {
	sum := 0.0
	n := len(p.vertices)
	for i := 0; i < n; i++ {
		sum += p.vertices[i].Cross(p.vertices[(i+1)%n])
	}
	return sum / 2
}

func nearestOnSegment(p, a, b Vector2D) Vector2D {
	ab := b.Sub(a)
	lenSq := ab.LenSqr()
	if lenSq < Epsilon {
		return a
	}
	t := Clamp(p.Sub(a).Dot(ab)/lenSq, 0, 1)
	return a.Add(ab.Mul(t))
}
