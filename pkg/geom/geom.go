// Package geom provides the small amount of 2D math shared by the navigation
// engine and the input adapters: points, sizes, rects, and the quadrant test
// used for directional scoring and analog stick classification.
//
// The coordinate system is north-positive: Y grows upward. Layout frontends
// that count rows downward (terminals do) convert at their boundary.
package geom

import "math"

// Point is a 2D position or displacement.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the Euclidean length of p treated as a displacement.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// LenSq returns the squared length of p. It orders the same way Len does and
// avoids the square root, which matters when scoring every sibling per move.
func (p Point) LenSq() float64 {
	return p.X*p.X + p.Y*p.Y
}

// IsZero reports whether p is the zero displacement.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Size is a 2D extent.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned rectangle described by its center and size.
type Rect struct {
	Center Point
	Size   Size
}

// Contains reports whether pt lies inside r. A point is inside when it is
// within half the width and half the height of the center on both axes,
// the same containment rule hit-testing uses.
func (r Rect) Contains(pt Point) bool {
	hw := r.Size.W / 2
	hh := r.Size.H / 2
	return pt.X >= r.Center.X-hw && pt.X < r.Center.X+hw &&
		pt.Y >= r.Center.Y-hh && pt.Y < r.Center.Y+hh
}

// Min returns the corner of r with the smallest coordinates.
func (r Rect) Min() Point {
	return Point{X: r.Center.X - r.Size.W/2, Y: r.Center.Y - r.Size.H/2}
}

// Max returns the corner of r with the largest coordinates.
func (r Rect) Max() Point {
	return Point{X: r.Center.X + r.Size.W/2, Y: r.Center.Y + r.Size.H/2}
}

// Union returns the smallest rect covering both r and q.
func (r Rect) Union(q Rect) Rect {
	min := Point{X: math.Min(r.Min().X, q.Min().X), Y: math.Min(r.Min().Y, q.Min().Y)}
	max := Point{X: math.Max(r.Max().X, q.Max().X), Y: math.Max(r.Max().Y, q.Max().Y)}
	return Rect{
		Center: Point{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2},
		Size:   Size{W: max.X - min.X, H: max.Y - min.Y},
	}
}

// Quadrant classifies a displacement into one of four compass cones.
type Quadrant int

// Quadrant values. QuadNone covers the zero displacement and exact diagonals,
// which belong to no cone.
const (
	QuadNone Quadrant = iota
	QuadNorth
	QuadSouth
	QuadEast
	QuadWest
)

// QuadrantOf returns the ±45° cone the displacement d falls in. The
// comparisons are strict so diagonals resolve to QuadNone rather than
// flickering between neighbors.
func QuadrantOf(d Point) Quadrant {
	switch {
	case d.Y < d.X && d.Y < -d.X:
		return QuadSouth
	case d.Y > d.X && d.Y > -d.X:
		return QuadNorth
	case d.Y < d.X && d.Y > -d.X:
		return QuadEast
	case d.Y > d.X && d.Y < -d.X:
		return QuadWest
	}
	return QuadNone
}
