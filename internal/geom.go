package internal

import (
	"fmt"
	"math"
)

// Geometric predicates. These are deliberately exact: every test compares a
// cross product against zero, with no tolerance. Degenerate input (collinear
// runs, duplicate points) gets the mathematically exact answer, and nothing
// more.

// Only used for comparing areas in tests and in the area check
const Epsilon = 1e-6

// The sweep order. A point is above another if it has a larger Y value, or if
// the Y values are equal and it has a smaller X value. This is the order the
// sweep line visits vertices in, and the same order is used for classifying
// vertices, so that ties are broken consistently everywhere.
func (p *Point) Above(otherPoint *Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y > otherPoint.Y
}

func (p *Point) Below(otherPoint *Point) bool {
	return otherPoint.Above(p)
}

func (p *Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Twice the signed area of the triangle abc. Positive when a, b, c make a left
// (counterclockwise) turn, negative for a right turn, zero when collinear.
func Orientation(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// Is c strictly left of the directed line ab?
func Left(a, b, c *Point) bool {
	return Orientation(a, b, c) > 0
}

// Is c left of or on the directed line ab?
func LeftOn(a, b, c *Point) bool {
	return Orientation(a, b, c) >= 0
}

func Collinear(a, b, c *Point) bool {
	return Orientation(a, b, c) == 0
}

// True iff ab and cd cross at a point interior to both. Touching at an endpoint
// or overlapping collinearly does not count.
func SegmentsProperlyIntersect(a, b, c, d *Point) bool {
	if Collinear(a, b, c) || Collinear(a, b, d) || Collinear(c, d, a) || Collinear(c, d, b) {
		return false
	}
	return (Left(a, b, c) != Left(a, b, d)) && (Left(c, d, a) != Left(c, d, b))
}

// True iff c is collinear with ab and lies on the closed segment ab.
func PointBetween(a, b, c *Point) bool {
	if !Collinear(a, b, c) {
		return false
	}
	// Use x unless the segment is vertical
	if a.X != b.X {
		return (a.X <= c.X && c.X <= b.X) || (a.X >= c.X && c.X >= b.X)
	}
	return (a.Y <= c.Y && c.Y <= b.Y) || (a.Y >= c.Y && c.Y >= b.Y)
}

// Proper intersection, or any case where an endpoint of one segment touches
// the other.
func SegmentsIntersect(a, b, c, d *Point) bool {
	if SegmentsProperlyIntersect(a, b, c, d) {
		return true
	}
	return PointBetween(a, b, c) ||
		PointBetween(a, b, d) ||
		PointBetween(c, d, a) ||
		PointBetween(c, d, b)
}

// Shoelace area. Positive for counterclockwise polygons.
func SignedArea(points []*Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func (poly *Polygon) SignedArea() float64 {
	return SignedArea(poly.Points)
}

func (poly *Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly *Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (t *Triangle) SignedArea() float64 {
	return Orientation(t.A, t.B, t.C) / 2
}

func (t *Triangle) Area() float64 {
	return math.Abs(t.SignedArea())
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle{%v, %v, %v}", t.A, t.B, t.C)
}
