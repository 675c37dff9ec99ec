package polyio

import (
	"math"
	"math/rand"
	"sort"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Coordinates of generated polygons fall in this square
var RandomBounds = r2.Rect{
	X: r1.Interval{Lo: -100, Hi: 100},
	Y: r1.Interval{Lo: -100, Hi: 100},
}

// Generate a simple polygon with n vertices at distinct integer coordinates.
// The points are sorted by angle around their centroid, which gives a
// counterclockwise star-shaped polygon. Points at the same angle are ordered
// by distance.
func RandomPolygon(n int, r *rand.Rand) ([]*Point, error) {
	if n < 3 {
		return nil, errors.Errorf("a polygon needs at least 3 vertices, got %d", n)
	}
	lo, hi := int(RandomBounds.X.Lo), int(RandomBounds.X.Hi)
	if span := (hi - lo + 1) * (hi - lo + 1); n > span {
		return nil, errors.Errorf("cannot place %d distinct points in %v", n, RandomBounds)
	}

	seen := make(map[r2.Point]struct{}, n)
	points := make([]*Point, 0, n)
	for len(points) < n {
		p := r2.Point{
			X: float64(lo + r.Intn(hi-lo+1)),
			Y: float64(lo + r.Intn(hi-lo+1)),
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, &Point{X: p.X, Y: p.Y})
	}

	var centroid r2.Point
	for _, p := range points {
		centroid = centroid.Add(r2.Point{X: p.X, Y: p.Y})
	}
	centroid = centroid.Mul(1 / float64(n))

	polarAngle := func(p *Point) float64 {
		return math.Atan2(p.Y-centroid.Y, p.X-centroid.X)
	}
	distance := func(p *Point) float64 {
		return r2.Point{X: p.X, Y: p.Y}.Sub(centroid).Norm()
	}
	sort.SliceStable(points, func(i, j int) bool {
		ai, aj := polarAngle(points[i]), polarAngle(points[j])
		if ai != aj {
			return ai < aj
		}
		return distance(points[i]) < distance(points[j])
	})
	return points, nil
}
