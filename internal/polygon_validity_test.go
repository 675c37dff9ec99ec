package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulated mesh is valid. The rules are:
// 1. The mesh passes its own structural validation.
// 2. Every bounded face is a counterclockwise triangle with nonzero area.
// 3. There are n-2 triangles for n vertices.
// 4. Every boundary segment of the polygon is a side of some triangle.
// 5. The sum of the areas of all triangles is equal to the area of the polygon.
func AssertValidTriangulation(t *testing.T, m *Mesh) {
	t.Helper()
	require.NoError(t, m.Validate())

	triangles := m.Triangles()
	require.Len(t, triangles, len(m.Vertices)-2, "a polygon with n vertices has n-2 triangles")

	var triangleArea float64
	segments := make(normalizedSegmentSet)
	for _, tri := range triangles {
		require.Greater(t, tri.SignedArea(), 0.0, "clockwise or degenerate triangle: %s", tri)
		triangleArea += tri.Area()
		segments.add(tri.A, tri.B)
		segments.add(tri.B, tri.C)
		segments.add(tri.C, tri.A)
	}

	polygon := m.Polygon()
	for i, p1 := range polygon.Points {
		p2 := polygon.Points[CircularIndex(i+1, len(polygon.Points))]
		require.True(t, segments.contains(p1, p2), "segment %v-%v of the polygon is not a side of any triangle", p1, p2)
	}

	require.InDelta(t, polygon.Area(), triangleArea, Epsilon, "sum of the areas of all triangles must equal the area of the polygon")
}

// Every vertex is colored and every triangle has all three colors.
func AssertValidColoring(t *testing.T, m *Mesh) {
	t.Helper()
	for _, v := range m.Vertices {
		require.NotEqual(t, NoColor, v.Color, "vertex %d is uncolored", v.ID)
	}
	for _, f := range m.BoundedFaces() {
		seen := make(map[Color]bool, 3)
		for _, v := range m.VerticesOfFace(f) {
			seen[m.Vertices[v].Color] = true
		}
		require.Len(t, seen, 3, "face %d does not use all three colors", f)
	}
}

// Used in the helper above, this is a "normalized" line segment, where the
// lower point (accounting for lexicographic adjustment) is always first
type normalizedSegment struct {
	lower, upper *Point
}

func newNormalizedSegment(a, b *Point) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b *Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b *Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}
