package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyVertex(t *testing.T) {
	p := func(x, y float64) *Point { return &Point{x, y} }
	origin := p(0, 0)
	cases := []struct {
		name       string
		prev, next *Point
		expected   VertexType
	}{
		{"start", p(1, -1), p(-1, -1), StartVertex},
		{"split", p(-1, -1), p(1, -1), SplitVertex},
		{"end", p(-1, 1), p(1, 1), EndVertex},
		{"merge", p(1, 1), p(-1, 1), MergeVertex},
		{"regular left", p(0, 1), p(0, -1), RegularLeftVertex},
		{"regular right", p(0, -1), p(0, 1), RegularRightVertex},
		// Equal heights are broken by x: the point to the left is higher
		{"horizontal into regular left", p(-1, 0), p(1, -1), RegularLeftVertex},
		{"horizontal start", p(1, 0), p(-1, -1), StartVertex},
		{"horizontal end", p(-1, 0), p(1, 1), EndVertex},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, ClassifyVertex(c.prev, origin, c.next))
		})
	}
}

func TestClassify(t *testing.T) {
	m := mustMesh(t, MShape())
	assert.Equal(t, []VertexType{RegularLeftVertex, EndVertex, StartVertex, MergeVertex, StartVertex}, Classify(m))

	m = mustMesh(t, WShape())
	assert.Equal(t, []VertexType{EndVertex, SplitVertex, EndVertex, RegularRightVertex, StartVertex}, Classify(m))

	assert.Equal(t, "regular_left", RegularLeftVertex.String())
	assert.Equal(t, "merge", MergeVertex.String())
}

func TestPartitionMonotone(t *testing.T) {
	cases := []struct {
		name      string
		points    []*Point
		diagonals []Diagonal
	}{
		{"square", Square(), nil},
		{"convex", RegularPolygon(8, 3), nil},
		{"merge vertex", MShape(), []Diagonal{{0, 3}}},
		{"split vertex", WShape(), []Diagonal{{1, 3}}},
		{"notch", UShape(), []Diagonal{{0, 4}}},
		{"star", SimpleStar(), []Diagonal{{1, 3}, {7, 9}}},
		{"staircase", Staircase(5), []Diagonal{{8, 10}, {6, 8}, {4, 6}, {2, 4}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := mustMesh(t, c.points)
			diagonals := PartitionMonotone(m, nil)
			require.NoError(t, m.Validate())
			assert.Equal(t, c.diagonals, diagonals)
			assert.Len(t, m.Faces, len(c.diagonals)+2)
			for _, f := range m.BoundedFaces() {
				assert.True(t, m.IsMonotone(f), "face %d is not monotone: %v", f, m.VerticesOfFace(f))
			}
		})
	}
}

func TestPartitionMonotone_Fixtures(t *testing.T) {
	cases := map[string]int{
		"gallery": 7,
		"spiral":  4,
		"comb":    6,
	}
	for name, diagonalCount := range cases {
		t.Run(name, func(t *testing.T) {
			m := mustMesh(t, LoadFixture(name))
			p := NewPartitioner(m, nil)
			p.Sweep()
			assert.Len(t, p.Diagonals(), diagonalCount)
			// The mesh is untouched until the diagonals are applied
			assert.Len(t, m.Faces, 2)

			p.Apply()
			require.NoError(t, m.Validate())
			assert.Len(t, m.Faces, diagonalCount+2)
			for _, f := range m.BoundedFaces() {
				assert.True(t, m.IsMonotone(f), "face %d is not monotone", f)
			}

			var area float64
			for _, f := range m.BoundedFaces() {
				area += m.FaceArea(f)
			}
			poly := m.Polygon()
			assert.InDelta(t, poly.Area(), area, Epsilon)
		})
	}
}

func TestPartitionMonotone_SplitAndMerge(t *testing.T) {
	// Every split and merge vertex ends up with a diagonal
	m := mustMesh(t, LoadFixture("gallery"))
	p := NewPartitioner(m, nil)
	p.Sweep()

	touched := make(VertexSet)
	for _, d := range p.Diagonals() {
		touched.Add(d.A)
		touched.Add(d.B)
	}
	for v, vertexType := range p.Types() {
		if vertexType == SplitVertex || vertexType == MergeVertex {
			assert.True(t, touched.Contains(VertexID(v)), "%s vertex %d has no diagonal", vertexType, v)
		}
	}
}

func TestPartitionMonotone_AlreadySplit(t *testing.T) {
	m := mustMesh(t, MShape())
	PartitionMonotone(m, nil)
	err := recoverError(func() { PartitionMonotone(m, nil) })
	assert.Error(t, err)
}

func TestPartitionMonotone_NotSimple(t *testing.T) {
	// The edges 0-1 and 2-3 cross. The sweep runs out of edges to its left and
	// reports it instead of producing garbage.
	m := mustMesh(t, makePoints(0, 0, 4, 4, 4, 0, 0, 4, -1, 2))
	err := recoverError(func() { PartitionMonotone(m, nil) })
	assert.True(t, errors.Is(err, ErrDegenerateGeometry), "got %v", err)
}
