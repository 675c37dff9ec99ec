package artgallery

import (
	"math/rand"
	"testing"

	"github.com/osuushi/artgallery/internal"
	"github.com/osuushi/artgallery/polyio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []*Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	triangles, err := Triangulate(points)
	assert.NoError(t, err)
	assert.Len(t, triangles, 2)
}

func TestGuard(t *testing.T) {
	// Clockwise on purpose
	points := []*Point{
		{X: 0, Y: 0},
		{X: 0, Y: 4},
		{X: 2, Y: 2},
		{X: 4, Y: 4},
		{X: 4, Y: 0},
	}

	gallery, err := Guard(points)
	require.NoError(t, err)
	assert.Len(t, gallery.Triangles(), 3)
	assert.InDelta(t, 0, gallery.AreaError(), internal.Epsilon)
	assert.Len(t, gallery.Guards, 1)
}

func TestGuard_InvalidInput(t *testing.T) {
	_, err := Guard([]*Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	assert.ErrorIs(t, err, internal.ErrInvalidInput)

	// Collinear points have no area
	_, err = Guard([]*Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}})
	assert.ErrorIs(t, err, internal.ErrInvalidInput)
}

func TestGuard_RandomPolygons(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		n := 3 + r.Intn(60)
		points, err := polyio.RandomPolygon(n, r)
		require.NoError(t, err)
		poly := internal.Polygon{Points: points}
		if poly.Area() == 0 {
			continue
		}

		gallery, err := Guard(points)
		require.NoError(t, err, "polygon %d: %v", i, points)
		assert.Len(t, gallery.Triangles(), n-2)
		assert.InDelta(t, 0, gallery.AreaError(), internal.Epsilon)
		assert.LessOrEqual(t, len(gallery.Guards), n/3)
	}
}

func TestGuardWithOptions(t *testing.T) {
	var phases []Phase
	opts := Options{
		OnPhase: func(phase Phase, m *Mesh, g *internal.DualGraph) {
			phases = append(phases, phase)
		},
	}
	_, err := GuardWithOptions([]*Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, opts)
	require.NoError(t, err)
	assert.Len(t, phases, 5)
}

func TestGuard_NotSimple(t *testing.T) {
	_, err := Guard([]*Point{{X: 0, Y: 0}, {X: 4, Y: 4}, {X: 4, Y: 0}, {X: 0, Y: 4}, {X: -1, Y: 2}})
	assert.ErrorIs(t, err, internal.ErrDegenerateGeometry)
}
