package internal

import (
	"math"

	"go.uber.org/zap"
)

// The whole pipeline: mesh, monotone partition, triangulation, dual graph,
// coloring. Each phase owns the mesh while it runs and hands it on to the next.

type Phase int

const (
	PhaseMesh Phase = iota
	PhasePartitioned
	PhaseTriangulated
	PhaseDualGraph
	PhaseColored
)

func (p Phase) String() string {
	switch p {
	case PhaseMesh:
		return "polygon"
	case PhasePartitioned:
		return "monotone"
	case PhaseTriangulated:
		return "triangulated"
	case PhaseDualGraph:
		return "dual"
	case PhaseColored:
		return "colored"
	}
	return "unknown"
}

type Options struct {
	Logger *zap.Logger
	// Called after each phase completes. The dual graph is nil until it's built.
	// Callbacks must not modify the mesh.
	OnPhase func(phase Phase, m *Mesh, g *DualGraph)
}

type Gallery struct {
	Mesh              *Mesh
	Types             []VertexType
	MonotoneDiagonals []Diagonal
	TriangleDiagonals []Diagonal
	Dual              *DualGraph
	GuardColor        Color
	Guards            []VertexID
}

// Run the full pipeline on a counterclockwise simple polygon. Contract
// violations deep in the geometry panic; callers outside this package should
// go through the root package, which recovers them.
func Process(points []*Point, opts Options) (*Gallery, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	onPhase := opts.OnPhase
	if onPhase == nil {
		onPhase = func(Phase, *Mesh, *DualGraph) {}
	}

	m, err := NewMesh(points)
	if err != nil {
		return nil, err
	}
	onPhase(PhaseMesh, m, nil)

	partitioner := NewPartitioner(m, logger)
	partitioner.Sweep()
	monotoneDiagonals := partitioner.Apply()
	onPhase(PhasePartitioned, m, nil)

	triangleDiagonals := TriangulateMonotones(m, logger)
	onPhase(PhaseTriangulated, m, nil)

	dual := BuildDualGraph(m, logger)
	onPhase(PhaseDualGraph, m, dual)

	dual.ThreeColor()
	guardColor, guards := dual.Guards()
	onPhase(PhaseColored, m, dual)

	logger.Info("guards placed",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("triangles", len(m.Faces)-1),
		zap.Stringer("color", guardColor),
		zap.Int("guards", len(guards)),
	)

	return &Gallery{
		Mesh:              m,
		Types:             partitioner.Types(),
		MonotoneDiagonals: monotoneDiagonals,
		TriangleDiagonals: triangleDiagonals,
		Dual:              dual,
		GuardColor:        guardColor,
		Guards:            guards,
	}, nil
}

func (g *Gallery) Triangles() []*Triangle {
	return g.Mesh.Triangles()
}

// Difference between the polygon's area and the summed area of its triangles.
func (g *Gallery) AreaError() float64 {
	var sum float64
	for _, tri := range g.Triangles() {
		sum += tri.Area()
	}
	poly := g.Mesh.Polygon()
	return math.Abs(poly.Area() - sum)
}

func (g *Gallery) GuardPoints() []*Point {
	points := make([]*Point, len(g.Guards))
	for i, v := range g.Guards {
		points[i] = g.Mesh.Point(v)
	}
	return points
}
