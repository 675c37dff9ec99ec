package internal

import (
	"go.uber.org/zap"
)

// Splitting a simple polygon into y-monotone pieces with a sweep line, top to
// bottom. This is the classic helper-based sweep: each vertex is classified by
// the shape of the boundary around it, and split and merge vertices (the only
// ones that break monotonicity) get connected by diagonals to the "helper" of
// the edge to their left.
//
// Convention: the polygon is counterclockwise, so the boundary runs down the
// left side and up the right. The status only ever holds edges with the
// polygon's interior on their right, which are exactly the edges walked
// downward. Ties in y are broken by the sweep order (Point.Above) everywhere,
// so horizontal edges need no special casing.

type VertexType int

const (
	StartVertex VertexType = iota
	EndVertex
	SplitVertex
	MergeVertex
	// On the left chain, with the interior to its right
	RegularLeftVertex
	// On the right chain, with the interior to its left
	RegularRightVertex
)

func (t VertexType) String() string {
	switch t {
	case StartVertex:
		return "start"
	case EndVertex:
		return "end"
	case SplitVertex:
		return "split"
	case MergeVertex:
		return "merge"
	case RegularLeftVertex:
		return "regular_left"
	case RegularRightVertex:
		return "regular_right"
	}
	return "unknown"
}

// A diagonal between two vertices, stored with the lower id first so that the
// same diagonal always compares equal.
type Diagonal struct {
	A, B VertexID
}

func NewDiagonal(a, b VertexID) Diagonal {
	if a > b {
		a, b = b, a
	}
	return Diagonal{a, b}
}

// Classify one vertex of the original polygon boundary.
func ClassifyVertex(prev, p, next *Point) VertexType {
	aboveNeighbors := p.Above(prev) && p.Above(next)
	belowNeighbors := p.Below(prev) && p.Below(next)
	convex := Left(prev, p, next)

	switch {
	case aboveNeighbors && convex:
		return StartVertex
	case aboveNeighbors:
		return SplitVertex
	case belowNeighbors && convex:
		return EndVertex
	case belowNeighbors:
		return MergeVertex
	case prev.Above(p):
		// Walking down means we're on the left chain
		return RegularLeftVertex
	default:
		return RegularRightVertex
	}
}

// Classify every vertex by its neighbors on the original boundary.
func Classify(m *Mesh) []VertexType {
	n := len(m.Vertices)
	types := make([]VertexType, n)
	for i := range m.Vertices {
		prev := m.Vertices[CircularIndex(i-1, n)].Point
		next := m.Vertices[CircularIndex(i+1, n)].Point
		types[i] = ClassifyVertex(prev, m.Vertices[i].Point, next)
	}
	return types
}

type Partitioner struct {
	Mesh   *Mesh
	Logger *zap.Logger

	types  []VertexType
	status *StatusTree
	// The helper of each edge in the status. This only means anything during
	// the sweep, so it lives here and not on the edges.
	helpers   map[HalfEdgeID]VertexID
	diagonals []Diagonal
	seen      map[Diagonal]struct{}
}

func NewPartitioner(m *Mesh, logger *zap.Logger) *Partitioner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Partitioner{
		Mesh:    m,
		Logger:  logger,
		status:  NewStatusTree(m),
		helpers: make(map[HalfEdgeID]VertexID),
		seen:    make(map[Diagonal]struct{}),
	}
}

// Split the mesh's polygon into y-monotone faces. The mesh must be freshly
// built, with only the polygon and the exterior. Returns the diagonals that
// were added.
func PartitionMonotone(m *Mesh, logger *zap.Logger) []Diagonal {
	p := NewPartitioner(m, logger)
	p.Sweep()
	return p.Apply()
}

// The vertex types found by the last sweep.
func (p *Partitioner) Types() []VertexType {
	return p.types
}

// Run the sweep and record diagonals, without touching the mesh. Diagonals are
// only added to the mesh afterwards by Apply, because splitting faces midway
// would change which half-edges the status refers to.
func (p *Partitioner) Sweep() {
	m := p.Mesh
	if len(m.Faces) != 2 {
		fatalf("can only partition an unsplit polygon, mesh has %d faces", len(m.Faces))
	}
	p.types = Classify(m)

	order := make([]VertexID, len(m.Vertices))
	for i := range order {
		order[i] = VertexID(i)
	}
	m.SortByAbove(order)

	for _, v := range order {
		p.status.SetSweepLineY(m.Point(v).Y)
		t := p.types[v]
		p.Logger.Debug("sweep vertex",
			zap.Int("vertex", int(v)),
			zap.Stringer("type", t),
			zap.Stringer("point", m.Point(v)),
			zap.Int("status", p.status.Len()),
		)

		switch t {
		case StartVertex:
			p.handleStart(v)
		case EndVertex:
			p.handleEnd(v)
		case SplitVertex:
			p.handleSplit(v)
		case MergeVertex:
			p.handleMerge(v)
		case RegularLeftVertex:
			p.handleRegularLeft(v)
		case RegularRightVertex:
			p.handleRegularRight(v)
		default:
			fatalf("vertex %d has unknown type %d", v, t)
		}
	}
}

// Add the recorded diagonals to the mesh, in the order they were found.
func (p *Partitioner) Apply() []Diagonal {
	for _, d := range p.diagonals {
		p.Mesh.AddDiagonal(d.A, d.B)
	}
	p.Logger.Info("monotone partition complete",
		zap.Int("vertices", len(p.Mesh.Vertices)),
		zap.Int("diagonals", len(p.diagonals)),
		zap.Int("faces", len(p.Mesh.Faces)-1),
	)
	return p.diagonals
}

func (p *Partitioner) Diagonals() []Diagonal {
	return p.diagonals
}

// The boundary edge leaving v, which is the edge below v when v is on the left
// chain.
func (p *Partitioner) outgoing(v VertexID) HalfEdgeID {
	return p.Mesh.Vertices[v].Edges[0]
}

// The boundary edge arriving at v.
func (p *Partitioner) incoming(v VertexID) HalfEdgeID {
	return p.Mesh.HalfEdges[p.outgoing(v)].Prev
}

func (p *Partitioner) helperIsMerge(e HalfEdgeID) (VertexID, bool) {
	helper, ok := p.helpers[e]
	if !ok {
		return NoVertex, false
	}
	return helper, p.types[helper] == MergeVertex
}

func (p *Partitioner) record(a, b VertexID) {
	d := NewDiagonal(a, b)
	if _, ok := p.seen[d]; ok {
		return
	}
	p.seen[d] = struct{}{}
	p.diagonals = append(p.diagonals, d)
	p.Logger.Debug("diagonal", zap.Int("a", int(d.A)), zap.Int("b", int(d.B)))
}

func (p *Partitioner) insert(e HalfEdgeID, helper VertexID) {
	p.status.Insert(e)
	p.helpers[e] = helper
}

func (p *Partitioner) remove(e HalfEdgeID) {
	if !p.status.Delete(e) {
		fatalWrap(ErrDegenerateGeometry, "edge %d is not in the sweep status", e)
	}
	delete(p.helpers, e)
}

func (p *Partitioner) leftNeighbor(v VertexID) HalfEdgeID {
	e := p.status.FindLeftNeighbor(v)
	if e == NoHalfEdge {
		fatalWrap(ErrDegenerateGeometry, "no edge left of %s vertex %d at %v", p.types[v], v, p.Mesh.Point(v))
	}
	return e
}

// If the edge's helper is a merge vertex, connect it to v.
func (p *Partitioner) fixUp(v VertexID, e HalfEdgeID) {
	if helper, ok := p.helperIsMerge(e); ok {
		p.record(helper, v)
	}
}

func (p *Partitioner) handleStart(v VertexID) {
	p.insert(p.outgoing(v), v)
}

func (p *Partitioner) handleEnd(v VertexID) {
	e := p.incoming(v)
	p.fixUp(v, e)
	p.remove(e)
}

func (p *Partitioner) handleSplit(v VertexID) {
	left := p.leftNeighbor(v)
	// A split vertex always gets a diagonal, whatever its helper is
	p.record(p.helpers[left], v)
	p.helpers[left] = v
	p.insert(p.outgoing(v), v)
}

func (p *Partitioner) handleMerge(v VertexID) {
	e := p.incoming(v)
	p.fixUp(v, e)
	p.remove(e)

	left := p.leftNeighbor(v)
	p.fixUp(v, left)
	p.helpers[left] = v
}

func (p *Partitioner) handleRegularLeft(v VertexID) {
	e := p.incoming(v)
	p.fixUp(v, e)
	p.remove(e)
	p.insert(p.outgoing(v), v)
}

func (p *Partitioner) handleRegularRight(v VertexID) {
	left := p.leftNeighbor(v)
	p.fixUp(v, left)
	p.helpers[left] = v
}
