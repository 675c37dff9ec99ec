package internal

import "go.uber.org/zap"

// Facilities for triangulating the y-monotone faces of a mesh. A y-monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// The sweep order (Point.Above) is lexicographic, which simulates a slightly
// rotated coordinate system without horizontal segments. This is the same
// order the partitioner uses, so every face it produces is strictly monotone in
// this order.
//
// Note that faces are counterclockwise, so walking a face from its top vertex
// goes down the left chain first.

type Triangulator struct {
	Mesh   *Mesh
	Logger *zap.Logger

	diagonals []Diagonal
	seen      map[Diagonal]struct{}
}

func NewTriangulator(m *Mesh, logger *zap.Logger) *Triangulator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Triangulator{
		Mesh:   m,
		Logger: logger,
		seen:   make(map[Diagonal]struct{}),
	}
}

// Triangulate every bounded face, which must already be y-monotone. Returns the
// diagonals that were added.
func TriangulateMonotones(m *Mesh, logger *zap.Logger) []Diagonal {
	t := NewTriangulator(m, logger)
	for _, f := range m.BoundedFaces() {
		t.TriangulateFace(f)
	}
	return t.Apply()
}

// Add every recorded diagonal to the mesh.
func (t *Triangulator) Apply() []Diagonal {
	for _, d := range t.diagonals {
		t.Mesh.AddDiagonal(d.A, d.B)
	}
	t.Logger.Info("monotone triangulation complete",
		zap.Int("diagonals", len(t.diagonals)),
		zap.Int("triangles", len(t.Mesh.Faces)-1),
	)
	return t.diagonals
}

func (t *Triangulator) Diagonals() []Diagonal {
	return t.diagonals
}

// Record the diagonals that triangulate one monotone face. The mesh isn't
// changed until Apply.
func (t *Triangulator) TriangulateFace(f FaceID) {
	m := t.Mesh
	if f == OuterFace {
		fatalf("cannot triangulate the exterior face")
	}
	boundary := m.VerticesOfFace(f)
	n := len(boundary)
	if n < 3 {
		fatalWrap(ErrDegenerateGeometry, "cannot triangulate degenerate face %d with vertex count: %d", f, n)
	}
	if n == 3 {
		return
	}

	sorted := make([]VertexID, n)
	copy(sorted, boundary)
	m.SortByAbove(sorted)
	top := sorted[0]
	bottom := sorted[n-1]

	// Tag the chains. Everything strictly between the top and the bottom
	// walking forward is on the left chain, and everything after the bottom is
	// on the right.
	var topIndex int
	for i, v := range boundary {
		if v == top {
			topIndex = i
			break
		}
	}
	chain := LeftChain
	for i := 0; i < n; i++ {
		v := boundary[CircularIndex(topIndex+i, n)]
		switch v {
		case top:
			m.Vertices[v].Chain = ChainEnd
		case bottom:
			m.Vertices[v].Chain = ChainEnd
			chain = RightChain
		default:
			m.Vertices[v].Chain = chain
		}
	}
	chainOf := func(v VertexID) Chain {
		return m.Vertices[v].Chain
	}

	t.Logger.Debug("triangulating face",
		zap.Int("face", int(f)),
		zap.Int("vertices", n),
		zap.Int("top", int(top)),
		zap.Int("bottom", int(bottom)),
	)

	// Create the stack and populate it with the first two points
	stack := make(VertexStack, 0, n)
	stack.Push(sorted[0])
	stack.Push(sorted[1])

	// Iterate over the remainder of the sorted points, except the bottom
	for i := 2; i < n-1; i++ {
		u := sorted[i]
		if chainOf(u) != chainOf(stack.Peek()) { // Switched to the opposite chain
			// Monotonicity guarantees that everything on the stack is visible from
			// u, so empty the stack connecting u to each vertex. The last one popped
			// is u's neighbor, which the validity test rejects.
			for !stack.Empty() {
				t.connectIfValid(u, stack.Pop(), f)
			}
			// The previous vertex and the current one become the new reflex chain
			stack.Push(sorted[i-1])
			stack.Push(u)
		} else { // Same chain
			// Always pop the last vertex off. If we can't connect past it, we'll put
			// it back
			last := stack.Pop()
			for !stack.Empty() && m.DiagonalIsValid(u, stack.Peek(), f) {
				last = stack.Pop()
				t.record(u, last)
			}
			stack.Push(last)
			stack.Push(u)
		}
	}

	// Finally, connect the bottom to everything remaining on the stack except the
	// first and last entries, which are its neighbors
	for i := 1; i < len(stack)-1; i++ {
		t.connectIfValid(bottom, stack[i], f)
	}
}

func (t *Triangulator) connectIfValid(a, b VertexID, f FaceID) {
	if t.Mesh.DiagonalIsValid(a, b, f) {
		t.record(a, b)
	}
}

func (t *Triangulator) record(a, b VertexID) {
	d := NewDiagonal(a, b)
	if _, ok := t.seen[d]; ok {
		return
	}
	t.seen[d] = struct{}{}
	t.diagonals = append(t.diagonals, d)
}
