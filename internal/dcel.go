package internal

import (
	"sort"

	"github.com/pkg/errors"
)

// A doubly connected edge list for a simple polygon and its subdivisions.
//
// Everything lives in three arenas and links are indices into them, rather
// than pointers. The structure is full of cycles (next/prev around every face,
// twin pairs), and indices keep it trivially copyable and easy to validate.
//
// Orientation convention: every bounded face is walked counterclockwise via
// Next, so its interior is always on the left of each of its half-edges. The
// exterior face is walked clockwise.

type Vertex struct {
	ID    VertexID
	Point *Point
	// Half-edges whose origin is this vertex, excluding edges on the exterior
	// face. The first entry is always the vertex's original boundary edge.
	// Diagonals append to this.
	Edges []HalfEdgeID
	// Scratch tag used while triangulating a monotone face
	Chain Chain
	Color Color
}

type HalfEdge struct {
	ID     HalfEdgeID
	Origin VertexID
	Twin   HalfEdgeID
	Next   HalfEdgeID
	Prev   HalfEdgeID
	// The face on the left when walking from Origin to Next's origin
	Face FaceID
}

type Face struct {
	ID FaceID
	// Any half-edge on the face's boundary. Unset for the exterior face.
	OuterComponent HalfEdgeID
	// Boundaries of holes. Only the exterior face uses this, to hold the
	// polygon's outside.
	InnerComponents []HalfEdgeID
	// Mean of the boundary vertices. Set by BuildDualGraph.
	Centroid    Point
	HasCentroid bool
}

type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face
}

// Build a mesh from a counterclockwise simple polygon.
//
// Half-edge i runs from vertex i to vertex i+1 along face 1 (the polygon), and
// half-edge n+i is its twin on the exterior face 0.
func NewMesh(points []*Point) (*Mesh, error) {
	n := len(points)
	if n < 3 {
		return nil, errors.Wrapf(ErrInvalidInput, "a polygon needs at least 3 vertices, got %d", n)
	}
	if area := SignedArea(points); area <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "polygon must wind counterclockwise with nonzero area (signed area %g)", area)
	}

	m := &Mesh{
		Vertices:  make([]Vertex, n),
		HalfEdges: make([]HalfEdge, 2*n),
		Faces: []Face{
			{ID: OuterFace, OuterComponent: NoHalfEdge, InnerComponents: []HalfEdgeID{HalfEdgeID(n)}},
			{ID: 1, OuterComponent: 0},
		},
	}

	for i, p := range points {
		next := CircularIndex(i+1, n)
		prev := CircularIndex(i-1, n)

		m.Vertices[i] = Vertex{
			ID:    VertexID(i),
			Point: p,
			Edges: []HalfEdgeID{HalfEdgeID(i)},
			Chain: LeftChain,
			Color: NoColor,
		}

		// Inside edge
		m.HalfEdges[i] = HalfEdge{
			ID:     HalfEdgeID(i),
			Origin: VertexID(i),
			Twin:   HalfEdgeID(n + i),
			Next:   HalfEdgeID(next),
			Prev:   HalfEdgeID(prev),
			Face:   1,
		}

		// Outside edge, running the opposite way
		m.HalfEdges[n+i] = HalfEdge{
			ID:     HalfEdgeID(n + i),
			Origin: VertexID(next),
			Twin:   HalfEdgeID(i),
			Next:   HalfEdgeID(n + prev),
			Prev:   HalfEdgeID(n + next),
			Face:   OuterFace,
		}
	}
	return m, nil
}

func (m *Mesh) Vertex(v VertexID) *Vertex {
	return &m.Vertices[v]
}

func (m *Mesh) HalfEdge(e HalfEdgeID) *HalfEdge {
	return &m.HalfEdges[e]
}

func (m *Mesh) Face(f FaceID) *Face {
	return &m.Faces[f]
}

func (m *Mesh) Point(v VertexID) *Point {
	return m.Vertices[v].Point
}

// Where the half-edge ends, which is where its twin starts.
func (m *Mesh) Destination(e HalfEdgeID) VertexID {
	return m.HalfEdges[m.HalfEdges[e].Twin].Origin
}

// Endpoints of a half-edge, as points.
func (m *Mesh) Segment(e HalfEdgeID) (start, end *Point) {
	return m.Point(m.HalfEdges[e].Origin), m.Point(m.Destination(e))
}

// Faces other than the exterior, in id order.
func (m *Mesh) BoundedFaces() []FaceID {
	faces := make([]FaceID, 0, len(m.Faces)-1)
	for _, face := range m.Faces {
		if face.ID != OuterFace {
			faces = append(faces, face.ID)
		}
	}
	return faces
}

// Walk the outer boundary of a face, in Next order.
func (m *Mesh) EdgesOfFace(f FaceID) []HalfEdgeID {
	start := m.Faces[f].OuterComponent
	if start == NoHalfEdge {
		return nil
	}
	var edges []HalfEdgeID
	e := start
	for {
		edges = append(edges, e)
		e = m.HalfEdges[e].Next
		if e == start {
			break
		}
		// A broken mesh could loop forever without ever coming back to start
		if len(edges) > len(m.HalfEdges) {
			fatalf("boundary walk of face %d does not close", f)
		}
	}
	return edges
}

func (m *Mesh) VerticesOfFace(f FaceID) []VertexID {
	edges := m.EdgesOfFace(f)
	vertices := make([]VertexID, len(edges))
	for i, e := range edges {
		vertices[i] = m.HalfEdges[e].Origin
	}
	return vertices
}

// The half-edge leaving v along face f, if v is on that face.
func (m *Mesh) EdgeOnFace(v VertexID, f FaceID) (HalfEdgeID, bool) {
	for _, e := range m.Vertices[v].Edges {
		if m.HalfEdges[e].Face == f {
			return e, true
		}
	}
	return NoHalfEdge, false
}

// The vertices immediately before and after v walking the boundary of f.
func (m *Mesh) Neighbors(v VertexID, f FaceID) (prev, next VertexID) {
	e, ok := m.EdgeOnFace(v, f)
	if !ok {
		fatalf("vertex %d is not on face %d", v, f)
	}
	he := m.HalfEdges[e]
	return m.HalfEdges[he.Prev].Origin, m.HalfEdges[he.Next].Origin
}

// Faces (other than the exterior) that both vertices lie on.
func (m *Mesh) CommonFaces(v1, v2 VertexID) []FaceID {
	var faces []FaceID
	for _, e1 := range m.Vertices[v1].Edges {
		f := m.HalfEdges[e1].Face
		if _, ok := m.EdgeOnFace(v2, f); ok {
			faces = append(faces, f)
		}
	}
	return faces
}

// Split a face in two by connecting two of its vertices. Returns the new
// half-edge running from the lower-id vertex to the higher-id one.
//
// The two vertices must share a face; otherwise this panics with
// ErrUndefinedDiagonal. If they share more than one face, the diagonal goes
// into the face it is a valid diagonal of. The boundary loop that starts with
// the half-edge leaving the higher-id vertex becomes the new face, and the
// other loop keeps the old face's id.
func (m *Mesh) AddDiagonal(v1, v2 VertexID) HalfEdgeID {
	if v1 > v2 {
		v1, v2 = v2, v1
	}
	if v1 == v2 {
		fatalWrap(ErrUndefinedDiagonal, "cannot connect vertex %d to itself", v1)
	}

	f := m.diagonalFace(v1, v2)
	e1, _ := m.EdgeOnFace(v1, f)
	e2, _ := m.EdgeOnFace(v2, f)
	before1 := m.HalfEdges[e1].Prev
	before2 := m.HalfEdges[e2].Prev

	d := HalfEdgeID(len(m.HalfEdges))
	dTwin := d + 1
	m.HalfEdges = append(m.HalfEdges,
		HalfEdge{ID: d, Origin: v1, Twin: dTwin, Next: e2, Prev: before1, Face: f},
		HalfEdge{ID: dTwin, Origin: v2, Twin: d, Next: e1, Prev: before2, Face: f},
	)

	// Splice. The loop d, e2, ..., before1 stays on the old face, and the loop
	// dTwin, e1, ..., before2 becomes the new one.
	m.HalfEdges[before1].Next = d
	m.HalfEdges[e2].Prev = d
	m.HalfEdges[before2].Next = dTwin
	m.HalfEdges[e1].Prev = dTwin

	newFace := FaceID(len(m.Faces))
	m.Faces = append(m.Faces, Face{ID: newFace, OuterComponent: dTwin})
	m.Faces[f].OuterComponent = d

	e := dTwin
	for {
		m.HalfEdges[e].Face = newFace
		e = m.HalfEdges[e].Next
		if e == dTwin {
			break
		}
	}

	m.Vertices[v1].Edges = append(m.Vertices[v1].Edges, d)
	m.Vertices[v2].Edges = append(m.Vertices[v2].Edges, dTwin)
	return d
}

func (m *Mesh) diagonalFace(v1, v2 VertexID) FaceID {
	faces := m.CommonFaces(v1, v2)
	switch len(faces) {
	case 0:
		fatalWrap(ErrUndefinedDiagonal, "vertices %d and %d share no face", v1, v2)
	case 1:
		return faces[0]
	}
	for _, f := range faces {
		if m.DiagonalIsValid(v1, v2, f) {
			return f
		}
	}
	fatalWrap(ErrUndefinedDiagonal, "vertices %d and %d share faces %v but the diagonal lies in none of them", v1, v2, faces)
	return NoFace
}

// Check the structural invariants: twins pair up, next and prev agree, every
// face's boundary closes, and every half-edge on that boundary is labelled with
// the face.
func (m *Mesh) Validate() error {
	for i, he := range m.HalfEdges {
		id := HalfEdgeID(i)
		if he.ID != id {
			return errors.Errorf("half-edge at index %d has id %d", i, he.ID)
		}
		if he.Twin == id || m.HalfEdges[he.Twin].Twin != id {
			return errors.Errorf("half-edge %d: twin's twin is not itself", id)
		}
		if m.HalfEdges[he.Next].Prev != id {
			return errors.Errorf("half-edge %d: next's prev is not itself", id)
		}
		if m.HalfEdges[he.Prev].Next != id {
			return errors.Errorf("half-edge %d: prev's next is not itself", id)
		}
		if m.HalfEdges[he.Next].Origin != m.Destination(id) {
			return errors.Errorf("half-edge %d: next does not start where it ends", id)
		}
	}

	seen := make(map[HalfEdgeID]FaceID, len(m.HalfEdges))
	for _, face := range m.Faces {
		starts := face.InnerComponents
		if face.OuterComponent != NoHalfEdge {
			starts = append([]HalfEdgeID{face.OuterComponent}, starts...)
		}
		for _, start := range starts {
			e := start
			for steps := 0; ; steps++ {
				if steps > len(m.HalfEdges) {
					return errors.Errorf("face %d: boundary walk does not close", face.ID)
				}
				if m.HalfEdges[e].Face != face.ID {
					return errors.Errorf("face %d: half-edge %d is labelled with face %d", face.ID, e, m.HalfEdges[e].Face)
				}
				if other, ok := seen[e]; ok && other != face.ID {
					return errors.Errorf("half-edge %d is on faces %d and %d", e, other, face.ID)
				}
				seen[e] = face.ID
				e = m.HalfEdges[e].Next
				if e == start {
					break
				}
			}
		}
	}
	if len(seen) != len(m.HalfEdges) {
		return errors.Errorf("%d of %d half-edges are not reachable from any face", len(m.HalfEdges)-len(seen), len(m.HalfEdges))
	}

	for _, v := range m.Vertices {
		for _, e := range v.Edges {
			if m.HalfEdges[e].Origin != v.ID {
				return errors.Errorf("vertex %d owns half-edge %d, which starts at %d", v.ID, e, m.HalfEdges[e].Origin)
			}
		}
	}
	return nil
}

// Sort vertex ids top to bottom in sweep order. The sort is stable, so
// duplicate points stay in id order.
func (m *Mesh) SortByAbove(vertices []VertexID) {
	sort.SliceStable(vertices, func(i, j int) bool {
		return m.Point(vertices[i]).Above(m.Point(vertices[j]))
	})
}

// Is the face y-monotone? Walking the boundary, a monotone face turns from
// going down to going up exactly once, and back exactly once.
func (m *Mesh) IsMonotone(f FaceID) bool {
	vertices := m.VerticesOfFace(f)
	n := len(vertices)
	var maxima, minima int
	for i, v := range vertices {
		p := m.Point(v)
		prev := m.Point(vertices[CircularIndex(i-1, n)])
		next := m.Point(vertices[CircularIndex(i+1, n)])
		if p.Above(prev) && p.Above(next) {
			maxima++
		}
		if p.Below(prev) && p.Below(next) {
			minima++
		}
	}
	return maxima == 1 && minima == 1
}

func (m *Mesh) FacePolygon(f FaceID) Polygon {
	vertices := m.VerticesOfFace(f)
	points := make([]*Point, len(vertices))
	for i, v := range vertices {
		points[i] = m.Point(v)
	}
	return Polygon{Points: points}
}

func (m *Mesh) FaceArea(f FaceID) float64 {
	poly := m.FacePolygon(f)
	return poly.SignedArea()
}

// The outline of the original polygon, in vertex order.
func (m *Mesh) Polygon() Polygon {
	points := make([]*Point, len(m.Vertices))
	for i := range m.Vertices {
		points[i] = m.Vertices[i].Point
	}
	return Polygon{Points: points}
}

// Read the bounded faces back out as triangles. Panics if a face isn't one.
func (m *Mesh) Triangles() []*Triangle {
	triangles := make([]*Triangle, 0, len(m.Faces)-1)
	for _, f := range m.BoundedFaces() {
		vertices := m.VerticesOfFace(f)
		if len(vertices) != 3 {
			fatalWrap(ErrDegenerateGeometry, "face %d has %d vertices", f, len(vertices))
		}
		triangles = append(triangles, &Triangle{m.Point(vertices[0]), m.Point(vertices[1]), m.Point(vertices[2])})
	}
	return triangles
}

// Number of edges that are not on the polygon's boundary, counted once per
// pair of half-edges.
func (m *Mesh) DiagonalCount() int {
	return (len(m.HalfEdges) - 2*len(m.Vertices)) / 2
}
