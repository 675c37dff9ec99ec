package internal

// Tests for whether a segment between two vertices of a face is a diagonal of
// that face. These only read the mesh.

// Does the segment v1-v2 touch any boundary edge of f that isn't incident to
// v1 or v2?
func (m *Mesh) DiagonalCrossesBoundary(v1, v2 VertexID, f FaceID) bool {
	a, b := m.Point(v1), m.Point(v2)
	for _, e := range m.EdgesOfFace(f) {
		start := m.HalfEdges[e].Origin
		end := m.Destination(e)
		if start == v1 || start == v2 || end == v1 || end == v2 {
			continue
		}
		if SegmentsIntersect(a, b, m.Point(start), m.Point(end)) {
			return true
		}
	}
	return false
}

// Is b strictly inside the cone at a that faces into f? The cone is bounded by
// a's neighbors on f. When a is convex the cone is the wedge between them; when
// a is reflex it is everything except the exterior wedge.
func (m *Mesh) InVisibilityCone(a, b VertexID, f FaceID) bool {
	prev, next := m.Neighbors(a, f)
	pa, pb := m.Point(a), m.Point(b)
	pPrev, pNext := m.Point(prev), m.Point(next)

	if LeftOn(pa, pNext, pPrev) { // Convex at a
		return Left(pa, pb, pPrev) && Left(pb, pa, pNext)
	}
	// Reflex at a
	return !(LeftOn(pa, pb, pNext) && LeftOn(pb, pa, pPrev))
}

// The one test for whether a diagonal may be added between v1 and v2 inside f.
func (m *Mesh) DiagonalIsValid(v1, v2 VertexID, f FaceID) bool {
	if v1 == v2 {
		return false
	}
	if _, ok := m.EdgeOnFace(v1, f); !ok {
		return false
	}
	if _, ok := m.EdgeOnFace(v2, f); !ok {
		return false
	}
	return m.InVisibilityCone(v1, v2, f) &&
		m.InVisibilityCone(v2, v1, f) &&
		!m.DiagonalCrossesBoundary(v1, v2, f)
}
