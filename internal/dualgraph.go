package internal

import (
	"go.uber.org/zap"
)

// The dual graph of a subdivided polygon has a node per bounded face and an
// edge between faces that share a boundary edge. For a triangulated simple
// polygon it is a tree, which is what makes the greedy three-coloring below
// work: walking it depth first, each new triangle shares two already-colored
// vertices with its parent, leaving exactly one color for the third.

type DualGraph struct {
	Mesh      *Mesh
	Adjacency map[FaceID]FaceSet
	Logger    *zap.Logger
}

// Build the adjacency of the mesh's bounded faces, setting every face's
// centroid along the way.
func BuildDualGraph(m *Mesh, logger *zap.Logger) *DualGraph {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &DualGraph{
		Mesh:      m,
		Adjacency: make(map[FaceID]FaceSet, len(m.Faces)-1),
		Logger:    logger,
	}

	for _, f := range m.BoundedFaces() {
		adjacent := make(FaceSet)
		var sumX, sumY float64
		edges := m.EdgesOfFace(f)
		for _, e := range edges {
			he := m.HalfEdges[e]
			if twinFace := m.HalfEdges[he.Twin].Face; twinFace != OuterFace {
				adjacent.Add(twinFace)
			}
			p := m.Point(he.Origin)
			sumX += p.X
			sumY += p.Y
		}
		count := float64(len(edges))
		face := &m.Faces[f]
		face.Centroid = Point{X: sumX / count, Y: sumY / count}
		face.HasCentroid = true
		g.Adjacency[f] = adjacent
	}
	return g
}

// Neighbors of a face in ascending id order.
func (g *DualGraph) Neighbors(f FaceID) []FaceID {
	return g.Adjacency[f].Sorted()
}

// Faces in ascending id order.
func (g *DualGraph) Faces() []FaceID {
	faces := make(FaceSet, len(g.Adjacency))
	for f := range g.Adjacency {
		faces.Add(f)
	}
	return faces.Sorted()
}

// Number of dual edges, each counted once.
func (g *DualGraph) EdgeCount() int {
	var count int
	for _, adjacent := range g.Adjacency {
		count += len(adjacent)
	}
	return count / 2
}

// Color every vertex of the triangulation with one of three colors so that
// each triangle gets all three. Every bounded face must be a triangle and the
// dual graph connected.
func (g *DualGraph) ThreeColor() {
	faces := g.Faces()
	if len(faces) == 0 {
		return
	}
	visited := make(FaceSet, len(faces))
	g.colorFrom(faces[0], visited)

	if len(visited) != len(faces) {
		fatalWrap(ErrDegenerateGeometry, "dual graph is disconnected: reached %d of %d faces", len(visited), len(faces))
	}
	g.Logger.Info("three-coloring complete", zap.Int("faces", len(faces)))
}

func (g *DualGraph) colorFrom(f FaceID, visited FaceSet) {
	visited.Add(f)
	g.colorFace(f)
	for _, neighbor := range g.Neighbors(f) {
		if !visited.Contains(neighbor) {
			g.colorFrom(neighbor, visited)
		}
	}
}

func (g *DualGraph) colorFace(f FaceID) {
	m := g.Mesh
	vertices := m.VerticesOfFace(f)
	if len(vertices) != 3 {
		fatalWrap(ErrDegenerateGeometry, "face %d has %d vertices, can only color triangles", f, len(vertices))
	}

	used := make(map[Color]struct{}, 3)
	for _, v := range vertices {
		if c := m.Vertices[v].Color; c != NoColor {
			used[c] = struct{}{}
		}
	}
	for _, v := range vertices {
		if m.Vertices[v].Color != NoColor {
			continue
		}
		for _, c := range Palette {
			if _, ok := used[c]; !ok {
				m.Vertices[v].Color = c
				used[c] = struct{}{}
				break
			}
		}
		g.Logger.Debug("colored vertex",
			zap.Int("face", int(f)),
			zap.Int("vertex", int(v)),
			zap.Stringer("color", m.Vertices[v].Color),
		)
	}
}

// Vertices grouped by color, in palette order.
func (g *DualGraph) ColorClasses() [3][]VertexID {
	var classes [3][]VertexID
	for _, v := range g.Mesh.Vertices {
		if v.Color == NoColor {
			continue
		}
		classes[v.Color] = append(classes[v.Color], v.ID)
	}
	return classes
}

// The smallest color class. Guards on these vertices see the whole polygon.
// Ties go to the earlier color in the palette.
func (g *DualGraph) Guards() (Color, []VertexID) {
	classes := g.ColorClasses()
	best := Palette[0]
	for _, c := range Palette[1:] {
		if len(classes[c]) < len(classes[best]) {
			best = c
		}
	}
	return best, classes[best]
}
