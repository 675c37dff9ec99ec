// Package advanced exposes the phases of the art gallery pipeline one at a
// time, for callers that want to look at (or draw) the mesh in between.
//
// The phases must run in order: NewMesh, PartitionMonotone,
// TriangulateMonotones, BuildDualGraph, ThreeColor. Each one takes ownership of
// the mesh while it runs; nothing here is safe for concurrent use.
package advanced

import (
	"github.com/osuushi/artgallery/internal"
	"go.uber.org/zap"
)

type Point = internal.Point
type Mesh = internal.Mesh
type Vertex = internal.Vertex
type HalfEdge = internal.HalfEdge
type Face = internal.Face
type VertexID = internal.VertexID
type HalfEdgeID = internal.HalfEdgeID
type FaceID = internal.FaceID
type Diagonal = internal.Diagonal
type VertexType = internal.VertexType
type DualGraph = internal.DualGraph
type Color = internal.Color
type DrawOptions = internal.DrawOptions

const OuterFace = internal.OuterFace

var (
	ErrInvalidInput       = internal.ErrInvalidInput
	ErrUndefinedDiagonal  = internal.ErrUndefinedDiagonal
	ErrDegenerateGeometry = internal.ErrDegenerateGeometry
)

// Wrap a phase so that contract violations come back as errors.
func guard(fn func()) (err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}

// Build a mesh from a counterclockwise simple polygon.
func NewMesh(points []*Point) (*Mesh, error) {
	return internal.NewMesh(points)
}

// Add a single diagonal. Vertices that share no face give
// ErrUndefinedDiagonal, and the mesh is left untouched.
func AddDiagonal(m *Mesh, v1, v2 VertexID) (e HalfEdgeID, err error) {
	err = guard(func() {
		e = m.AddDiagonal(v1, v2)
	})
	return e, err
}

func Classify(m *Mesh) []VertexType {
	return internal.Classify(m)
}

// Split a freshly built mesh into y-monotone faces.
func PartitionMonotone(m *Mesh, logger *zap.Logger) (diagonals []Diagonal, err error) {
	err = guard(func() {
		diagonals = internal.PartitionMonotone(m, logger)
	})
	return diagonals, err
}

// Triangulate every face of a mesh whose faces are all y-monotone.
func TriangulateMonotones(m *Mesh, logger *zap.Logger) (diagonals []Diagonal, err error) {
	err = guard(func() {
		diagonals = internal.TriangulateMonotones(m, logger)
	})
	return diagonals, err
}

func BuildDualGraph(m *Mesh, logger *zap.Logger) (g *DualGraph, err error) {
	err = guard(func() {
		g = internal.BuildDualGraph(m, logger)
	})
	return g, err
}

// Color the triangulation's vertices and return the guards.
func ThreeColor(g *DualGraph) (color Color, guards []VertexID, err error) {
	err = guard(func() {
		g.ThreeColor()
		color, guards = g.Guards()
	})
	return color, guards, err
}

func SavePNG(m *Mesh, opts DrawOptions, path string) error {
	return guardErr(func() error {
		return internal.SavePNG(m, opts, path)
	})
}

func guardErr(fn func() error) (err error) {
	if guardedErr := guard(func() { err = fn() }); guardedErr != nil {
		return guardedErr
	}
	return err
}
