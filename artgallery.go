// Art gallery guarding for simple polygons.
//
// This package triangulates a simple polygon and three-colors its vertices so
// that every triangle has one vertex of each color. Guards placed on the
// vertices of the smallest color class see the whole polygon, which is at most
// floor(n/3) guards for n vertices.
//
// The triangulation goes through a doubly connected edge list: a sweep line
// splits the polygon into y-monotone faces, each monotone face is triangulated
// with a stack, and the coloring walks the dual graph of the triangles. See
// the advanced package to run the phases one at a time.
package artgallery

import (
	"github.com/osuushi/artgallery/internal"
	"go.uber.org/zap"
)

type Point = internal.Point
type Triangle = internal.Triangle
type Mesh = internal.Mesh
type Gallery = internal.Gallery
type Color = internal.Color
type Options = internal.Options
type Phase = internal.Phase

// Triangulate and color a simple polygon, returning the finished mesh and the
// guard placement.
//
// The polygon must be simple. Points may be given in either winding order; a
// clockwise polygon is reversed first, so vertex ids then count from the end
// of the input. Fewer than three points, or zero area, is an error.
func Guard(points []*Point) (*Gallery, error) {
	return GuardWithLogger(points, nil)
}

// Like Guard, logging each phase to logger.
func GuardWithLogger(points []*Point, logger *zap.Logger) (*Gallery, error) {
	return GuardWithOptions(points, Options{Logger: logger})
}

// Like Guard, with a logger and a callback run after each phase.
func GuardWithOptions(points []*Point, opts Options) (result *Gallery, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return internal.Process(normalize(points), opts)
}

// Triangulate a simple polygon, without coloring.
func Triangulate(points []*Point) (result []*Triangle, err error) {
	defer func() {
		recoveredErr := internal.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	m, err := internal.NewMesh(normalize(points))
	if err != nil {
		return nil, err
	}
	internal.PartitionMonotone(m, nil)
	internal.TriangulateMonotones(m, nil)
	return m.Triangles(), nil
}

func normalize(points []*Point) []*Point {
	poly := internal.Polygon{Points: points}
	if len(points) >= 3 && !poly.IsCCW() {
		return poly.Reverse().Points
	}
	return points
}
