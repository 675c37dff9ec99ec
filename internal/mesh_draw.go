package internal

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the shape so that vertices on the bounding box aren't clipped
const drawPadding = 40

const guardRadius = 6

type DrawOptions struct {
	// Pixels per unit
	Scale float64
	// The dual graph to overlay, if any. Faces must have centroids.
	Dual *DualGraph
	// Ring the vertices of this color as guards. NoColor disables.
	GuardColor Color
}

// Bounding box of all vertices.
func (m *Mesh) Bounds() r2.Rect {
	points := make([]r2.Point, len(m.Vertices))
	for i, v := range m.Vertices {
		points[i] = r2.Point{X: v.Point.X, Y: v.Point.Y}
	}
	return r2.RectFromPoints(points...)
}

// Draw the mesh: filled faces, boundary and diagonals, vertex colors, and
// optionally the dual graph and guards.
func DrawMesh(m *Mesh, opts DrawOptions) *gg.Context {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	bounds := m.Bounds()
	width := int(scale*bounds.X.Length()) + drawPadding*2
	height := int(scale*bounds.Y.Length()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad, scale and
	// move the bounding box to the origin
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-bounds.X.Lo, -bounds.Y.Lo)

	// Faces, filled with alternating tints so splits are visible
	for i, f := range m.BoundedFaces() {
		drawFacePath(c, m, f)
		if i%2 == 0 {
			c.SetRGBA(0.3, 0.2, 1, 0.5)
		} else {
			c.SetRGBA(0.2, 0.6, 0.9, 0.5)
		}
		c.Fill()
	}

	// Edges. Boundary in cyan, diagonals in green. Each pair is drawn once.
	c.SetLineWidth(2 / scale)
	n := len(m.Vertices)
	for i := 0; i < len(m.HalfEdges); i++ {
		e := HalfEdgeID(i)
		if m.HalfEdges[e].Twin < e {
			continue
		}
		start, end := m.Segment(e)
		c.MoveTo(start.X, start.Y)
		c.LineTo(end.X, end.Y)
		if i < n {
			c.SetRGB(0, 1, 1)
		} else {
			c.SetRGB(0, 0.8, 0)
		}
		c.Stroke()
	}

	if opts.Dual != nil {
		c.SetRGB(1, 0.3, 0.3)
		for _, f := range opts.Dual.Faces() {
			from := m.Faces[f].Centroid
			c.DrawCircle(from.X, from.Y, 3/scale)
			c.Fill()
			for _, neighbor := range opts.Dual.Neighbors(f) {
				if neighbor < f {
					continue
				}
				to := m.Faces[neighbor].Centroid
				c.MoveTo(from.X, from.Y)
				c.LineTo(to.X, to.Y)
				c.Stroke()
			}
		}
	}

	for _, v := range m.Vertices {
		r, g, b := vertexRGB(v.Color)
		c.SetRGB(r, g, b)
		c.DrawCircle(v.Point.X, v.Point.Y, 4/scale)
		c.Fill()
		if opts.GuardColor != NoColor && v.Color == opts.GuardColor {
			c.SetRGB(1, 1, 0)
			c.DrawCircle(v.Point.X, v.Point.Y, guardRadius/scale)
			c.Stroke()
		}
	}
	return c
}

func drawFacePath(c *gg.Context, m *Mesh, f FaceID) {
	vertices := m.VerticesOfFace(f)
	first := m.Point(vertices[0])
	c.MoveTo(first.X, first.Y)
	for _, v := range vertices[1:] {
		p := m.Point(v)
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}

func vertexRGB(color Color) (r, g, b float64) {
	switch color {
	case Red:
		return 1, 0.2, 0.2
	case Green:
		return 0.2, 1, 0.2
	case Blue:
		return 0.3, 0.5, 1
	}
	return 1, 1, 1
}

// Scale that fits the mesh's larger dimension into roughly size pixels.
func FitScale(m *Mesh, size float64) float64 {
	bounds := m.Bounds()
	extent := math.Max(bounds.X.Length(), bounds.Y.Length())
	if extent == 0 {
		return 1
	}
	return size / extent
}

func SavePNG(m *Mesh, opts DrawOptions, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	c := DrawMesh(m, opts)
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	return nil
}

// Print a PNG inline in the terminal (iTerm only).
func CatPNG(path string, w io.Writer) error {
	if _, err := os.Stat(path); err != nil {
		return errors.Wrapf(err, "printing %s", path)
	}
	imgcat.CatFile(path, w)
	return nil
}

// Helper to draw and print the mesh in the terminal for debugging.
func (m *Mesh) dbgDraw(scale float64) {
	path := filepath.Join(os.TempDir(), "mesh.png")
	if err := SavePNG(m, DrawOptions{Scale: scale, GuardColor: NoColor}, path); err != nil {
		return
	}
	_ = CatPNG(path, os.Stdout)
}
