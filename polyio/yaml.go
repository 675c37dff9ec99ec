package polyio

import (
	"io"

	"github.com/osuushi/artgallery/internal"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Polygon file layout:
//
//	points:
//	  - [10.07, 10]
//	  - [6.98, 9.51]
//	  - ...
type PolygonFile struct {
	Points [][]float64 `yaml:"points"`
}

func ReadYAML(in io.Reader) ([]*Point, error) {
	var file PolygonFile
	if err := yaml.NewDecoder(in).Decode(&file); err != nil {
		return nil, errors.Wrap(err, "decoding polygon yaml")
	}
	points := make([]*Point, len(file.Points))
	for i, pair := range file.Points {
		if len(pair) != 2 {
			return nil, errors.Errorf("point %d has %d coordinates, expected 2", i, len(pair))
		}
		points[i] = &Point{X: pair[0], Y: pair[1]}
	}
	return points, nil
}

func WriteYAML(w io.Writer, points []*Point) error {
	file := PolygonFile{Points: make([][]float64, len(points))}
	for i, p := range points {
		file.Points[i] = []float64{p.X, p.Y}
	}
	return encode(w, file)
}

type ResultVertex struct {
	ID    int     `yaml:"id"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Type  string  `yaml:"type"`
	Color string  `yaml:"color"`
}

type ResultFace struct {
	ID        int       `yaml:"id"`
	Vertices  []int     `yaml:"vertices"`
	Centroid  []float64 `yaml:"centroid"`
	Neighbors []int     `yaml:"neighbors"`
}

// Everything a renderer or report needs from a finished run.
type Result struct {
	Vertices          []ResultVertex `yaml:"vertices"`
	MonotoneDiagonals [][]int        `yaml:"monotone_diagonals"`
	TriangleDiagonals [][]int        `yaml:"triangle_diagonals"`
	Faces             []ResultFace   `yaml:"faces"`
	GuardColor        string         `yaml:"guard_color"`
	Guards            []int          `yaml:"guards"`
	Area              float64        `yaml:"area"`
	AreaError         float64        `yaml:"area_error"`
}

func NewResult(g *internal.Gallery) *Result {
	m := g.Mesh
	result := &Result{
		GuardColor:        g.GuardColor.String(),
		MonotoneDiagonals: diagonalPairs(g.MonotoneDiagonals),
		TriangleDiagonals: diagonalPairs(g.TriangleDiagonals),
		AreaError:         g.AreaError(),
	}
	poly := m.Polygon()
	result.Area = poly.Area()

	for _, v := range m.Vertices {
		rv := ResultVertex{
			ID:    int(v.ID),
			X:     v.Point.X,
			Y:     v.Point.Y,
			Color: v.Color.String(),
		}
		if int(v.ID) < len(g.Types) {
			rv.Type = g.Types[v.ID].String()
		}
		result.Vertices = append(result.Vertices, rv)
	}

	for _, f := range m.BoundedFaces() {
		face := m.Faces[f]
		rf := ResultFace{ID: int(f)}
		for _, v := range m.VerticesOfFace(f) {
			rf.Vertices = append(rf.Vertices, int(v))
		}
		if face.HasCentroid {
			rf.Centroid = []float64{face.Centroid.X, face.Centroid.Y}
		}
		if g.Dual != nil {
			for _, neighbor := range g.Dual.Neighbors(f) {
				rf.Neighbors = append(rf.Neighbors, int(neighbor))
			}
		}
		result.Faces = append(result.Faces, rf)
	}

	for _, v := range g.Guards {
		result.Guards = append(result.Guards, int(v))
	}
	return result
}

func diagonalPairs(diagonals []internal.Diagonal) [][]int {
	pairs := make([][]int, len(diagonals))
	for i, d := range diagonals {
		pairs[i] = []int{int(d.A), int(d.B)}
	}
	return pairs
}

func WriteResult(w io.Writer, g *internal.Gallery) error {
	return encode(w, NewResult(g))
}

func encode(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(enc.Close(), "encoding yaml")
}
