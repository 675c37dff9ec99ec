package internal

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/artgallery/internal/dbg"
)

// Table dumps of the mesh for debugging.

// Render a vertex color as a colored word.
func (c Color) Colorize(au aurora.Aurora) string {
	switch c {
	case Red:
		return au.Red(c.String()).String()
	case Green:
		return au.Green(c.String()).String()
	case Blue:
		return au.Blue(c.String()).String()
	}
	return au.Gray(12, c.String()).String()
}

func faceName(f FaceID) string {
	if f == OuterFace {
		return "exterior"
	}
	return fmt.Sprintf("%d %s", f, dbg.Name("face", int(f)))
}

// Write the vertex, half-edge and face tables. Pass colors=false for plain
// output.
func (m *Mesh) Dump(w io.Writer, colors bool) error {
	au := aurora.NewAurora(colors)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, au.Bold("Vertices"))
	fmt.Fprintln(tw, "id\tpoint\tedges\tchain\tcolor")
	for _, v := range m.Vertices {
		fmt.Fprintf(tw, "%d\t%v\t%v\t%s\t%s\n", v.ID, v.Point, v.Edges, v.Chain, v.Color.Colorize(au))
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, au.Bold("Half-edges"))
	fmt.Fprintln(tw, "id\torigin\ttwin\tprev\tnext\tface")
	for _, he := range m.HalfEdges {
		fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%s\n", he.ID, he.Origin, he.Twin, he.Prev, he.Next, faceName(he.Face))
	}

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, au.Bold("Faces"))
	fmt.Fprintln(tw, "face\touter\tinner\tvertices\tcentroid")
	for _, face := range m.Faces {
		centroid := "-"
		if face.HasCentroid {
			centroid = face.Centroid.String()
		}
		var vertices interface{} = "-"
		if face.ID != OuterFace {
			vertices = m.VerticesOfFace(face.ID)
		}
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%s\n", faceName(face.ID), face.OuterComponent, face.InnerComponents, vertices, centroid)
	}
	return tw.Flush()
}

// Write the vertex classification found by the partitioner.
func DumpTypes(w io.Writer, m *Mesh, types []VertexType, colors bool) error {
	au := aurora.NewAurora(colors)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "vertex\tpoint\ttype")
	for i, t := range types {
		name := t.String()
		switch t {
		case SplitVertex, MergeVertex:
			name = au.Yellow(name).String()
		case StartVertex, EndVertex:
			name = au.Cyan(name).String()
		}
		fmt.Fprintf(tw, "%d\t%v\t%s\n", i, m.Point(VertexID(i)), name)
	}
	return tw.Flush()
}
