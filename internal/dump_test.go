package internal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	g, err := Process(MShape(), Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Mesh.Dump(&buf, false))
	out := buf.String()
	for _, heading := range []string{"Vertices", "Half-edges", "Faces", "exterior"} {
		assert.Contains(t, out, heading)
	}
	assert.Contains(t, out, "(2, 2)")
	assert.Contains(t, out, "green")
	// Plain output has no escape codes
	assert.NotContains(t, out, "\x1b[")
	// One row per vertex, half-edge and face, plus headings
	rows := strings.Count(out, "\n")
	assert.Equal(t, 3*2+2+len(g.Mesh.Vertices)+len(g.Mesh.HalfEdges)+len(g.Mesh.Faces), rows)

	buf.Reset()
	require.NoError(t, DumpTypes(&buf, g.Mesh, g.Types, true))
	out = buf.String()
	assert.Contains(t, out, "regular_left")
	assert.Contains(t, out, "\x1b[")
}

func TestColorize(t *testing.T) {
	plain := aurora.NewAurora(false)
	assert.Equal(t, "red", Red.Colorize(plain))
	assert.Equal(t, "none", NoColor.Colorize(plain))
	assert.NotEqual(t, "blue", Blue.Colorize(aurora.NewAurora(true)))
}
