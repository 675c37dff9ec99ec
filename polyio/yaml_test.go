package polyio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/osuushi/artgallery/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReadYAML(t *testing.T) {
	input := `
points:
  - [0, 0]
  - [4, 0]
  - [4, 4]
  - [2, 2]
  - [0, 4]
`
	points, err := ReadYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []*Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4}}, points)

	_, err = ReadYAML(strings.NewReader("points:\n  - [1, 2, 3]\n"))
	assert.EqualError(t, err, "point 0 has 3 coordinates, expected 2")

	_, err = ReadYAML(strings.NewReader("points: nope\n"))
	assert.Error(t, err)
}

func TestWriteYAML(t *testing.T) {
	points := []*Point{{X: 0, Y: 0}, {X: 1.5, Y: 0}, {X: 0, Y: 2}}
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, points))
	assert.True(t, strings.HasPrefix(buf.String(), "points:\n"))

	roundTripped, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, points, roundTripped)
}

func TestWriteResult(t *testing.T) {
	g, err := internal.Process([]*Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4}}, internal.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, g))

	var result Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &result))
	assert.Len(t, result.Vertices, 5)
	assert.Equal(t, ResultVertex{ID: 3, X: 2, Y: 2, Type: "merge", Color: "green"}, result.Vertices[3])
	assert.Equal(t, [][]int{{0, 3}}, result.MonotoneDiagonals)
	assert.Equal(t, [][]int{{1, 3}}, result.TriangleDiagonals)
	assert.Len(t, result.Faces, 3)
	assert.Equal(t, []int{0, 3, 4}, result.Faces[0].Vertices)
	assert.Equal(t, []int{2}, result.Faces[0].Neighbors)
	assert.Equal(t, "green", result.GuardColor)
	assert.Equal(t, []int{3}, result.Guards)
	assert.Equal(t, 12.0, result.Area)
	assert.InDelta(t, 0, result.AreaError, 1e-9)
}
