package polyio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSVG(t *testing.T) {
	input := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10">
  <polygon points="0,0 4,0 4,4 2,2 0,4" />
  <polygon points="9,9 9,8 8,8" />
</svg>`
	points, err := ReadSVG(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []*Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 2, Y: 2}, {X: 0, Y: 4}}, points)
}

func TestReadSVG_Errors(t *testing.T) {
	_, err := ReadSVG(strings.NewReader(`<svg><rect width="1" height="1"/></svg>`))
	assert.EqualError(t, err, "no polygon element in svg")

	_, err = ReadSVG(strings.NewReader(`<svg><polygon points="0,0 1,0 1"/></svg>`))
	assert.Error(t, err)
}

func TestParseSVGPoints(t *testing.T) {
	points, err := parseSVGPoints(" 1.5,2  3 4\n5,-6 ")
	require.NoError(t, err)
	assert.Equal(t, []*Point{{X: 1.5, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: -6}}, points)

	_, err = parseSVGPoints("1,x")
	assert.Error(t, err)
}
