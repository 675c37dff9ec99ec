package polyio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It parses the SVG, finds
// the first polygon element, and returns its points in document order. SVG's
// y axis points down, so the result usually needs Normalize.
func ReadSVG(in io.Reader) ([]*Point, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element in svg")
	}

	return parseSVGPoints(polygons[0].Attributes["points"])
}

// Parse an svg points attribute: "x,y x,y ..." (commas and whitespace are
// interchangeable).
func parseSVGPoints(attribute string) ([]*Point, error) {
	fields := strings.Fields(strings.ReplaceAll(attribute, ",", " "))
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in points %q", attribute)
	}
	points := make([]*Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, &Point{X: x, Y: y})
	}
	return points, nil
}
