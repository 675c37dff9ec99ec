// Package polyio reads polygons in the formats the artgallery CLI accepts,
// generates random ones, and writes results.
package polyio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/artgallery/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point

// Read a polygon as newline separated points in the form "x y". Reading stops
// at the first blank line after at least one point, so a file of several
// polygons yields the first. Lines starting with # are skipped.
func ReadText(in io.Reader) ([]*Point, error) {
	scanner := bufio.NewScanner(in)
	points := []*Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (*Point, error) {
	parts := strings.Fields(strings.ReplaceAll(line, ",", " "))
	if len(parts) != 2 {
		return nil, errors.Errorf("expected 2 coordinates, got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return &Point{X: x, Y: y}, nil
}

// Write points in the format ReadText reads.
func WriteText(w io.Writer, points []*Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "writing points")
}

// Return the points in counterclockwise order, reversing them if needed.
// Input from SVG (y pointing down) or hand-written files often winds the other
// way.
func Normalize(points []*Point) []*Point {
	poly := internal.Polygon{Points: points}
	if poly.SignedArea() >= 0 {
		return points
	}
	return poly.Reverse().Points
}
