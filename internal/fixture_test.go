package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file loads the svg fixtures as polygons. This is not a full (or even
// correct) svg reader. It finds the only polygon element and converts it into
// a counterclockwise point list. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected one polygon in fixture %q, found %d", name, len(polygons))
	}

	pointStrings := strings.Fields(polygons[0].Attributes["points"])
	points := make([]*Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, &Point{x, y})
	}
	return ccw(points)
}

func ccw(points []*Point) []*Point {
	poly := Polygon{Points: points}
	if !poly.IsCCW() {
		return poly.Reverse().Points
	}
	return points
}

func makePoints(coords ...float64) []*Point {
	points := make([]*Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		points = append(points, &Point{coords[i], coords[i+1]})
	}
	return points
}

// Some ad hoc fixtures

func Square() []*Point {
	return makePoints(0, 0, 1, 0, 1, 1, 0, 1)
}

// Notched at the top, so vertex 3 is a merge vertex.
func MShape() []*Point {
	return makePoints(0, 0, 4, 0, 4, 4, 2, 2, 0, 4)
}

// Notched at the bottom, so vertex 1 is a split vertex.
func WShape() []*Point {
	return makePoints(0, 0, 2, 2, 4, 0, 4, 4, 0, 4)
}

func SimpleStar() []*Point {
	var points []*Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// Regular polygon with n vertices, which is convex and needs no partition
// diagonals.
func RegularPolygon(n int, radius float64) []*Point {
	points := make([]*Point, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = &Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}

// Axis aligned staircase with many horizontal edges and collinear runs.
func Staircase(steps int) []*Point {
	points := []*Point{{0, 0}}
	for i := 0; i < steps; i++ {
		x := float64(i + 1)
		points = append(points, &Point{x, float64(i)}, &Point{x, float64(i + 1)})
	}
	points = append(points, &Point{0, float64(steps)})
	return points
}

// A square with a notch cut down from the top edge.
func UShape() []*Point {
	return makePoints(0, 0, 3, 0, 3, 3, 2, 3, 2, 1, 1, 1, 1, 3, 0, 3)
}
