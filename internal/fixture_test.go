package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs shapes. This is not a full
// (or even correct) svg parser. It finds the one polygon in the SVG, which
// must have exactly four points, and flips it into grid space (SVG y grows
// downwards). If anything goes wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

var fixtureNames = []string{
	"aligned",
	"diamond",
	"grid_diamond",
	"sheared",
	"sliver",
	"tiny",
}

func LoadFixture(name string) [4]Point {
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

	var points []Point
	for _, pointString := range strings.Split(polygons[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}

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
		points = append(points, Point{X: x, Y: -y})
	}
	if len(points) != 4 {
		log.Fatalf("Fixture %q has %d points, want 4", name, len(points))
	}
	return [4]Point(points)
}

// Some ad hoc shapes

// The demo rectangle at angle theta.
func DemoRectangle(theta float64) [4]Point {
	m := PlacementTransform(theta, 1, 0.5, Point{X: 0.5, Y: 0})
	var v [4]Point
	for i, p := range UnitSquare {
		v[i] = Transform(m, p)
	}
	return v
}

// A parallelogram from an origin and two side vectors.
func Parallelogram(origin, side0, side1 Point) [4]Point {
	return [4]Point{
		origin,
		origin.Add(side0),
		origin.Add(side0).Add(side1),
		origin.Add(side1),
	}
}

// A square of the given size rotated by theta about center.
func RotatedSquare(center Point, size, theta float64) [4]Point {
	var v [4]Point
	for i := range v {
		angle := theta + math.Pi/4 + float64(i)*math.Pi/2
		r := size / math.Sqrt2
		v[i] = Point{X: center.X + r*math.Cos(angle), Y: center.Y + r*math.Sin(angle)}
	}
	return v
}
