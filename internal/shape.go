package internal

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Base vertices of the source shape before placement: the unit cell whose top
// left corner is the origin, listed counterclockwise.
var UnitSquare = [4]Point{
	{X: 0, Y: 0},
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
}

// Place the shape by mapping base through the affine transform m. A singular
// m gives a degenerate shape; that is the caller's problem.
func (s *SourceShape) InitVertices(base [4]Point, m matrix.Matrix) {
	var v [4]Point
	for i, p := range base {
		v[i] = Transform(m, p)
	}
	s.SetVertices(v)
}

// Place the shape at explicit vertices, given in either winding order. A
// clockwise quad is stored with vertices 1 and 3 swapped, so vertex 0 keeps
// its index. InitEdges must be called afterwards.
func (s *SourceShape) SetVertices(v [4]Point) {
	if Cross(v[1].Sub(v[0]), v[2].Sub(v[1])) < 0 {
		v[1], v[3] = v[3], v[1]
	}
	for i := range v {
		s.Vertices[i].P = v[i]
	}
}

// Derive edge vectors and inward normals from the vertex positions.
func (s *SourceShape) InitEdges() {
	for i := range s.Vertices {
		next := s.Vertices[CircularIndex(i+1, 4)].P
		edge := next.Sub(s.Vertices[i].P)
		s.Vertices[i].Edge = edge
		// Rotating by +90° points inwards for a counterclockwise shape.
		s.Vertices[i].Normal = edge.Normal()
	}
}

func (s *SourceShape) Vertex(i int) Point {
	return s.Vertices[i].P
}

// Signed distance from p to edge e's line, positive inside.
func (s *SourceShape) Distance(p Point, e int) float64 {
	v := &s.Vertices[e]
	return p.Sub(v.P).Dot(v.Normal)
}

func (s *SourceShape) Classify(p Point) HalfPlaneCode {
	var code HalfPlaneCode
	for e := range s.Vertices {
		if s.Distance(p, e) > -InsideTolerance {
			code |= edgeBit(e)
		}
	}
	return code
}

// The edge whose line passes closest to p.
func (s *SourceShape) NearestEdge(p Point) int {
	nearest := 0
	best := math.Inf(1)
	for e := range s.Vertices {
		if d := math.Abs(s.Distance(p, e)); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}

// The area of a parallelogram is the cross product of two adjacent sides.
// This is only right because the shape is never a general quad.
func (s *SourceShape) Area() float64 {
	return Cross(s.Vertices[0].Edge, s.Vertices[1].Edge)
}

// The source vertex lying on p, or -1. p counts as lying on vertex v when it
// is on the lines of both edges meeting there, so this agrees with Classify.
func (s *SourceShape) VertexAt(p Point) int {
	for v := range s.Vertices {
		prev := CircularIndex(v-1, 4)
		if math.Abs(s.Distance(p, v)) <= InsideTolerance &&
			math.Abs(s.Distance(p, prev)) <= InsideTolerance {
			return v
		}
	}
	return -1
}

// Apply the affine transform m to p.
func Transform(m matrix.Matrix, p Point) Point {
	x, y := m.Apply(p.X, p.Y)
	return Point{X: x, Y: y}
}

// The animated placement: center the unit square on the origin, scale it,
// rotate it by theta (radians, counterclockwise) and move it to center.
func PlacementTransform(theta float64, scaleX, scaleY float64, center Point) matrix.Matrix {
	return matrix.Translate(-0.5, 0.5).
		Scale(scaleX, scaleY).
		Rotate(theta).
		Translate(center.X, center.Y)
}
