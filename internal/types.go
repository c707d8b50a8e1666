package internal

import "seehuhn.de/go/geom/vec"

// Points are plain values. Grid coordinates share the space of the source
// shape: x grows to the right, y grows upwards, and grid lines sit at integer
// coordinates.
type Point = vec.Vec2

// A HalfPlaneCode holds one bit per source edge. Bit e is set when the point
// lies on the inside of edge e's line. Since the shape is the intersection of
// its four half-planes, a point is inside the shape iff all four bits are set.
type HalfPlaneCode uint8

const AllInside HalfPlaneCode = 0b1111

// One bit per source vertex index, recording which vertices fall inside a
// cell.
type VertexMask uint8

// Clip state of a pixel edge after bisection.
type EdgeCode uint8

const (
	// No part of the edge was found inside by the clip. The edge may still be
	// fully inside; the end codes tell.
	ClipNone EdgeCode = iota
	// The start is kept, Clip[1] replaces the end.
	ClipEnd
	// The end is kept, Clip[0] replaces the start.
	ClipStart
	// Both ends are replaced by clip points.
	ClipBoth
)

type SourceVertex struct {
	P      Point // position
	Edge   Point // vector to the next vertex
	Normal Point // unit normal of Edge, pointing into the shape
}

// The source shape is always a parallelogram, with its vertices stored in
// counterclockwise order.
type SourceShape struct {
	Vertices [4]SourceVertex
}

type GridVertex struct {
	P    Point
	Code HalfPlaneCode
}

// A PixelEdge is one unit segment of the grid. Horizontal edges run left to
// right, vertical edges run top to bottom.
type PixelEdge struct {
	Code      EdgeCode
	Ends      [2]Point
	EndCodes  [2]HalfPlaneCode
	Clip      [2]Point
	ClipCodes [2]HalfPlaneCode
	// The source edge whose line produced each clip point, or -1.
	ClipEdge [2]int
}

// Active sub-grid, in grid line indices. Row 0 is the top row, whose upper
// grid line is y = MaxY.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
	Cols, Rows int
}

type Polygon struct {
	Points []Point
}

type Cell struct {
	Row, Col int
	Polygon  Polygon
	Area     float64
}

type Coverage struct {
	Bounds    Bounds
	Cells     []Cell
	TotalArea float64
}
