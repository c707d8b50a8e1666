package internal

import "math"

// Distance tolerance for the half-plane test. A point within this distance
// outside an edge's line still counts as inside, so that grid vertices lying
// exactly on a shape edge classify the same way regardless of rounding.
const InsideTolerance = 1e-9

// Tolerance for comparing areas in tests and diagnostics.
const Epsilon = 1e-9

func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Equality within Epsilon, used for positions that went through a transform.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (c HalfPlaneCode) Inside() bool {
	return c == AllInside
}

// Is the point inside edge e's half-plane?
func (c HalfPlaneCode) Has(e int) bool {
	return c&edgeBit(e) != 0
}

func edgeBit(e int) HalfPlaneCode {
	return HalfPlaneCode(1) << e
}

// Index of the single set bit of c, or -1 if c does not have exactly one bit.
func singleEdge(c HalfPlaneCode) int {
	switch c {
	case 0b0001:
		return 0
	case 0b0010:
		return 1
	case 0b0100:
		return 2
	case 0b1000:
		return 3
	}
	return -1
}

func (m VertexMask) Has(v int) bool {
	return m&(VertexMask(1)<<v) != 0
}
