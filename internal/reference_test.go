package internal

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A slow but obviously correct reference: clip the shape polygon against the
// four sides of the cell, one side at a time.
func referenceCellArea(shape [4]Point, minX, maxY float64) float64 {
	poly := shape[:]
	if Cross(shape[1].Sub(shape[0]), shape[2].Sub(shape[1])) < 0 {
		poly = []Point{shape[0], shape[3], shape[2], shape[1]}
	}
	// Each side as "inside iff f(p) >= 0"
	sides := []func(Point) float64{
		func(p Point) float64 { return p.X - minX },
		func(p Point) float64 { return minX + 1 - p.X },
		func(p Point) float64 { return maxY - p.Y },
		func(p Point) float64 { return p.Y - (maxY - 1) },
	}
	for _, f := range sides {
		var out []Point
		for i, cur := range poly {
			prev := poly[CircularIndex(i-1, len(poly))]
			fc, fp := f(cur), f(prev)
			if fc >= 0 {
				if fp < 0 {
					out = append(out, prev.Add(cur.Sub(prev).Mul(fp/(fp-fc))))
				}
				out = append(out, cur)
			} else if fp >= 0 {
				out = append(out, prev.Add(cur.Sub(prev).Mul(fp/(fp-fc))))
			}
		}
		poly = out
		if len(poly) == 0 {
			return 0
		}
	}
	return Polygon{Points: poly}.Area()
}

// Check every cell of a coverage against the reference, and the total against
// the shape's area.
func requireMatchesReference(t *testing.T, shape [4]Point, cov *Coverage) {
	t.Helper()
	var s SourceShape
	s.SetVertices(shape)
	s.InitEdges()
	require.InDelta(t, s.Area(), cov.TotalArea, 1e-9, "total area for %v", shape)

	b := cov.Bounds
	require.Len(t, cov.Cells, b.Rows*b.Cols)
	for _, cell := range cov.Cells {
		corner := b.VertexAt(cell.Row, cell.Col)
		want := referenceCellArea(shape, corner.X, corner.Y)
		assert.InDelta(t, want, cell.Area, 1e-9, "cell (%d,%d) of %v: %v", cell.Row, cell.Col, shape, cell.Polygon)
	}
}

func TestReferenceCellArea(t *testing.T) {
	square := Parallelogram(Point{X: 0.5, Y: -0.5}, Point{X: 0, Y: -1}, Point{X: 1, Y: 0})
	assert.InDelta(t, 0.25, referenceCellArea(square, 0, 0), 1e-12)
	assert.InDelta(t, 0.25, referenceCellArea(square, 1, -1), 1e-12)
	assert.InDelta(t, 0, referenceCellArea(square, 2, 0), 1e-12)
}

// Random parallelograms of assorted sizes and aspect ratios
func randomShape(rng *rand.Rand) [4]Point {
	origin := Point{X: rng.Float64()*6 - 3, Y: rng.Float64()*6 - 3}
	angle0 := rng.Float64() * 2 * math.Pi
	angle1 := angle0 + 0.2 + rng.Float64()*(math.Pi-0.4)
	len0 := 0.1 + rng.Float64()*2.5
	len1 := 0.1 + rng.Float64()*2.5
	return Parallelogram(origin,
		Point{X: len0 * math.Cos(angle0), Y: len0 * math.Sin(angle0)},
		Point{X: len1 * math.Cos(angle1), Y: len1 * math.Sin(angle1)},
	)
}

func TestCoverage_RandomAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	engine := NewEngine(8)
	for i := 0; i < 2000; i++ {
		shape := randomShape(rng)
		engine.SetShape(shape)
		cov := engine.ComputeCoverage()
		AssertValidCoverage(t, engine.Shape(), cov)
		requireMatchesReference(t, shape, cov)
	}
}

// Random parallelograms whose coordinates are multiples of a whole, half or
// quarter unit. These are exact in floating point, so vertices land exactly
// on grid lines and grid vertices, and edges run along grid lines.
func quantizedShape(rng *rand.Rand) [4]Point {
	step := []float64{1, 0.5, 0.25}[rng.Intn(3)]
	coord := func(limit float64) float64 {
		n := int(limit / step)
		return float64(rng.Intn(2*n+1)-n) * step
	}
	for {
		origin := Point{X: coord(3), Y: coord(3)}
		side0 := Point{X: coord(2.5), Y: coord(2.5)}
		side1 := Point{X: coord(2.5), Y: coord(2.5)}
		if Cross(side0, side1) != 0 {
			return Parallelogram(origin, side0, side1)
		}
	}
}

func TestCoverage_QuantizedAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	engine := NewEngine(8)
	for i := 0; i < 5000; i++ {
		shape := quantizedShape(rng)
		engine.SetShape(shape)
		cov := engine.ComputeCoverage()
		AssertValidCoverage(t, engine.Shape(), cov)
		requireMatchesReference(t, shape, cov)
	}
}
