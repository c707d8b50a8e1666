package internal

// This contains no actual tests. It is just a helper for testing coverage
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a coverage is valid. The rules are:
// 1. Every polygon point lies in its cell and inside the shape.
// 2. No cell polygon is clockwise.
// 3. Every shape vertex clear of the grid lines is a point of its cell's
// polygon.
// 4. The sum of the cell areas is equal to the area of the shape.
func AssertValidCoverage(t *testing.T, s *SourceShape, cov *Coverage) {
	t.Helper()
	const tolerance = 1e-7
	b := cov.Bounds

	for _, cell := range cov.Cells {
		corner := b.VertexAt(cell.Row, cell.Col)
		for _, p := range cell.Polygon.Points {
			require.True(t,
				p.X >= corner.X-tolerance && p.X <= corner.X+1+tolerance &&
					p.Y <= corner.Y+tolerance && p.Y >= corner.Y-1-tolerance,
				"point %v outside cell (%d,%d)", p, cell.Row, cell.Col)
			for e := range s.Vertices {
				require.Greater(t, s.Distance(p, e), -tolerance, "point %v outside edge %d", p, e)
			}
		}
		require.GreaterOrEqual(t, cell.Area, -tolerance, "clockwise cell (%d,%d): %v", cell.Row, cell.Col, cell.Polygon)
	}

	if !b.SingleCell() {
		for i, v := range s.Vertices {
			if nearGridLine(v.P, 1e-6) {
				continue
			}
			x, y := gridCoords(v.P)
			cell := cov.Cell(b.MaxY-y, x-b.MinX)
			assert.True(t, containsPoint(cell.Polygon, v.P, tolerance),
				"vertex %d %v missing from cell (%d,%d): %v", i, v.P, cell.Row, cell.Col, cell.Polygon)
		}
	}

	require.InDelta(t, s.Area(), cov.TotalArea, 1e-9, "sum of the cell areas is equal to the area of the shape")
}

func nearGridLine(p Point, d float64) bool {
	return math.Abs(p.X-math.Round(p.X)) < d || math.Abs(p.Y-math.Round(p.Y)) < d
}

func containsPoint(poly Polygon, p Point, d float64) bool {
	for _, q := range poly.Points {
		if q.Sub(p).Length() < d {
			return true
		}
	}
	return false
}
