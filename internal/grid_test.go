package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeBounds(t *testing.T) {
	s := newShape(Parallelogram(Point{X: 0.5, Y: -0.5}, Point{X: 0, Y: -1}, Point{X: 1, Y: 0}))
	b := ComputeBounds(s)
	assert.Equal(t, Bounds{MinX: 0, MaxX: 1, MinY: -1, MaxY: 0, Cols: 2, Rows: 2}, b)
	assert.Equal(t, Point{X: 0, Y: 0}, b.VertexAt(0, 0))
	assert.Equal(t, Point{X: 2, Y: -2}, b.VertexAt(2, 2))

	t.Run("grid lines", func(t *testing.T) {
		// Vertices on grid lines stay in the cell towards the lower right
		b := ComputeBounds(newShape(UnitSquare))
		assert.Equal(t, Bounds{MinX: 0, MaxX: 1, MinY: -1, MaxY: 0, Cols: 2, Rows: 2}, b)
	})

	t.Run("single cell", func(t *testing.T) {
		b := ComputeBounds(newShape(LoadFixture("tiny")))
		assert.True(t, b.SingleCell())
	})
}

func TestGrid_Capacity(t *testing.T) {
	build := func(capacity int, shape [4]Point) (err error) {
		defer func() {
			recoveredErr := HandleCoveragePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()
		NewGrid(capacity).Build(newShape(shape))
		return nil
	}

	square := RotatedSquare(Point{X: 1.5, Y: -1.5}, 2, 0.3)
	assert.NoError(t, build(4, square))
	assert.NoError(t, build(3, square))
	assertCoverageError(t, build(2, square), "grid capacity is 2")
	assertCoverageError(t, build(0, square), "capacity must be positive")
}

func TestGrid_Occupancy(t *testing.T) {
	s := newShape(LoadFixture("diamond"))
	g := NewGrid(4)
	g.Build(s)
	b := g.Bounds()
	require.Equal(t, 3, b.Cols)
	require.Equal(t, 3, b.Rows)

	// Each vertex of the diamond pokes into the middle of one side
	var total int
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			total += bitCountMask(g.Occupancy(row, col))
		}
	}
	assert.Equal(t, 4, total)
	assert.Equal(t, 1, bitCountMask(g.Occupancy(0, 1)))
	assert.Equal(t, 1, bitCountMask(g.Occupancy(1, 0)))
	assert.Equal(t, 1, bitCountMask(g.Occupancy(1, 2)))
	assert.Equal(t, 1, bitCountMask(g.Occupancy(2, 1)))
	assert.Equal(t, VertexMask(0), g.Occupancy(1, 1))
}

func bitCountMask(m VertexMask) int {
	return bitCount(HalfPlaneCode(m))
}

func TestGrid_VertexCodes(t *testing.T) {
	s := newShape(LoadFixture("diamond"))
	g := NewGrid(4)
	g.Build(s)

	// The inner grid vertices are inside the diamond, the outer corners are not
	assert.True(t, g.Vertex(1, 1).Code.Inside())
	assert.True(t, g.Vertex(2, 2).Code.Inside())
	assert.False(t, g.Vertex(0, 0).Code.Inside())
	assert.False(t, g.Vertex(3, 3).Code.Inside())
	for row := 0; row <= 3; row++ {
		for col := 0; col <= 3; col++ {
			v := g.Vertex(row, col)
			assert.Equal(t, s.Classify(v.P), v.Code)
		}
	}
}
