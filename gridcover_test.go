package gridcover

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/matrix"
)

// Smoke tests. The internals are already tested.
func TestComputeCoverage(t *testing.T) {
	points := [4]Point{
		{X: 0.5, Y: -0.5},
		{X: 0.5, Y: -1.5},
		{X: 1.5, Y: -1.5},
		{X: 1.5, Y: -0.5},
	}

	coverage, err := ComputeCoverage(points, 2)
	require.NoError(t, err)
	assert.Len(t, coverage.Cells, 4)
	assert.InDelta(t, 1, coverage.TotalArea, 1e-9)
	for _, cell := range coverage.Cells {
		assert.InDelta(t, 0.25, cell.Area, 1e-9)
	}
}

func TestComputeCoverageTooLarge(t *testing.T) {
	coverage, err := ComputeCoverageTransform(matrix.Scale(5, 5), 3)
	assert.Error(t, err)
	assert.Nil(t, coverage)
}

func TestVerify(t *testing.T) {
	failures, err := Verify(context.Background(), Sweep{
		Width:   8,
		Height:  8,
		Inverse: matrix.RotateDeg(30),
	})
	require.NoError(t, err)
	assert.Empty(t, failures)
}
