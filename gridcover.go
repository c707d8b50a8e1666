// Exact coverage of a parallelogram against a unit pixel grid.
//
// Given a parallelogram, this package computes, for every grid cell the shape
// touches, the polygon where the cell and the shape overlap and the area of
// that polygon. The cell areas always add up to the area of the shape, which
// makes them usable as exact anti-aliasing or resampling weights.
//
// Shapes may be given by their vertices, or as the image of the unit square
// under an affine transform. See the advanced package to reuse buffers across
// many computations.
package gridcover

import (
	"context"
	"log/slog"

	"github.com/osuushi/gridcover/advanced"
	"github.com/osuushi/gridcover/internal"
	"seehuhn.de/go/geom/matrix"
)

type Point = advanced.Point
type Polygon = advanced.Polygon
type Cell = advanced.Cell
type Coverage = advanced.Coverage
type Sweep = advanced.Sweep
type Failure = advanced.Failure

// Compute the coverage of the parallelogram with the given vertices, in either
// winding order. capacity bounds the number of cells the shape may span on
// each axis; a larger footprint is an error.
func ComputeCoverage(vertices [4]Point, capacity int) (result *Coverage, err error) {
	defer func() {
		recoveredErr := advanced.HandleCoveragePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	engine := advanced.NewEngine(capacity)
	engine.SetShape(vertices)
	return engine.ComputeCoverage(), nil
}

// Compute the coverage of the image of the unit square under m. The unit
// square has its top left corner at the origin and extends to (1, -1).
func ComputeCoverageTransform(m matrix.Matrix, capacity int) (result *Coverage, err error) {
	defer func() {
		recoveredErr := advanced.HandleCoveragePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	engine := advanced.NewEngine(capacity)
	engine.SetTransform(m)
	return engine.ComputeCoverage(), nil
}

// Verify runs a coverage sweep over every pixel of a destination image, and
// returns the pixels whose cell areas do not add up to their shape's area.
func Verify(ctx context.Context, sweep Sweep) ([]Failure, error) {
	return sweep.Run(ctx)
}

// SetLogger configures the logger used for diagnostics. By default nothing is
// logged. Pass nil to restore the silent default.
func SetLogger(l *slog.Logger) {
	internal.SetLogger(l)
}
