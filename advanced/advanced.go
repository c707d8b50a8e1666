// Package advanced exposes the coverage engine for callers that compute
// coverage repeatedly, such as one frame per tick of an animation, and want
// to reuse the engine's scratch buffers between calls.
//
// Unlike the root package, functions here panic with a CoverageError on
// precondition violations. Use HandleCoveragePanicRecover in a deferred call
// to turn those into errors.
package advanced

import (
	"github.com/osuushi/gridcover/internal"
	"seehuhn.de/go/geom/matrix"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Cell = internal.Cell
type Coverage = internal.Coverage
type Bounds = internal.Bounds
type SourceShape = internal.SourceShape
type Engine = internal.Engine
type Sweep = internal.Sweep
type Failure = internal.Failure
type CoverageError = internal.CoverageError

var UnitSquare = internal.UnitSquare

const DefaultTolerance = internal.DefaultTolerance

// NewEngine allocates an engine for shapes spanning at most capacity cells
// per axis.
func NewEngine(capacity int) *Engine {
	return internal.NewEngine(capacity)
}

func HandleCoveragePanicRecover(r interface{}) error {
	return internal.HandleCoveragePanicRecover(r)
}

// PlacementTransform centers the unit square on the origin, scales it,
// rotates it counterclockwise by theta radians and moves it to center.
func PlacementTransform(theta, scaleX, scaleY float64, center Point) matrix.Matrix {
	return internal.PlacementTransform(theta, scaleX, scaleY, center)
}

// CapacityFor returns a grid capacity large enough for the image of a unit
// cell under m.
func CapacityFor(m matrix.Matrix) int {
	return internal.CapacityFor(m)
}
