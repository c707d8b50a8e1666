package advanced

import (
	"math"

	"github.com/osuushi/gridcover/internal"
)

// A Rotation animates a scaled unit square spinning in place, checking each
// frame's coverage as it goes. It owns one engine, so frames reuse the same
// buffers.
type Rotation struct {
	// Angle added per frame, in radians.
	Step   float64
	ScaleX float64
	ScaleY float64
	Center Point
	// Accepted relative area error per frame.
	Tolerance float64

	Theta  float64
	engine *Engine
	cov    Coverage
}

// The demo placement: a 1 x 0.5 rectangle spinning about
// (0.5, 0) in a 3 x 3 grid.
func NewRotation(step float64) *Rotation {
	return &Rotation{
		Step:      step,
		ScaleX:    1,
		ScaleY:    0.5,
		Center:    Point{X: 0.5, Y: 0},
		Tolerance: internal.DefaultTolerance,
		engine:    internal.NewEngine(3),
	}
}

// NewRotationWithCapacity is NewRotation with a grid of the given capacity,
// for larger scales.
func NewRotationWithCapacity(step float64, capacity int) *Rotation {
	r := NewRotation(step)
	r.engine = internal.NewEngine(capacity)
	return r
}

// Frame places the shape at angle theta and checks its coverage. The returned
// coverage is owned by the Rotation and is overwritten by the next frame.
func (r *Rotation) Frame(theta float64) (cov *Coverage, area float64, ok bool) {
	r.engine.SetTransform(internal.PlacementTransform(theta, r.ScaleX, r.ScaleY, r.Center))
	area, _, ok = r.engine.Check(&r.cov, r.Tolerance)
	return &r.cov, area, ok
}

// Advance moves to the next frame, wrapping theta into [0, 2π).
func (r *Rotation) Advance() (cov *Coverage, area float64, ok bool) {
	r.Theta = math.Mod(r.Theta+r.Step, 2*math.Pi)
	return r.Frame(r.Theta)
}

func (r *Rotation) Shape() *SourceShape {
	return r.engine.Shape()
}
