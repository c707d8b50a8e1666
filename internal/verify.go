package internal

import (
	"cmp"
	"context"
	"math"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
	"seehuhn.de/go/geom/matrix"
)

// Relative area error accepted by a sweep when none is given.
const DefaultTolerance = 0.05

// A Sweep checks coverage over a whole destination image: every pixel's unit
// cell is mapped into source space through Inverse, and the coverage of the
// resulting parallelogram must add up to its area.
type Sweep struct {
	Width, Height int
	Inverse       matrix.Matrix
	// Grid capacity of each worker's engine. Zero derives it from Inverse.
	Capacity int
	// Accepted relative area error. Zero means DefaultTolerance, a negative
	// value rejects everything.
	Tolerance float64
	// Number of parallel workers. Zero means GOMAXPROCS.
	Workers int
}

// A Failure is a pixel whose coverage does not add up.
type Failure struct {
	X, Y int
	// Source space position of the pixel's first corner.
	Placement Point
	Area      float64
	Covered   float64
}

func (f Failure) RelativeError() float64 {
	return math.Abs(f.Covered-f.Area) / math.Abs(f.Area)
}

// Capacity needed for the image of a unit cell under m. The image of a unit
// cell spans |a|+|c| horizontally and |b|+|d| vertically, and can straddle one
// extra grid line on each axis.
func CapacityFor(m matrix.Matrix) int {
	w := math.Abs(m[0]) + math.Abs(m[2])
	h := math.Abs(m[1]) + math.Abs(m[3])
	return int(math.Ceil(max(w, h))) + 2
}

// Place the shape on the unit cell of pixel (x, y), mapped through inverse.
func (en *Engine) SetPixel(inverse matrix.Matrix, x, y int) {
	en.SetTransform(matrix.Translate(float64(x), float64(y+1)).Mul(inverse))
}

// Check computes the coverage of the current shape into cov and compares it
// with the shape's area.
func (en *Engine) Check(cov *Coverage, tolerance float64) (area, covered float64, ok bool) {
	en.ComputeCoverageInto(cov)
	area = en.shape.Area()
	covered = cov.TotalArea
	return area, covered, math.Abs(covered-area) <= tolerance*math.Abs(area)
}

// Run sweeps every pixel and returns the failures sorted by row, then column.
// The only errors are cancellation and a footprint exceeding Capacity.
func (sw Sweep) Run(ctx context.Context) ([]Failure, error) {
	capacity := sw.Capacity
	if capacity == 0 {
		capacity = CapacityFor(sw.Inverse)
	}
	tolerance := sw.Tolerance
	if tolerance == 0 {
		tolerance = DefaultTolerance
	}
	workers := sw.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, sw.Height))

	log := Logger()
	results := make([][]Failure, workers)
	group, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		group.Go(func() (err error) {
			defer func() {
				recoveredErr := HandleCoveragePanicRecover(recover())
				if recoveredErr != nil {
					err = recoveredErr
				}
			}()

			en := NewEngine(capacity)
			var cov Coverage
			for y := w; y < sw.Height; y += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				for x := 0; x < sw.Width; x++ {
					en.SetPixel(sw.Inverse, x, y)
					area, covered, ok := en.Check(&cov, tolerance)
					if ok {
						continue
					}
					f := Failure{
						X: x, Y: y,
						Placement: en.shape.Vertex(0),
						Area:      area,
						Covered:   covered,
					}
					log.Warn("coverage mismatch",
						"x", x, "y", y,
						"area", area, "covered", covered,
						"placement", f.Placement)
					results[w] = append(results[w], f)
				}
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var failures []Failure
	for _, r := range results {
		failures = append(failures, r...)
	}
	slices.SortFunc(failures, func(a, b Failure) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	log.Info("sweep done",
		"width", sw.Width, "height", sw.Height,
		"workers", workers, "capacity", capacity,
		"failures", len(failures))
	return failures, nil
}
