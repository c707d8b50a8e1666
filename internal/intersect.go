package internal

import (
	"log/slog"
	"math"
)

// Intersect finds the point on segment a0-a1 that also lies on the line
// through b0 with direction bDir. Both parameters come from the normal
// equations of the 2x2 system, so no matrix is inverted.
//
// The segment is walked from whichever end makes its projection onto bDir
// non-negative, which keeps the dominant product positive. Parallel lines
// have no solution; the midpoint is used instead. The parameter is clamped,
// so the result always lies on the segment even after rounding.
func Intersect(a0, a1, b0, bDir Point) Point {
	dA := a1.Sub(a0)
	dADotDB := dA.Dot(bDir)
	origin := a0
	if dADotDB < 0 {
		dA = dA.Mul(-1)
		dADotDB = -dADotDB
		origin = a1
	}
	r := origin.Sub(b0)

	dADotDA := dA.Dot(dA)
	dBDotDB := bDir.Dot(bDir)
	rDotDA := r.Dot(dA)
	rDotDB := r.Dot(bDir)

	det := dADotDA*dBDotDB - dADotDB*dADotDB
	t := (dADotDB*rDotDB - dBDotDB*rDotDA) / det
	if math.IsNaN(t) || math.IsInf(t, 0) {
		Logger().Debug("parallel intersection, using midpoint",
			slog.Any("a0", a0), slog.Any("a1", a1),
			slog.Any("b0", b0), slog.Any("bDir", bDir))
		t = 0.5
	}
	t = math.Max(0, math.Min(1, t))
	return origin.Add(dA.Mul(t))
}
