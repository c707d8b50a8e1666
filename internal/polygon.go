package internal

func (poly *Polygon) Add(p Point) {
	poly.Points = append(poly.Points, p)
}

func (poly *Polygon) Reset() {
	poly.Points = poly.Points[:0]
}

// Signed area by fan triangulation from the first point. Counterclockwise
// polygons have positive area. Repeated points contribute nothing, which the
// cell assembly relies on.
func (poly Polygon) Area() float64 {
	n := len(poly.Points)
	if n < 3 {
		return 0
	}
	v0 := poly.Points[0]
	var area float64
	for t := 0; t < n-2; t++ {
		v10 := poly.Points[t+1].Sub(v0)
		v21 := poly.Points[t+2].Sub(poly.Points[t+1])
		area += Cross(v10, v21)
	}
	return area / 2
}

// Copy of the polygon that does not share the point buffer.
func (poly Polygon) Clone() Polygon {
	points := make([]Point, len(poly.Points))
	copy(points, poly.Points)
	return Polygon{Points: points}
}
