package internal

// Facilities for assembling the polygon cell ∩ shape for one grid cell.
//
// The cell boundary is walked counterclockwise: left edge top to bottom,
// bottom edge left to right, right edge bottom to top, top edge right to
// left. Every edge contributes its starting corner if that corner is inside
// the shape, and its clip points in walk order. A clip point where the walk
// leaves the shape is an exit, one where it comes back in is an entry.
//
// Between an exit and the following entry the polygon boundary runs along the
// shape boundary, through whatever shape vertices sit inside the cell. Since
// both polygons are counterclockwise, leaving along source edge a and coming
// back along source edge b passes exactly the vertices a+1, ..., b. This is
// why every clip point remembers the source edge that produced it.
//
// A point sitting on source vertex v lies on two edge lines, so its tag is
// ambiguous. The shape boundary arrives there along edge v-1 and leaves along
// edge v, so that is how entries and exits at v are tagged.

type cellWalk struct {
	shape *SourceShape
	poly  *Polygon
	mask  VertexMask // source vertices inside this cell
	drawn VertexMask // the ones already emitted
	// Source edge of the last exit that has not been followed by an entry, or
	// -1.
	pending int
	// Source edge of an entry that opened the walk, or -1. The gap in front
	// of it wraps around from the last exit.
	lead int
}

func newCellWalk(s *SourceShape, poly *Polygon, mask VertexMask) cellWalk {
	return cellWalk{shape: s, poly: poly, mask: mask, pending: -1, lead: -1}
}

// AssembleCell appends the polygon for cell (row, col) to poly. The grid must
// have been built for s, and must span more than one cell.
func (g *Grid) AssembleCell(s *SourceShape, row, col int, poly *Polygon) {
	p00 := g.Vertex(row, col)
	p10 := g.Vertex(row, col+1)
	p01 := g.Vertex(row+1, col)
	p11 := g.Vertex(row+1, col+1)

	// All four corners outside the same half-plane
	if AllInside&^(p00.Code|p10.Code|p01.Code|p11.Code) != 0 {
		return
	}

	w := newCellWalk(s, poly, g.Occupancy(row, col))
	w.forward(g.ColEdge(row, col))
	w.forward(g.RowEdge(row+1, col))
	w.reverse(g.ColEdge(row, col+1))
	w.reverse(g.RowEdge(row, col))
	w.finish()
}

// Append an edge walked from Ends[0] to Ends[1] (the left and bottom edges).
func (w *cellWalk) forward(e *PixelEdge) {
	switch e.Code {
	case ClipNone:
		w.corner(e.Ends[0], e.EndCodes[0], e.EndCodes[1])
	case ClipEnd:
		w.corner(e.Ends[0], AllInside, AllInside)
		w.exit(e.Clip[1], e.ClipEdge[1])
	case ClipStart:
		w.entry(e.Clip[0], e.ClipEdge[0])
	case ClipBoth:
		w.entry(e.Clip[0], e.ClipEdge[0])
		w.exit(e.Clip[1], e.ClipEdge[1])
	}
}

// Append an edge walked from Ends[1] back to Ends[0] (the right and top
// edges).
func (w *cellWalk) reverse(e *PixelEdge) {
	switch e.Code {
	case ClipNone:
		w.corner(e.Ends[1], e.EndCodes[1], e.EndCodes[0])
	case ClipEnd:
		w.entry(e.Clip[1], e.ClipEdge[1])
	case ClipStart:
		w.corner(e.Ends[1], AllInside, AllInside)
		w.exit(e.Clip[0], e.ClipEdge[0])
	case ClipBoth:
		w.entry(e.Clip[1], e.ClipEdge[1])
		w.exit(e.Clip[0], e.ClipEdge[0])
	}
}

// Emit the corner p an edge starts from, if it is inside. When the far end of
// the edge is not inside and no clip point was produced, the shape only
// touches the edge at p, so p is also where the walk leaves the shape.
func (w *cellWalk) corner(p Point, code, far HalfPlaneCode) {
	if !code.Inside() {
		return
	}
	if w.pending >= 0 {
		w.chain(w.pending, w.arrival(p, -1))
		w.pending = -1
	}
	w.poly.Add(p)
	if !far.Inside() {
		w.pending = w.departure(p, -1)
	}
}

// Source edge along which the shape boundary reaches p, given the edge that
// clipped p, or -1 if none did.
func (w *cellWalk) arrival(p Point, edge int) int {
	if v := w.shape.VertexAt(p); v >= 0 {
		return CircularIndex(v-1, 4)
	}
	if edge < 0 {
		return w.shape.NearestEdge(p)
	}
	return edge
}

// Source edge along which the shape boundary leaves p.
func (w *cellWalk) departure(p Point, edge int) int {
	if v := w.shape.VertexAt(p); v >= 0 {
		return v
	}
	if edge < 0 {
		return w.shape.NearestEdge(p)
	}
	return edge
}

func (w *cellWalk) entry(p Point, clipEdge int) {
	edge := w.arrival(p, clipEdge)
	if w.pending >= 0 {
		w.chain(w.pending, edge)
		w.pending = -1
	} else if len(w.poly.Points) == 0 {
		w.lead = edge
	}
	w.poly.Add(p)
}

func (w *cellWalk) exit(p Point, clipEdge int) {
	if w.pending >= 0 {
		// Two exits in a row: rounding lost the entry in between, which can
		// only have been at p.
		w.chain(w.pending, w.arrival(p, clipEdge))
	}
	w.poly.Add(p)
	w.pending = w.departure(p, clipEdge)
}

// Emit the interior vertices met when following the shape boundary from a
// point on source edge from to a point on source edge to. Leaving and
// re-entering along the same edge passes no vertex: doing otherwise would
// need all four vertices inside the cell, which is the single cell case.
func (w *cellWalk) chain(from, to int) {
	if from == to {
		return
	}
	for v := CircularIndex(from+1, 4); ; v = CircularIndex(v+1, 4) {
		w.vertex(v)
		if v == to {
			break
		}
	}
}

func (w *cellWalk) vertex(v int) {
	bit := VertexMask(1) << v
	if w.mask&bit == 0 || w.drawn&bit != 0 {
		return
	}
	w.drawn |= bit
	w.poly.Add(w.shape.Vertex(v))
}

func (w *cellWalk) finish() {
	if len(w.poly.Points) == 0 {
		// The shape boundary never met the cell boundary, so whatever is in
		// the cell is a run of interior vertices.
		for v := range w.shape.Vertices {
			w.vertex(v)
		}
		return
	}
	if w.pending >= 0 {
		to := w.lead
		if to < 0 {
			to = w.arrival(w.poly.Points[0], -1)
		}
		w.chain(w.pending, to)
		w.pending = -1
	}
}
