package internal

func (e *PixelEdge) reset() {
	e.Code = ClipNone
	e.ClipEdge = [2]int{-1, -1}
}

// Set clip point i, produced by source edge edge.
func (e *PixelEdge) setClip(i int, p Point, edge int, s *SourceShape) {
	e.Clip[i] = p
	e.ClipCodes[i] = s.Classify(p)
	e.ClipEdge[i] = edge
}

// Bisect finds the part of an interior pixel edge that lies inside the shape.
//
// Only the half-planes the two ends disagree on can cut the edge. They are
// applied one at a time, and each later half-plane is tested against the
// current clip points rather than the original ends, since an edge passing
// near a shape corner can be cut from both sides by different shape edges.
// This is a 1D Cohen-Sutherland: the kept interval shrinks until either it is
// final or it falls outside one half-plane entirely.
func (e *PixelEdge) Bisect(s *SourceShape) {
	e.reset()
	c0, c1 := e.EndCodes[0], e.EndCodes[1]
	// Both ends outside the same half-plane
	if AllInside&^(c0|c1) != 0 {
		return
	}

	crossing := c0 ^ c1
	for i := range s.Vertices {
		bit := edgeBit(i)
		if crossing&bit == 0 {
			continue
		}
		v := &s.Vertices[i]
		switch e.Code {
		case ClipNone:
			p := Intersect(e.Ends[0], e.Ends[1], v.P, v.Edge)
			if c0&bit != 0 {
				e.Code = ClipEnd
				e.setClip(1, p, i, s)
			} else {
				e.Code = ClipStart
				e.setClip(0, p, i, s)
			}

		case ClipEnd:
			tail := e.ClipCodes[1]
			if bit&^(c0|tail) != 0 {
				e.reset()
				return
			}
			if (c0^tail)&bit == 0 {
				continue
			}
			p := Intersect(e.Ends[0], e.Clip[1], v.P, v.Edge)
			if c0&bit != 0 {
				e.setClip(1, p, i, s)
			} else {
				e.Code = ClipBoth
				e.setClip(0, p, i, s)
			}

		case ClipStart:
			head := e.ClipCodes[0]
			if bit&^(c1|head) != 0 {
				e.reset()
				return
			}
			if (c1^head)&bit == 0 {
				continue
			}
			p := Intersect(e.Clip[0], e.Ends[1], v.P, v.Edge)
			if c1&bit != 0 {
				e.setClip(0, p, i, s)
			} else {
				e.Code = ClipBoth
				e.setClip(1, p, i, s)
			}

		case ClipBoth:
			head, tail := e.ClipCodes[0], e.ClipCodes[1]
			if bit&^(head|tail) != 0 {
				e.reset()
				return
			}
			if (head^tail)&bit == 0 {
				continue
			}
			p := Intersect(e.Clip[0], e.Clip[1], v.P, v.Edge)
			if head&bit != 0 {
				e.setClip(1, p, i, s)
			} else {
				e.setClip(0, p, i, s)
			}
		}
	}
}

// BisectBorder handles an edge on the outer boundary of the active grid. The
// grid is the bounding box of the shape's vertices, so such an edge can cross
// at most one shape edge, and only when the ends agree on the other three
// half-planes. Anything else is a touch at a single point and is dropped.
func (e *PixelEdge) BisectBorder(s *SourceShape) {
	e.reset()
	c0, c1 := e.EndCodes[0], e.EndCodes[1]
	crossing := c0 ^ c1
	i := singleEdge(crossing)
	if i < 0 || c0&c1 != AllInside&^crossing {
		return
	}
	v := &s.Vertices[i]
	p := Intersect(e.Ends[0], e.Ends[1], v.P, v.Edge)
	if c0&crossing != 0 {
		e.Code = ClipEnd
		e.setClip(1, p, i, s)
	} else {
		e.Code = ClipStart
		e.setClip(0, p, i, s)
	}
}
