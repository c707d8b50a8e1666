package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/gridcover/dbg"
)

func (c HalfPlaneCode) String() string {
	return fmt.Sprintf("%04b", uint8(c))
}

func (m VertexMask) String() string {
	return fmt.Sprintf("%04b", uint8(m))
}

func (c EdgeCode) String() string {
	switch c {
	case ClipNone:
		return "none"
	case ClipEnd:
		return "end"
	case ClipStart:
		return "start"
	case ClipBoth:
		return "both"
	}
	return fmt.Sprintf("EdgeCode(%d)", uint8(c))
}

func (e *PixelEdge) String() string {
	s := fmt.Sprintf("Edge %s (%s)->(%s) [%s %s]",
		e.DbgName(),
		fmtPoint(e.Ends[0]), fmtPoint(e.Ends[1]),
		e.EndCodes[0], e.EndCodes[1],
	)
	if e.Code&ClipStart != 0 {
		s += fmt.Sprintf(" in@(%s) by %d", fmtPoint(e.Clip[0]), e.ClipEdge[0])
	}
	if e.Code&ClipEnd != 0 {
		s += fmt.Sprintf(" out@(%s) by %d", fmtPoint(e.Clip[1]), e.ClipEdge[1])
	}
	return s
}

func (e *PixelEdge) DbgName() string {
	// Green if some of it is inside, red if none of it is
	name := dbg.Name(e)
	switch {
	case e.Code != ClipNone:
		name = aurora.Yellow(name).String()
	case e.EndCodes[0].Inside() && e.EndCodes[1].Inside():
		name = aurora.Green(name).String()
	default:
		name = aurora.Red(name).String()
	}
	return name
}

func (poly Polygon) String() string {
	parts := make([]string, len(poly.Points))
	for i, p := range poly.Points {
		parts[i] = fmtPoint(p)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

func (c *Cell) String() string {
	area := fmt.Sprintf("%.4f", c.Area)
	if c.Area == 0 {
		area = aurora.Magenta(area).String()
	} else {
		area = aurora.Cyan(area).String()
	}
	return fmt.Sprintf("Cell (%d,%d) %s %s", c.Row, c.Col, area, c.Polygon)
}

func (b Bounds) String() string {
	return fmt.Sprintf("x %d..%d, y %d..%d (%dx%d)", b.MinX, b.MaxX, b.MinY, b.MaxY, b.Cols, b.Rows)
}

func fmtPoint(p Point) string {
	return fmt.Sprintf("%.4g, %.4g", p.X, p.Y)
}
