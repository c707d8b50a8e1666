package internal

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the active grid, in pixels of the output image
const dbgDrawPadding = 40

// Colors of the four source edges, in vertex order
var dbgEdgeColors = [4][3]float64{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0.4, 1},
	{1, 1, 0},
}

// DrawCoverage renders the active sub-grid of cov, the cell polygons shaded by
// their area, and the source shape's edges. scale is the size of a grid cell
// in image pixels.
func DrawCoverage(cov *Coverage, s *SourceShape, scale float64) *gg.Context {
	b := cov.Bounds
	width := int(scale*float64(b.Cols)) + dbgDrawPadding*2
	height := int(scale*float64(b.Rows)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFontFace(basicfont.Face7x13)

	// Image coordinates of a grid space point. Grid rows grow downwards, like
	// image rows, starting at the top grid line MaxY.
	toImage := func(p Point) (float64, float64) {
		return dbgDrawPadding + (p.X-float64(b.MinX))*scale,
			dbgDrawPadding + (float64(b.MaxY)-p.Y)*scale
	}

	for i := range cov.Cells {
		cell := &cov.Cells[i]
		if len(cell.Polygon.Points) < 3 {
			continue
		}
		for j, p := range cell.Polygon.Points {
			x, y := toImage(p)
			if j == 0 {
				c.MoveTo(x, y)
			} else {
				c.LineTo(x, y)
			}
		}
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.25+0.5*min(cell.Area, 1))
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(1)
		c.Stroke()
	}

	// Grid lines
	c.SetRGBA(1, 1, 1, 0.5)
	c.SetLineWidth(1)
	for row := 0; row <= b.Rows; row++ {
		x0, y := toImage(b.VertexAt(row, 0))
		x1, _ := toImage(b.VertexAt(row, b.Cols))
		c.DrawLine(x0, y, x1, y)
		c.Stroke()
	}
	for col := 0; col <= b.Cols; col++ {
		x, y0 := toImage(b.VertexAt(0, col))
		_, y1 := toImage(b.VertexAt(b.Rows, col))
		c.DrawLine(x, y0, x, y1)
		c.Stroke()
	}

	c.SetLineWidth(3)
	for i, v := range s.Vertices {
		x0, y0 := toImage(v.P)
		x1, y1 := toImage(v.P.Add(v.Edge))
		rgb := dbgEdgeColors[i]
		c.SetRGB(rgb[0], rgb[1], rgb[2])
		c.DrawLine(x0, y0, x1, y1)
		c.Stroke()
	}

	// Label every cell with its area
	c.SetRGB(1, 1, 1)
	for i := range cov.Cells {
		cell := &cov.Cells[i]
		center := b.VertexAt(cell.Row, cell.Col).Add(Point{X: 0.5, Y: -0.5})
		x, y := toImage(center)
		c.DrawStringAnchored(fmt.Sprintf("%.3f", cell.Area), x, y, 0.5, 0.5)
	}
	return c
}

// DbgDraw saves the frame to path and prints it in the terminal (iTerm only)
// for debugging.
func (cov *Coverage) DbgDraw(s *SourceShape, scale float64, path string) error {
	if err := DrawCoverage(cov, s, scale).SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving frame to %s", path)
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
