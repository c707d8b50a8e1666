package internal

import (
	"slices"

	"seehuhn.de/go/geom/matrix"
)

// An Engine computes the coverage of one source shape at a time. It owns the
// shape and the grid scratch state, so repeated computations (one per frame,
// or one per pixel in a sweep) allocate nothing once the buffers have grown.
// An Engine is not safe for concurrent use.
type Engine struct {
	shape SourceShape
	grid  *Grid
}

func NewEngine(capacity int) *Engine {
	return &Engine{grid: NewGrid(capacity)}
}

// Place the shape at explicit vertices.
func (en *Engine) SetShape(vertices [4]Point) {
	en.shape.SetVertices(vertices)
	en.shape.InitEdges()
}

// Place the shape as the image of the unit square under m.
func (en *Engine) SetTransform(m matrix.Matrix) {
	en.shape.InitVertices(UnitSquare, m)
	en.shape.InitEdges()
}

func (en *Engine) Shape() *SourceShape {
	return &en.shape
}

func (en *Engine) Grid() *Grid {
	return en.grid
}

// ComputeCoverage returns a fresh Coverage for the current shape.
func (en *Engine) ComputeCoverage() *Coverage {
	cov := &Coverage{}
	en.ComputeCoverageInto(cov)
	return cov
}

// ComputeCoverageInto fills cov for the current shape, reusing its cell and
// point buffers. Every cell of the active sub-grid is reported, with empty
// cells at area zero.
func (en *Engine) ComputeCoverageInto(cov *Coverage) {
	g := en.grid
	g.Build(&en.shape)
	b := g.Bounds()

	n := b.Rows * b.Cols
	cov.Bounds = b
	cov.Cells = slices.Grow(cov.Cells[:0], n)[:n]
	cov.TotalArea = 0

	if b.SingleCell() {
		cell := &cov.Cells[0]
		cell.Row, cell.Col = 0, 0
		cell.Polygon.Reset()
		for i := range en.shape.Vertices {
			cell.Polygon.Add(en.shape.Vertex(i))
		}
		cell.Area = cell.Polygon.Area()
		cov.TotalArea = cell.Area
		return
	}

	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			cell := &cov.Cells[row*b.Cols+col]
			cell.Row, cell.Col = row, col
			cell.Polygon.Reset()
			g.AssembleCell(&en.shape, row, col, &cell.Polygon)
			cell.Area = cell.Polygon.Area()
			cov.TotalArea += cell.Area
		}
	}
}

// Cell at (row, col) of the active sub-grid.
func (cov *Coverage) Cell(row, col int) *Cell {
	return &cov.Cells[row*cov.Bounds.Cols+col]
}

// Grid cell coordinates of the lower left corner of cell (row, col), i.e. the
// integer pixel the cell stands for.
func (cov *Coverage) Pixel(row, col int) (x, y int) {
	return cov.Bounds.MinX + col, cov.Bounds.MaxY - row - 1
}
