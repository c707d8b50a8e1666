package internal

import "math"

// A Grid holds the scratch state for one coverage computation: classified
// grid vertices, bisected pixel edges and per-cell vertex occupancy. Buffers
// are sized once from the capacity and reused, so a Grid is not safe for
// concurrent use.
type Grid struct {
	capacity int
	bounds   Bounds

	vertices  []GridVertex // (Rows+1) x (Cols+1)
	rowEdges  []PixelEdge  // horizontal, (Rows+1) x Cols
	colEdges  []PixelEdge  // vertical, Rows x (Cols+1)
	occupancy []VertexMask
}

// NewGrid allocates a grid for shapes spanning at most capacity cells per
// axis.
func NewGrid(capacity int) *Grid {
	if capacity < 1 {
		fatalf("grid capacity must be positive, got %d", capacity)
	}
	n := capacity + 1
	return &Grid{
		capacity:  capacity,
		vertices:  make([]GridVertex, n*n),
		rowEdges:  make([]PixelEdge, n*capacity),
		colEdges:  make([]PixelEdge, capacity*n),
		occupancy: make([]VertexMask, capacity*capacity),
	}
}

func (g *Grid) Capacity() int {
	return g.capacity
}

func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// Grid cell coordinates of a point. x is floored and y is ceiled: row indices
// grow downwards from the top grid line, so both give the grid line a point
// can touch without rounding into the neighboring cell.
func gridCoords(p Point) (x, y int) {
	return int(math.Floor(p.X)), int(math.Ceil(p.Y))
}

// ComputeBounds finds the sub-grid of cells touched by the shape's vertices.
func ComputeBounds(s *SourceShape) Bounds {
	x, y := gridCoords(s.Vertices[0].P)
	b := Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
	for _, v := range s.Vertices[1:] {
		x, y := gridCoords(v.P)
		b.MinX = min(b.MinX, x)
		b.MaxX = max(b.MaxX, x)
		b.MinY = min(b.MinY, y)
		b.MaxY = max(b.MaxY, y)
	}
	b.Cols = b.MaxX - b.MinX + 1
	b.Rows = b.MaxY - b.MinY + 1
	return b
}

// Is the whole shape inside one cell?
func (b Bounds) SingleCell() bool {
	return b.Cols == 1 && b.Rows == 1
}

// Position of grid vertex (row, col).
func (b Bounds) VertexAt(row, col int) Point {
	return Point{X: float64(b.MinX + col), Y: float64(b.MaxY - row)}
}

// Build sizes the active sub-grid for s and computes everything the cell
// assembly needs. The footprint must fit the capacity.
func (g *Grid) Build(s *SourceShape) {
	g.bounds = ComputeBounds(s)
	if g.bounds.Cols < 1 || g.bounds.Rows < 1 {
		fatalf("shape has no finite footprint: %v", g.bounds)
	}
	if g.bounds.Cols > g.capacity || g.bounds.Rows > g.capacity {
		fatalf("shape spans %dx%d cells, grid capacity is %d",
			g.bounds.Cols, g.bounds.Rows, g.capacity)
	}
	if g.bounds.SingleCell() {
		return
	}
	g.classifyGridVertices(s)
	g.depositVertexOccupancy(s)
	g.bisectEdges(s)
}

func (g *Grid) Vertex(row, col int) *GridVertex {
	return &g.vertices[row*(g.bounds.Cols+1)+col]
}

// Horizontal edge from vertex (row, col) to vertex (row, col+1).
func (g *Grid) RowEdge(row, col int) *PixelEdge {
	return &g.rowEdges[row*g.bounds.Cols+col]
}

// Vertical edge from vertex (row, col) down to vertex (row+1, col).
func (g *Grid) ColEdge(row, col int) *PixelEdge {
	return &g.colEdges[row*(g.bounds.Cols+1)+col]
}

// Source vertices inside cell (row, col), one bit per vertex index.
func (g *Grid) Occupancy(row, col int) VertexMask {
	return g.occupancy[row*g.bounds.Cols+col]
}

func (g *Grid) classifyGridVertices(s *SourceShape) {
	for row := 0; row <= g.bounds.Rows; row++ {
		for col := 0; col <= g.bounds.Cols; col++ {
			v := g.Vertex(row, col)
			v.P = g.bounds.VertexAt(row, col)
			v.Code = s.Classify(v.P)
		}
	}
}

func (g *Grid) depositVertexOccupancy(s *SourceShape) {
	cells := g.occupancy[:g.bounds.Rows*g.bounds.Cols]
	clear(cells)
	for i, v := range s.Vertices {
		x, y := gridCoords(v.P)
		row := g.bounds.MaxY - y
		col := x - g.bounds.MinX
		cells[row*g.bounds.Cols+col] |= VertexMask(1) << i
	}
}

func (g *Grid) bisectEdges(s *SourceShape) {
	rows, cols := g.bounds.Rows, g.bounds.Cols

	for row := 0; row <= rows; row++ {
		for col := 0; col < cols; col++ {
			e := g.RowEdge(row, col)
			g.loadEnds(e, g.Vertex(row, col), g.Vertex(row, col+1))
			if row == 0 || row == rows {
				e.BisectBorder(s)
			} else {
				e.Bisect(s)
			}
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col <= cols; col++ {
			e := g.ColEdge(row, col)
			g.loadEnds(e, g.Vertex(row, col), g.Vertex(row+1, col))
			if col == 0 || col == cols {
				e.BisectBorder(s)
			} else {
				e.Bisect(s)
			}
		}
	}
}

func (g *Grid) loadEnds(e *PixelEdge, start, end *GridVertex) {
	e.Ends = [2]Point{start.P, end.P}
	e.EndCodes = [2]HalfPlaneCode{start.Code, end.Code}
}
