package display

// Grid is a fixed-size row-major cell buffer. Resizing is done by building a
// new Grid; contents never survive a resize.
type Grid struct {
	cells []Cell
	rows  int
	cols  int
}

// NewGrid allocates rows x cols cells, each set to fill
func NewGrid(rows, cols int, fill Cell) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{
		cells: make([]Cell, rows*cols),
		rows:  rows,
		cols:  cols,
	}
	g.Fill(fill)
	return g
}

// Rows returns the row count
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the column count
func (g *Grid) Cols() int {
	return g.cols
}

// inBounds returns true if (row, col) addresses a cell
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell at (row, col); ok is false outside the grid
func (g *Grid) At(row, col int) (c Cell, ok bool) {
	if !g.inBounds(row, col) {
		return Cell{}, false
	}
	return g.cells[row*g.cols+col], true
}

// Set stores c at (row, col); out-of-range writes are dropped
func (g *Grid) Set(row, col int, c Cell) bool {
	if !g.inBounds(row, col) {
		return false
	}
	g.cells[row*g.cols+col] = c
	return true
}

// ref returns a pointer to an in-bounds cell, nil otherwise
func (g *Grid) ref(row, col int) *Cell {
	if !g.inBounds(row, col) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// Fill sets every cell to c using exponential copy
func (g *Grid) Fill(c Cell) {
	if len(g.cells) == 0 {
		return
	}
	g.cells[0] = c
	for filled := 1; filled < len(g.cells); filled *= 2 {
		copy(g.cells[filled:], g.cells[:filled])
	}
}
