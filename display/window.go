package display

import (
	"fmt"

	"github.com/lixenwraith/panes/terminal"
)

// Window is an independently addressable cell grid placed on a Display.
// Content coordinates exclude the border ring; backing coordinates include it.
type Window struct {
	id      WindowID
	display *Display // non-owning; nil once destroyed
	grid    *Grid

	// Backing rectangle, one cell up/left and two cells larger when bordered
	row, col   int
	rows, cols int
	bordered   bool

	// Pen used by subsequent writes
	fg, bg terminal.Color

	hidden     bool
	next, prev WindowID
}

// NewWindow creates a window whose content area starts at (row, col) and spans
// rows x cols cells, and places it on top of the stack. A bordered window's grid
// grows by one cell on every side and gets the display's default border glyphs.
func (d *Display) NewWindow(bordered bool, row, col, rows, cols int) (*Window, error) {
	d.mustLive()
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("window %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	if bordered {
		row, col = row-1, col-1
		rows, cols = rows+2, cols+2
	}
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("window %dx%d has no cells: %w", rows, cols, ErrInvalidSize)
	}

	w := &Window{
		display:  d,
		grid:     NewGrid(rows, cols, d.blank()),
		row:      row,
		col:      col,
		rows:     rows,
		cols:     cols,
		bordered: bordered,
		fg:       d.fg,
		bg:       d.bg,
	}
	if bordered {
		stampBorder(w.grid, d.border)
	}

	d.register(w)
	d.pushTop(w)
	d.dirty = true
	return w, nil
}

// mustLive panics when the window has been destroyed
func (w *Window) mustLive() {
	if w.display == nil {
		panic("display: window used after Destroy")
	}
	w.display.mustLive()
}

// inset is the border thickness
func (w *Window) inset() int {
	if w.bordered {
		return 1
	}
	return 0
}

// contentSize returns the writable area dimensions
func (w *Window) contentSize() (rows, cols int) {
	d := w.inset()
	return w.rows - 2*d, w.cols - 2*d
}

// content returns the backing cell for content-relative (row, col), nil if outside the content area
func (w *Window) content(row, col int) *Cell {
	rows, cols := w.contentSize()
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return nil
	}
	d := w.inset()
	return w.grid.ref(row+d, col+d)
}

// eachContent calls fn for every content cell
func (w *Window) eachContent(fn func(c *Cell)) {
	rows, cols := w.contentSize()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fn(w.content(r, c))
		}
	}
}

// withPen swaps the pen for the duration of fn
func (w *Window) withPen(fg, bg terminal.Color, fn func()) {
	savedFg, savedBg := w.fg, w.bg
	w.fg, w.bg = fg, bg
	defer func() {
		w.fg, w.bg = savedFg, savedBg
	}()
	fn()
}

// SetChar writes c with the current pen at content-relative (row, col).
// Out-of-range coordinates are ignored.
func (w *Window) SetChar(c byte, row, col int) {
	w.mustLive()
	w.display.dirty = true
	if cell := w.content(row, col); cell != nil {
		*cell = Cell{Char: c, Fg: w.fg, Bg: w.bg}
	}
}

// SetCharColor writes c in fg without changing the pen
func (w *Window) SetCharColor(c byte, fg terminal.Color, row, col int) {
	w.mustLive()
	w.withPen(fg, w.bg, func() {
		w.SetChar(c, row, col)
	})
}

// SetColor changes the foreground pen. Content cells still carrying the previous
// pen color follow it; cells painted in any other color are left alone.
func (w *Window) SetColor(fg terminal.Color) {
	w.mustLive()
	if !w.display.caps.Color {
		return
	}
	old := w.fg
	w.eachContent(func(c *Cell) {
		if c.Fg == old {
			c.Fg = fg
		}
	})
	w.fg = fg
	w.display.dirty = true
}

// SetBackground changes the background pen with the same provenance rule as SetColor
func (w *Window) SetBackground(bg terminal.Color) {
	w.mustLive()
	if !w.display.caps.Background {
		return
	}
	old := w.bg
	w.eachContent(func(c *Cell) {
		if c.Bg == old {
			c.Bg = bg
		}
	})
	w.bg = bg
	w.display.dirty = true
}

// DrawBackground paints bg over content rows [startRow, endRow) and columns
// [startCol, endCol), clipped to the content area. Empty or inverted ranges paint nothing.
func (w *Window) DrawBackground(bg terminal.Color, startRow, startCol, endRow, endCol int) {
	w.mustLive()
	w.display.dirty = true
	rows, cols := w.contentSize()
	startRow, startCol = max(startRow, 0), max(startCol, 0)
	endRow, endCol = min(endRow, rows), min(endCol, cols)
	for r := startRow; r < endRow; r++ {
		for c := startCol; c < endCol; c++ {
			w.content(r, c).Bg = bg
		}
	}
}

// SetBorder replaces the border glyphs and colors. No-op on borderless windows.
func (w *Window) SetBorder(fg, bg terminal.Color, vertical, horizontal, corner byte) {
	w.mustLive()
	if !w.bordered {
		return
	}
	stampBorder(w.grid, BorderGlyphs{Vertical: vertical, Horizontal: horizontal, Corner: corner})
	w.ColorBorder(fg, bg)
}

// ColorBorder recolors the border ring, keeping its glyphs. No-op on borderless windows.
func (w *Window) ColorBorder(fg, bg terminal.Color) {
	w.mustLive()
	if !w.bordered {
		return
	}
	colorRing(w.grid, fg, bg)
	w.display.dirty = true
}

// Clear resets every content cell to Empty in the current pen
func (w *Window) Clear() {
	w.mustLive()
	blank := Cell{Char: Empty, Fg: w.fg, Bg: w.bg}
	w.eachContent(func(c *Cell) {
		*c = blank
	})
	w.display.dirty = true
}

// SetHidden toggles visibility; stack position and contents are kept
func (w *Window) SetHidden(hidden bool) {
	w.mustLive()
	if w.hidden == hidden {
		return
	}
	w.hidden = hidden
	w.display.dirty = true
}

// Hidden reports whether the compositor skips this window
func (w *Window) Hidden() bool {
	return w.hidden
}

// Raise moves the window to the top of the z-order stack
func (w *Window) Raise() {
	w.mustLive()
	w.display.raise(w)
}

// Destroy removes the window from its display and releases its grid.
// The window must not be used afterwards; destroying twice panics.
func (w *Window) Destroy() {
	w.mustLive()
	if !w.display.owns(w) {
		panic("display: window is not on its display stack")
	}
	w.display.release(w)
	w.display = nil
	w.grid = nil
}

// ID returns the window's stable handle
func (w *Window) ID() WindowID {
	return w.id
}

// Next returns the window directly above this one, nil at the top
func (w *Window) Next() *Window {
	w.mustLive()
	return w.display.window(w.next)
}

// Prev returns the window directly below this one, nil at the bottom
func (w *Window) Prev() *Window {
	w.mustLive()
	return w.display.window(w.prev)
}

// Position returns the backing top-left in display coordinates
func (w *Window) Position() (row, col int) {
	return w.row, w.col
}

// Dimension returns the backing grid size, border included
func (w *Window) Dimension() (rows, cols int) {
	return w.rows, w.cols
}

// ContentPosition returns the top-left of the writable area in display coordinates
func (w *Window) ContentPosition() (row, col int) {
	d := w.inset()
	return w.row + d, w.col + d
}

// ContentDimension returns the writable area size
func (w *Window) ContentDimension() (rows, cols int) {
	return w.contentSize()
}

// Bordered reports whether the window carries a border ring
func (w *Window) Bordered() bool {
	return w.bordered
}

// Pen returns the current foreground and background
func (w *Window) Pen() (fg, bg terminal.Color) {
	return w.fg, w.bg
}

// Cell returns the content cell at (row, col)
func (w *Window) Cell(row, col int) (Cell, bool) {
	w.mustLive()
	if c := w.content(row, col); c != nil {
		return *c, true
	}
	return Cell{}, false
}

// BackingCell returns the cell at backing-relative (row, col), border included
func (w *Window) BackingCell(row, col int) (Cell, bool) {
	w.mustLive()
	return w.grid.At(row, col)
}
