package display

import (
	"github.com/lixenwraith/panes/terminal"
)

const tabStop = 8

// Print writes text at content-relative (row, col) with the current pen.
//
// Layout rules:
//   - a glyph that would land at or past the content width wraps to the next row at col
//   - '\n' (and "\r\n") moves to the next row at col; a bare '\r' returns to col
//   - '\t' writes spaces up to the next multiple-of-8 column
//   - writing stops once the row passes the content height
//
// Cells outside the content area are skipped. Existing cell backgrounds are kept.
func (w *Window) Print(text string, row, col int) {
	w.mustLive()
	w.print(text, row, col, false)
}

// PrintColor is Print with a temporary foreground
func (w *Window) PrintColor(text string, fg terminal.Color, row, col int) {
	w.mustLive()
	w.withPen(fg, w.bg, func() {
		w.print(text, row, col, false)
	})
}

// PrintColorBackground is Print with a temporary foreground and background.
// Unlike Print it also paints the background of every written cell.
func (w *Window) PrintColorBackground(text string, fg, bg terminal.Color, row, col int) {
	w.mustLive()
	w.withPen(fg, bg, func() {
		w.print(text, row, col, true)
	})
}

func (w *Window) print(text string, row, col int, paintBg bool) {
	w.display.dirty = true
	rows, cols := w.contentSize()

	put := func(r, c int, ch byte) {
		cell := w.content(r, c)
		if cell == nil {
			return
		}
		cell.Char = ch
		cell.Fg = w.fg
		if paintBg {
			cell.Bg = w.bg
		}
	}

	r, c := row, col
	for i := 0; i < len(text) && r < rows; i++ {
		ch := text[i]
		switch ch {
		case '\n':
			r, c = r+1, col
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				continue
			}
			c = col
		case '\t':
			if c >= cols {
				r, c = r+1, col
				if r >= rows {
					return
				}
			}
			stop := nextTabStop(c)
			for ; c < stop && c < cols; c++ {
				put(r, c, ' ')
			}
			c = stop
		default:
			if c >= cols {
				r, c = r+1, col
				if r >= rows {
					return
				}
			}
			put(r, c, ch)
			c++
		}
	}
}

// nextTabStop returns the first tab stop strictly after c
func nextTabStop(c int) int {
	m := c % tabStop
	if m < 0 {
		m += tabStop
	}
	return c + tabStop - m
}
