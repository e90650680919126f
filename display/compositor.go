package display

// Resolve returns the cell the terminal should show at display (row, col):
// the cell of the topmost visible window covering the point, or the default
// cell when none does. Points outside the display resolve to the default cell.
func (d *Display) Resolve(row, col int) Cell {
	d.mustLive()
	return d.resolve(row, col)
}

// resolve walks the stack top-down and stops at the first covering window,
// which yields the same cell as overwriting bottom-up
func (d *Display) resolve(row, col int) Cell {
	out := d.blank()
	if row < 0 || row >= d.rows || col < 0 || col >= d.cols {
		return out
	}

	for w := d.window(d.top); w != nil; w = d.window(w.prev) {
		if w.hidden {
			continue
		}
		if c, ok := w.grid.At(row-w.row, col-w.col); ok {
			out = c
			break
		}
	}

	if !d.caps.Color {
		out.Fg = d.fg
	}
	if !d.caps.Background {
		out.Bg = d.bg
	}
	return out
}
