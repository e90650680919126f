package display

import (
	"fmt"
	"log"

	"github.com/lixenwraith/panes/terminal"
)

// unknown marks a tracked cursor coordinate or color as not yet emitted
const unknown = -1

// Render repaints the cells that changed since the last pass.
//
// With auto-size on, the terminal geometry is checked first. Nothing is emitted
// while hidden or clean. Cursor moves are emitted only for non-contiguous writes
// and color sequences only on change. On a sink failure the display stays dirty
// and the next pass repaints everything.
func (d *Display) Render() error {
	d.mustLive()
	if d.autoSize {
		d.syncSize()
	}
	if d.hidden || !d.dirty {
		return nil
	}

	out := d.out
	out.SaveCursor()

	curRow, curCol := unknown, unknown
	lastFg, lastBg := unknown, unknown

	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			next := d.resolve(row, col).normalized()
			prev := d.frame.ref(row, col)
			if *prev == next {
				continue
			}

			if curRow != row || curCol != col {
				out.MoveCursor(row, col)
				curRow, curCol = row, col
			}
			if d.caps.Color && int(next.Fg) != lastFg {
				out.SetForeground(next.Fg)
				lastFg = int(next.Fg)
			}
			if d.caps.Background && int(next.Bg) != lastBg {
				out.SetBackground(next.Bg)
				lastBg = int(next.Bg)
			}
			out.WriteGlyph(next.Char)

			*prev = next
			curCol++
		}
	}

	if d.caps.Color && lastFg != int(terminal.Reset) {
		out.ResetAttributes()
	}
	out.RestoreCursor()

	if err := out.Flush(); err != nil {
		log.Printf("[display] render failed: %v", err)
		d.invalidate()
		return fmt.Errorf("display render: %w", err)
	}
	d.dirty = false
	return nil
}
