package display

import (
	"github.com/lixenwraith/panes/terminal"
)

// stampBorder writes border glyphs into the outer ring of g, leaving colors intact
func stampBorder(g *Grid, glyphs BorderGlyphs) {
	if g.rows < 2 || g.cols < 2 {
		return
	}
	last, right := g.rows-1, g.cols-1

	// Corners
	for _, p := range [4][2]int{{0, 0}, {0, right}, {last, 0}, {last, right}} {
		g.ref(p[0], p[1]).Char = glyphs.Corner
	}

	// Vertical edges
	for r := 1; r < last; r++ {
		g.ref(r, 0).Char = glyphs.Vertical
		g.ref(r, right).Char = glyphs.Vertical
	}

	// Horizontal edges
	for c := 1; c < right; c++ {
		g.ref(0, c).Char = glyphs.Horizontal
		g.ref(last, c).Char = glyphs.Horizontal
	}
}

// colorRing paints the outer ring of g without touching glyphs
func colorRing(g *Grid, fg, bg terminal.Color) {
	paint := func(r, c int) {
		if cell := g.ref(r, c); cell != nil {
			cell.Fg = fg
			cell.Bg = bg
		}
	}
	for r := 0; r < g.rows; r++ {
		paint(r, 0)
		paint(r, g.cols-1)
	}
	for c := 0; c < g.cols; c++ {
		paint(0, c)
		paint(g.rows-1, c)
	}
}
