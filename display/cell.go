package display

import (
	"github.com/lixenwraith/panes/terminal"
)

// Empty is the sentinel character of a never-written cell, rendered as a space
const Empty byte = 0

// Cell is one character position: glyph plus foreground and background
type Cell struct {
	Char byte
	Fg   terminal.Color
	Bg   terminal.Color
}

// glyph returns the byte emitted for the cell
func (c Cell) glyph() byte {
	switch c.Char {
	case Empty, ' ', '\t', '\n', '\v', '\f', '\r':
		return ' '
	}
	return c.Char
}

// normalized returns the cell as it appears on the terminal after emission
func (c Cell) normalized() Cell {
	c.Char = c.glyph()
	return c
}
