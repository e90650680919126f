package display

import (
	"errors"

	"github.com/lixenwraith/panes/terminal"
)

var (
	// ErrInvalidSize is returned for non-positive display sizes and empty window grids
	ErrInvalidSize = errors.New("invalid size")

	// ErrNilSink is returned when a display is created without an output sink
	ErrNilSink = errors.New("nil sink")
)

// Capabilities selects which attributes the display tracks and emits.
// A disabled attribute always resolves to the display default and is never
// written to the terminal.
type Capabilities struct {
	Color      bool
	Background bool
}

// BorderGlyphs are the characters stamped into a window's border ring
type BorderGlyphs struct {
	Vertical   byte
	Horizontal byte
	Corner     byte
}

// DefaultBorder is the plain ASCII border: '+' corners, '|' and '-' edges
var DefaultBorder = BorderGlyphs{Vertical: '|', Horizontal: '-', Corner: '+'}

// SizeFunc reports the current terminal geometry for auto-size
type SizeFunc func() (rows, cols int, err error)

// Options configures a Display at construction
type Options struct {
	Foreground   terminal.Color
	Background   terminal.Color
	Capabilities Capabilities
	Border       BorderGlyphs

	// Size is queried before each render pass while auto-size is enabled.
	// Nil selects terminal.StdoutSize.
	Size SizeFunc
}

// DefaultOptions returns white-on-black with color and background support
func DefaultOptions() Options {
	return Options{
		Foreground:   terminal.White,
		Background:   terminal.Black,
		Capabilities: Capabilities{Color: true, Background: true},
		Border:       DefaultBorder,
		Size:         terminal.StdoutSize,
	}
}
