package display

import (
	"fmt"
	"log"

	"github.com/lixenwraith/panes/terminal"
)

// Display owns a window stack, the frame buffer of the last emitted state, and
// the output sink. It is not safe for concurrent use.
type Display struct {
	out   *terminal.Writer
	frame *Grid
	rows  int
	cols  int

	fg     terminal.Color
	bg     terminal.Color
	caps   Capabilities
	border BorderGlyphs
	sizeFn SizeFunc

	hidden    bool
	dirty     bool
	autoSize  bool
	destroyed bool

	// Arena indexed by WindowID-1; destroyed slots are nil
	windows []*Window
	top     WindowID
	bottom  WindowID
}

// New creates a rows x cols display writing to sink, clears the terminal and
// hides the cursor. Options are optional; DefaultOptions applies when omitted.
func New(sink terminal.Sink, rows, cols int, opts ...Options) (*Display, error) {
	if sink == nil {
		return nil, ErrNilSink
	}
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("display %dx%d: %w", rows, cols, ErrInvalidSize)
	}

	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Border == (BorderGlyphs{}) {
		o.Border = DefaultBorder
	}
	if o.Size == nil {
		o.Size = terminal.StdoutSize
	}

	d := &Display{
		out:    terminal.NewWriter(sink),
		rows:   rows,
		cols:   cols,
		fg:     o.Foreground,
		bg:     o.Background,
		caps:   o.Capabilities,
		border: o.Border,
		sizeFn: o.Size,
		dirty:  true,
	}
	d.frame = NewGrid(rows, cols, d.blank())

	d.out.Clear()
	d.out.SetCursorVisible(false)
	if err := d.out.Flush(); err != nil {
		return nil, fmt.Errorf("display init: %w", err)
	}
	return d, nil
}

// blank is the default cell: empty glyph in the display colors
func (d *Display) blank() Cell {
	return Cell{Char: Empty, Fg: d.fg, Bg: d.bg}
}

// mustLive panics when the display has been destroyed
func (d *Display) mustLive() {
	if d.destroyed {
		panic("display: used after Destroy")
	}
}

// invalidate forgets what the terminal shows so the next pass repaints everything
func (d *Display) invalidate() {
	d.out.Reset()
	d.frame.Fill(d.blank())
	d.dirty = true
}

// SetSize rebuilds the frame buffer at rows x cols. Windows keep their
// positions and are clipped by the new bounds.
func (d *Display) SetSize(rows, cols int) error {
	d.mustLive()
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("display %dx%d: %w", rows, cols, ErrInvalidSize)
	}
	if rows == d.rows && cols == d.cols {
		return nil
	}
	d.frame = NewGrid(rows, cols, d.blank())
	d.rows, d.cols = rows, cols
	d.dirty = true
	return nil
}

// SetAutoSize enables the terminal geometry check at the start of each Render
func (d *Display) SetAutoSize(enabled bool) {
	d.mustLive()
	d.autoSize = enabled
}

// syncSize follows the terminal geometry; query failures keep the current size
func (d *Display) syncSize() {
	rows, cols, err := d.sizeFn()
	if err != nil {
		log.Printf("[display] size query failed: %v", err)
		return
	}
	if rows == d.rows && cols == d.cols {
		return
	}
	if err := d.SetSize(rows, cols); err != nil {
		log.Printf("[display] ignoring terminal size: %v", err)
		return
	}
	log.Printf("[display] resized to %dx%d", rows, cols)
}

// SetHidden suspends rendering. Hiding blanks the frame buffer, clears the
// terminal and shows the cursor; unhiding hides the cursor and schedules a full repaint.
func (d *Display) SetHidden(hidden bool) error {
	d.mustLive()
	var err error
	switch {
	case hidden && !d.hidden:
		d.frame.Fill(d.blank())
		d.out.Clear()
		d.out.Home()
		d.out.SetCursorVisible(true)
		err = d.out.Flush()
	case !hidden && d.hidden:
		d.out.Clear()
		d.out.SetCursorVisible(false)
		err = d.out.Flush()
		d.dirty = true
	}
	d.hidden = hidden
	if err != nil {
		d.invalidate()
		return fmt.Errorf("display hide: %w", err)
	}
	return nil
}

// Destroy destroys every remaining window bottom to top, clears the terminal
// and restores the cursor. The display must not be used afterwards.
func (d *Display) Destroy() error {
	d.mustLive()
	for w := d.window(d.bottom); w != nil; {
		next := d.window(w.next)
		w.Destroy()
		w = next
	}
	d.windows = nil
	d.frame = nil
	d.destroyed = true

	d.out.Clear()
	d.out.Home()
	d.out.SetCursorVisible(true)
	if err := d.out.Flush(); err != nil {
		return fmt.Errorf("display destroy: %w", err)
	}
	return nil
}

// Size returns the display dimensions
func (d *Display) Size() (rows, cols int) {
	return d.rows, d.cols
}

// Hidden reports whether rendering is suspended
func (d *Display) Hidden() bool {
	return d.hidden
}

// Dirty reports whether the next Render will diff the display
func (d *Display) Dirty() bool {
	return d.dirty
}

// AutoSize reports whether Render follows the terminal geometry
func (d *Display) AutoSize() bool {
	return d.autoSize
}

// Defaults returns the display's default foreground and background
func (d *Display) Defaults() (fg, bg terminal.Color) {
	return d.fg, d.bg
}

// Capabilities returns the attribute support record
func (d *Display) Capabilities() Capabilities {
	return d.caps
}

// FrameCell returns the last emitted state of (row, col)
func (d *Display) FrameCell(row, col int) (Cell, bool) {
	d.mustLive()
	return d.frame.At(row, col)
}
