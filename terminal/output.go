package terminal

import (
	"bufio"
	"fmt"
)

// outputBufferSize is large enough to hold a full-screen repaint of a big terminal
const outputBufferSize = 64 * 1024

// Writer encodes the escape dialect into a buffered Sink.
// Individual writes never fail; the first error is reported by Flush.
type Writer struct {
	buf  *bufio.Writer
	sink Sink
}

// NewWriter creates a buffered escape writer over sink
func NewWriter(sink Sink) *Writer {
	return &Writer{
		buf:  bufio.NewWriterSize(sink, outputBufferSize),
		sink: sink,
	}
}

// Clear erases the whole screen (ED 2)
func (w *Writer) Clear() {
	w.buf.Write(csiClear)
}

// Home moves the cursor to the top-left cell
func (w *Writer) Home() {
	w.buf.Write(csiHome)
}

// SetCursorVisible shows or hides the cursor
func (w *Writer) SetCursorVisible(visible bool) {
	if visible {
		w.buf.Write(csiCursorShow)
	} else {
		w.buf.Write(csiCursorHide)
	}
}

// SaveCursor emits DECSC-style save (CSI s)
func (w *Writer) SaveCursor() {
	w.buf.Write(csiCursorSave)
}

// RestoreCursor emits the matching restore (CSI u)
func (w *Writer) RestoreCursor() {
	w.buf.Write(csiCursorRestore)
}

// MoveCursor positions the cursor at a 0-indexed row/col
func (w *Writer) MoveCursor(row, col int) {
	writeCursorPos(w.buf, row, col)
}

// SetForeground selects a 256-color foreground
func (w *Writer) SetForeground(c Color) {
	writeColor(w.buf, csiFg256, c)
}

// SetBackground selects a 256-color background
func (w *Writer) SetBackground(c Color) {
	writeColor(w.buf, csiBg256, c)
}

// ResetAttributes emits SGR 0
func (w *Writer) ResetAttributes() {
	w.buf.Write(csiSGR0)
}

// WriteGlyph writes a single character cell
func (w *Writer) WriteGlyph(b byte) {
	w.buf.WriteByte(b)
}

// Buffered returns the number of bytes pending since the last Flush
func (w *Writer) Buffered() int {
	return w.buf.Buffered()
}

// Flush drains the buffer into the sink, then flushes the sink.
// A failed write leaves the buffer unusable until Reset.
func (w *Writer) Flush() error {
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("terminal write: %w", err)
	}
	if err := w.sink.Flush(); err != nil {
		return fmt.Errorf("terminal flush: %w", err)
	}
	return nil
}

// Reset discards pending output and any sticky write error
func (w *Writer) Reset() {
	w.buf.Reset(w.sink)
}
