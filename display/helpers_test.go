package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/lixenwraith/panes/terminal"
)

// testSink is an in-memory sink that can be told to fail
type testSink struct {
	bytes.Buffer
	fail    bool
	flushes int
}

var errSinkBroken = errors.New("sink broken")

func (s *testSink) Write(p []byte) (int, error) {
	if s.fail {
		return 0, errSinkBroken
	}
	return s.Buffer.Write(p)
}

func (s *testSink) Flush() error {
	s.flushes++
	return nil
}

// fixedSize returns a SizeFunc reporting a constant geometry
func fixedSize(rows, cols int) SizeFunc {
	return func() (int, int, error) {
		return rows, cols, nil
	}
}

// newTestDisplay creates a display over a fresh sink and discards the init sequence
func newTestDisplay(t *testing.T, rows, cols int) (*Display, *testSink) {
	t.Helper()
	opts := DefaultOptions()
	opts.Size = fixedSize(rows, cols)
	return newTestDisplayWith(t, rows, cols, opts)
}

func newTestDisplayWith(t *testing.T, rows, cols int, opts Options) (*Display, *testSink) {
	t.Helper()
	sink := &testSink{}
	d, err := New(sink, rows, cols, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	sink.Reset()
	return d, sink
}

// mustWindow creates a window or fails the test
func mustWindow(t *testing.T, d *Display, bordered bool, row, col, rows, cols int) *Window {
	t.Helper()
	w, err := d.NewWindow(bordered, row, col, rows, cols)
	if err != nil {
		t.Fatalf("NewWindow failed: %v", err)
	}
	return w
}

// frameRow returns the glyphs of a frame buffer row
func frameRow(t *testing.T, d *Display, row int) string {
	t.Helper()
	_, cols := d.Size()
	b := make([]byte, cols)
	for c := 0; c < cols; c++ {
		cell, ok := d.FrameCell(row, c)
		if !ok {
			t.Fatalf("FrameCell(%d, %d) out of range", row, c)
		}
		b[c] = cell.Char
	}
	return string(b)
}

// contentRow returns the glyphs of a window content row, Empty shown as '.'
func contentRow(t *testing.T, w *Window, row int) string {
	t.Helper()
	_, cols := w.ContentDimension()
	b := make([]byte, cols)
	for c := 0; c < cols; c++ {
		cell, ok := w.Cell(row, c)
		if !ok {
			t.Fatalf("Cell(%d, %d) out of range", row, c)
		}
		if cell.Char == Empty {
			b[c] = '.'
		} else {
			b[c] = cell.Char
		}
	}
	return string(b)
}

// expectPanic runs fn and fails unless it panics
func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("Expected %s to panic", name)
		}
	}()
	fn()
}

var (
	white = terminal.White
	black = terminal.Black
	red   = terminal.Red
	green = terminal.Green
	blue  = terminal.Blue
)
