package display

import (
	"testing"
)

func TestPrintLayout(t *testing.T) {
	tests := []struct {
		name     string
		rows     int
		cols     int
		text     string
		row, col int
		want     []string
	}{
		{"plain", 2, 6, "hi", 0, 0, []string{"hi....", "......"}},
		{"offset", 2, 6, "hi", 1, 3, []string{"......", "...hi."}},
		{"wrap at width", 3, 4, "abcdefghij", 0, 0, []string{"abcd", "efgh", "ij.."}},
		{"wrap to start column", 3, 4, "abcde", 0, 1, []string{".abc", ".de.", "...."}},
		{"truncate past height", 2, 3, "abcdefghijkl", 0, 0, []string{"abc", "def"}},
		{"start below height", 2, 3, "abc", 2, 0, []string{"...", "..."}},
		{"newline", 3, 5, "ab\ncd", 0, 1, []string{".ab..", ".cd..", "....."}},
		{"crlf is one break", 3, 5, "ab\r\ncd", 0, 0, []string{"ab...", "cd...", "....."}},
		{"bare cr returns to start", 2, 5, "abc\rX", 0, 0, []string{"Xbc..", "....."}},
		{"trailing newline", 2, 3, "ab\n", 0, 0, []string{"ab.", "..."}},
		{"tab from zero", 1, 10, "\t", 0, 0, []string{"        .."}},
		{"tab mid stop", 1, 12, "a\tb", 0, 0, []string{"a       b..."}},
		{"tab on stop", 1, 12, "abcdefgh\tx", 0, 0, []string{"abcdefgh    "}},
		{"tab clipped then wrap", 2, 6, "ab\tc", 0, 0, []string{"ab    ", "c....."}},
		{"negative column clips", 1, 4, "abcdef", 0, -2, []string{"cdef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newTestDisplay(t, 10, 20)
			w := mustWindow(t, d, false, 0, 0, tt.rows, tt.cols)
			w.Print(tt.text, tt.row, tt.col)
			for r, want := range tt.want {
				if got := contentRow(t, w, r); got != want {
					t.Errorf("Row %d: expected %q, got %q", r, want, got)
				}
			}
		})
	}
}

func TestPrintTabStopAtZeroWritesThroughColumnSeven(t *testing.T) {
	d, _ := newTestDisplay(t, 4, 20)
	w := mustWindow(t, d, true, 1, 1, 1, 12)
	w.SetChar('z', 0, 8)

	w.Print("\t", 0, 0)

	for c := 0; c <= 7; c++ {
		if cell, _ := w.Cell(0, c); cell.Char != ' ' {
			t.Errorf("Expected space at column %d, got %q", c, cell.Char)
		}
	}
	if cell, _ := w.Cell(0, 8); cell.Char != 'z' {
		t.Errorf("Expected column 8 untouched, got %q", cell.Char)
	}
}

func TestPrintNeverStoresControlChars(t *testing.T) {
	d, _ := newTestDisplay(t, 10, 20)
	w := mustWindow(t, d, true, 1, 1, 4, 8)
	w.Print("a\nb\r\nc\rd\te", 0, 0)

	rows, cols := w.ContentDimension()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cell, _ := w.Cell(r, c)
			if cell.Char == '\n' || cell.Char == '\r' || cell.Char == '\t' {
				t.Errorf("Expected no control glyph at (%d, %d), got %q", r, c, cell.Char)
			}
		}
	}
}

func TestPrintBorderedKeepsBorder(t *testing.T) {
	d, _ := newTestDisplay(t, 10, 20)
	w := mustWindow(t, d, true, 1, 1, 2, 3)
	w.Print("abcdefghijklmnop", 0, 0)

	if got := contentRow(t, w, 0); got != "abc" {
		t.Errorf("Expected %q, got %q", "abc", got)
	}
	if got := contentRow(t, w, 1); got != "def" {
		t.Errorf("Expected %q, got %q", "def", got)
	}
	dx, dy := w.Dimension()
	for r := 0; r < dx; r++ {
		for c := 0; c < dy; c++ {
			if r > 0 && r < dx-1 && c > 0 && c < dy-1 {
				continue
			}
			cell, _ := w.BackingCell(r, c)
			if cell.Char != '+' && cell.Char != '|' && cell.Char != '-' {
				t.Errorf("Expected border glyph at (%d, %d), got %q", r, c, cell.Char)
			}
		}
	}
}

func TestPrintBackgroundHandling(t *testing.T) {
	d, _ := newTestDisplay(t, 10, 20)
	w := mustWindow(t, d, false, 0, 0, 2, 6)
	w.DrawBackground(blue, 0, 0, 1, 6)

	w.Print("ab", 0, 0)
	if cell, _ := w.Cell(0, 0); cell.Bg != blue || cell.Char != 'a' {
		t.Errorf("Expected Print to keep the cell background, got %+v", cell)
	}

	w.PrintColorBackground("cd", red, green, 0, 2)
	for c := 2; c < 4; c++ {
		cell, _ := w.Cell(0, c)
		if cell.Fg != red || cell.Bg != green {
			t.Errorf("Expected red on green at col %d, got %+v", c, cell)
		}
	}
	if fg, bg := w.Pen(); fg != white || bg != black {
		t.Errorf("Expected pen restored, got %v/%v", fg, bg)
	}
}

func TestPrintColorRestoresPen(t *testing.T) {
	d, _ := newTestDisplay(t, 10, 20)
	w := mustWindow(t, d, false, 0, 0, 1, 6)

	w.PrintColor("ab", red, 0, 0)
	w.Print("c", 0, 2)

	if cell, _ := w.Cell(0, 1); cell.Fg != red {
		t.Errorf("Expected red text, got %v", cell.Fg)
	}
	if cell, _ := w.Cell(0, 2); cell.Fg != white {
		t.Errorf("Expected pen restored to white, got %v", cell.Fg)
	}
}

func TestNextTabStop(t *testing.T) {
	tests := [][2]int{{0, 8}, {1, 8}, {7, 8}, {8, 16}, {15, 16}, {-1, 0}, {-8, 0}, {-9, -8}}
	for _, tt := range tests {
		if got := nextTabStop(tt[0]); got != tt[1] {
			t.Errorf("nextTabStop(%d): expected %d, got %d", tt[0], tt[1], got)
		}
	}
}
