package terminal

import (
	"io"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiClear = []byte("\x1b[2J")
	csiHome  = []byte("\x1b[1;1H")
	csiSGR0  = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide    = []byte("\x1b[?25l")
	csiCursorShow    = []byte("\x1b[?25h")
	csiCursorSave    = []byte("\x1b[s")
	csiCursorRestore = []byte("\x1b[u")

	// Color prefixes
	csiFg256 = []byte("\x1b[38;5;") // followed by Nm
	csiBg256 = []byte("\x1b[48;5;") // followed by Nm
)

// byteWriter is the subset of bufio.Writer used by the encoders
type byteWriter interface {
	io.Writer
	io.ByteWriter
}

// writeInt writes a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func writeInt(w byteWriter, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	if n < 1000 {
		w.WriteByte(byte(n/100) + '0')
		w.WriteByte(byte(n/10%10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos writes CUP for a 0-indexed row/col, emitted 1-based
func writeCursorPos(w byteWriter, row, col int) {
	w.Write(csi)
	writeInt(w, row+1)
	w.WriteByte(';')
	writeInt(w, col+1)
	w.WriteByte('H')
}

// writeColor writes a 256-color SGR with the given prefix
func writeColor(w byteWriter, prefix []byte, c Color) {
	w.Write(prefix)
	writeInt(w, int(c))
	w.WriteByte('m')
}
