package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery when the owning display cannot be destroyed normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiSGR0)
	w.Write(csiClear)
	w.Write(csiHome)
	w.Write(csiCursorShow)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
