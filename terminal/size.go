package terminal

import (
	"errors"
	"os"
)

// ErrNotTerminal is returned when a geometry query targets a non-tty descriptor
var ErrNotTerminal = errors.New("not a terminal")

// StdoutSize returns the row and column count of the terminal attached to stdout
func StdoutSize() (rows, cols int, err error) {
	return Size(int(os.Stdout.Fd()))
}
