//go:build !unix

package terminal

import (
	"fmt"

	"golang.org/x/term"
)

// Size returns the terminal dimensions for fd
func Size(fd int) (rows, cols int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("fd %d: %w", fd, ErrNotTerminal)
	}
	cols, rows, err = term.GetSize(fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return rows, cols, nil
}
