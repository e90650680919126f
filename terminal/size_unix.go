//go:build unix

package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Size returns the terminal dimensions for fd via TIOCGWINSZ
func Size(fd int) (rows, cols int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, fmt.Errorf("fd %d: %w", fd, ErrNotTerminal)
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("TIOCGWINSZ: %w", err)
	}
	return int(ws.Row), int(ws.Col), nil
}
