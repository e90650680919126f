// Package terminal provides the fixed ANSI/VT100 output dialect used by the
// display compositor.
//
// Features:
//   - Pre-allocated CSI fragments with zero-alloc integer encoding
//   - Buffered output over an abstract byte sink with flush
//   - 16-name palette over 256-color indices, plus xterm names and #rrggbb
//   - Terminal geometry query for auto-size, SIGWINCH-driven resize events
//   - Environment-based color capability detection
//   - Emergency terminal restoration for crash handlers
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
package terminal
