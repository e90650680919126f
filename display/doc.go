// Package display composites overlapping, optionally bordered text windows
// onto a character terminal and repaints only the cells that changed.
//
// A Display owns a z-ordered stack of Windows and a frame buffer holding the
// last emitted state. Windows are written independently; Render resolves every
// display cell against the stack (newest window on top), diffs the result
// against the frame buffer and emits the minimal escape stream to the sink.
//
// All operations are synchronous and single-threaded per Display. The caller
// owns the render cadence.
package display
