package display

// WindowID is a stable handle into a display's window arena. Zero is "no window".
// Handles are never reused within a display.
type WindowID uint32

// window resolves a handle, nil for zero or a destroyed slot
func (d *Display) window(id WindowID) *Window {
	if id == 0 || int(id) > len(d.windows) {
		return nil
	}
	return d.windows[id-1]
}

// owns reports whether w is a live member of this display's stack
func (d *Display) owns(w *Window) bool {
	return w.id != 0 && d.window(w.id) == w
}

// register allocates a handle for w in the arena
func (d *Display) register(w *Window) {
	d.windows = append(d.windows, w)
	w.id = WindowID(len(d.windows))
}

// pushTop links w as the new top (most recent) window
func (d *Display) pushTop(w *Window) {
	w.next = 0
	w.prev = d.top
	if d.top == 0 {
		d.bottom = w.id
	} else {
		d.window(d.top).next = w.id
	}
	d.top = w.id
}

// yank unlinks w from wherever it sits in the stack
func (d *Display) yank(w *Window) {
	if d.top == w.id {
		d.top = w.prev
		if w.prev == 0 {
			d.bottom = 0
		} else {
			d.window(w.prev).next = 0
		}
	} else {
		// Not top, so next is always set
		d.window(w.next).prev = w.prev
		if w.prev != 0 {
			d.window(w.prev).next = w.next
		} else {
			d.bottom = w.next
		}
	}
	w.next, w.prev = 0, 0
}

// raise moves w to the top of the stack
func (d *Display) raise(w *Window) {
	if d.top == w.id {
		return
	}
	d.yank(w)
	d.pushTop(w)
	d.dirty = true
}

// release unlinks w and frees its arena slot
func (d *Display) release(w *Window) {
	d.yank(w)
	d.windows[w.id-1] = nil
	d.dirty = true
}

// Top returns the most recently created or raised window, nil if none
func (d *Display) Top() *Window {
	d.mustLive()
	return d.window(d.top)
}

// Bottom returns the oldest window in the stack, nil if none
func (d *Display) Bottom() *Window {
	d.mustLive()
	return d.window(d.bottom)
}

// Windows returns the stack in z-order, bottom first
func (d *Display) Windows() []*Window {
	d.mustLive()
	var out []*Window
	for w := d.window(d.bottom); w != nil; w = d.window(w.next) {
		out = append(out, w)
	}
	return out
}
