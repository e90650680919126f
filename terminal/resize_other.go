//go:build !unix

package terminal

// ResizeEvent carries the terminal geometry observed after a resize
type ResizeEvent struct {
	Rows int
	Cols int
}

// ResizeWatcher never fires on platforms without SIGWINCH
type ResizeWatcher struct {
	eventCh chan ResizeEvent
}

// WatchResize returns a watcher whose channel never receives
func WatchResize(fd int) *ResizeWatcher {
	return &ResizeWatcher{eventCh: make(chan ResizeEvent)}
}

// Events returns the resize event channel
func (r *ResizeWatcher) Events() <-chan ResizeEvent {
	return r.eventCh
}

// Stop is a no-op
func (r *ResizeWatcher) Stop() {}
