//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

// ResizeEvent carries the terminal geometry observed after a SIGWINCH
type ResizeEvent struct {
	Rows int
	Cols int
}

// ResizeWatcher turns SIGWINCH into coalesced ResizeEvents for one descriptor.
// Only the most recent unconsumed event is kept.
type ResizeWatcher struct {
	fd      int
	sigCh   chan os.Signal
	eventCh chan ResizeEvent
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatchResize starts watching fd for size changes until Stop is called
func WatchResize(fd int) *ResizeWatcher {
	r := &ResizeWatcher{
		fd:      fd,
		sigCh:   make(chan os.Signal, 1),
		eventCh: make(chan ResizeEvent, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	go r.watchLoop()
	return r
}

// Events returns the resize event channel
func (r *ResizeWatcher) Events() <-chan ResizeEvent {
	return r.eventCh
}

// Stop releases the signal subscription and waits for the watcher to exit
func (r *ResizeWatcher) Stop() {
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

func (r *ResizeWatcher) watchLoop() {
	defer close(r.doneCh)

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			rows, cols, err := Size(r.fd)
			if err != nil || rows <= 0 || cols <= 0 {
				continue
			}
			r.publish(ResizeEvent{Rows: rows, Cols: cols})
		}
	}
}

// publish replaces any pending event so consumers only see the latest size
func (r *ResizeWatcher) publish(ev ResizeEvent) {
	select {
	case r.eventCh <- ev:
	default:
		select {
		case <-r.eventCh:
		default:
		}
		r.eventCh <- ev
	}
}
