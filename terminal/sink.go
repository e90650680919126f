package terminal

import (
	"io"
)

// Sink is the output target of a display: a byte writer with flush.
// *bufio.Writer satisfies it directly.
type Sink interface {
	io.Writer

	// Flush pushes any buffered bytes to the underlying terminal
	Flush() error
}

// writerSink adapts a plain io.Writer into a Sink
type writerSink struct {
	w io.Writer
}

// NewSink wraps w as a Sink. If w already has a Flush() error method it is
// forwarded, otherwise flushing is a no-op (os.File, bytes.Buffer).
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return &writerSink{w: w}
}

func (s *writerSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *writerSink) Flush() error {
	return nil
}
