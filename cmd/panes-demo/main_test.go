package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/panes/display"
	"github.com/lixenwraith/panes/terminal"
)

func TestRunSequence(t *testing.T) {
	var buf bytes.Buffer
	opts := display.DefaultOptions()
	opts.Size = func() (int, int, error) { return 12, 30, nil }

	if err := run(terminal.NewSink(&buf), 10, 30, opts, false, 0, nil); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b[2J\x1b[?25l") {
		t.Errorf("Expected init sequence prefix, got %q", out[:min(len(out), 16)])
	}
	if !strings.HasSuffix(out, "\x1b[2J\x1b[1;1H\x1b[?25h") {
		t.Errorf("Expected teardown sequence suffix, got %q", out[max(len(out)-16, 0):])
	}
	if !strings.Contains(out, "panes demo") {
		t.Error("Expected frame title in output")
	}
	if !strings.Contains(out, "overlapping") {
		t.Error("Expected note text in output")
	}
}

func TestRunRejectsEmptyDisplay(t *testing.T) {
	var buf bytes.Buffer
	if err := run(terminal.NewSink(&buf), 0, 0, display.DefaultOptions(), false, 0, nil); err == nil {
		t.Error("Expected error for zero-size display")
	}
}
