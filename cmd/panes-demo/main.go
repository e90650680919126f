// panes-demo opens a full-screen display, stacks a few windows on it and
// walks through auto-size, raise, hide and destroy with a pause between steps.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/lixenwraith/panes/config"
	"github.com/lixenwraith/panes/display"
	"github.com/lixenwraith/panes/terminal"
)

var (
	configFlag = flag.String("config", "panes.toml", "Path to TOML configuration file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/panes.log")
	delayFlag  = flag.Duration("delay", 3*time.Second, "Pause between demo steps")
)

const (
	fallbackRows = 40
	fallbackCols = 80
)

func main() {
	// Restore terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPANES CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	opts, err := cfg.Options()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	rows, cols, err := terminal.StdoutSize()
	if err != nil {
		log.Printf("[demo] size query failed, using %dx%d: %v", fallbackRows, fallbackCols, err)
		rows, cols = fallbackRows, fallbackCols
	}

	if !terminal.DetectColor() {
		log.Printf("[demo] color not supported by terminal, disabling attributes")
		opts.Capabilities = display.Capabilities{}
	}

	resize := terminal.WatchResize(int(os.Stdout.Fd()))
	defer resize.Stop()

	if err := run(terminal.NewSink(os.Stdout), rows, cols, opts, cfg.Display.AutoSize, *delayFlag, resize.Events()); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// run drives one pass of the demo sequence against sink. Resize events
// received while pausing trigger an extra render so auto-size can react.
func run(sink terminal.Sink, rows, cols int, opts display.Options, autoSize bool, delay time.Duration, resized <-chan terminal.ResizeEvent) error {
	d, err := display.New(sink, rows, cols, opts)
	if err != nil {
		return fmt.Errorf("failed to create display: %w", err)
	}

	step := func(name string) error {
		log.Printf("[demo] %s", name)
		if err := d.Render(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		timer := time.NewTimer(delay)
		defer timer.Stop()
		for {
			select {
			case <-timer.C:
				return nil
			case ev := <-resized:
				log.Printf("[demo] resize to %dx%d", ev.Rows, ev.Cols)
				if err := d.Render(); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
	}

	frame, err := d.NewWindow(true, 1, 1, max(rows-2, 0), max(cols-2, 0))
	if err != nil {
		d.Destroy()
		return fmt.Errorf("failed to create frame window: %w", err)
	}
	frame.ColorBorder(terminal.BrightCyan, opts.Background)
	frame.Print("panes demo", 0, 1)

	note, err := d.NewWindow(true, rows/3, cols/4, 4, cols/2)
	if err != nil {
		d.Destroy()
		return fmt.Errorf("failed to create note window: %w", err)
	}
	note.DrawBackground(terminal.Blue, 0, 0, 4, cols/2)
	note.PrintColor("overlapping window\nraised and hidden below", terminal.BrightYellow, 0, 1)
	note.SetBorder(terminal.BrightWhite, terminal.Blue, '#', '=', '#')

	d.SetAutoSize(autoSize)

	steps := []struct {
		name string
		fn   func()
	}{
		{"initial", func() {}},
		{"auto-size", func() { d.SetAutoSize(true) }},
		{"raise frame", func() { frame.Raise() }},
		{"hide frame", func() { frame.SetHidden(true) }},
		{"destroy note", func() { note.Destroy() }},
	}
	for _, s := range steps {
		s.fn()
		if err := step(s.name); err != nil {
			d.Destroy()
			return err
		}
	}

	if err := d.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy display: %w", err)
	}
	return nil
}
