// Package config loads display settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/panes/display"
	"github.com/lixenwraith/panes/terminal"
)

// Config mirrors the on-disk file layout
type Config struct {
	Display DisplaySection `toml:"display"`
	Border  BorderSection  `toml:"border"`
}

// DisplaySection holds default attributes and capability switches
type DisplaySection struct {
	Foreground      string `toml:"foreground"`
	Background      string `toml:"background"`
	Color           bool   `toml:"color"`
	BackgroundColor bool   `toml:"background_color"`
	AutoSize        bool   `toml:"auto_size"`
}

// BorderSection holds the default border glyphs, one byte each
type BorderSection struct {
	Vertical   string `toml:"vertical"`
	Horizontal string `toml:"horizontal"`
	Corner     string `toml:"corner"`
}

// Default returns the configuration equivalent to display.DefaultOptions
func Default() Config {
	return Config{
		Display: DisplaySection{
			Foreground:      "white",
			Background:      "black",
			Color:           true,
			BackgroundColor: true,
		},
		Border: BorderSection{
			Vertical:   string(display.DefaultBorder.Vertical),
			Horizontal: string(display.DefaultBorder.Horizontal),
			Corner:     string(display.DefaultBorder.Corner),
		},
	}
}

// Load reads configuration from path. A missing file yields Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML data over the defaults and validates the result.
// Keys absent from data keep their default values; unknown keys are rejected.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return Config{}, perr
	}

	if _, err := cfg.Options(); err != nil {
		return Config{}, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// Options converts the configuration into display construction options.
// AutoSize is not part of Options; apply it with Display.SetAutoSize.
func (c Config) Options() (display.Options, error) {
	opts := display.DefaultOptions()

	fg, err := terminal.ParseColor(c.Display.Foreground)
	if err != nil {
		return opts, fmt.Errorf("display.foreground: %w", err)
	}
	bg, err := terminal.ParseColor(c.Display.Background)
	if err != nil {
		return opts, fmt.Errorf("display.background: %w", err)
	}
	opts.Foreground = fg
	opts.Background = bg
	opts.Capabilities = display.Capabilities{
		Color:      c.Display.Color,
		Background: c.Display.BackgroundColor,
	}

	glyphs := [3]struct {
		key string
		val string
		dst *byte
	}{
		{"border.vertical", c.Border.Vertical, &opts.Border.Vertical},
		{"border.horizontal", c.Border.Horizontal, &opts.Border.Horizontal},
		{"border.corner", c.Border.Corner, &opts.Border.Corner},
	}
	for _, g := range glyphs {
		if len(g.val) != 1 {
			return opts, fmt.Errorf("%s: %w: %q", g.key, ErrGlyph, g.val)
		}
		*g.dst = g.val[0]
	}
	return opts, nil
}

// ErrGlyph is returned when a border glyph is not exactly one byte
var ErrGlyph = errors.New("border glyph must be a single byte")

// ParseError represents an error while parsing a configuration file
type ParseError struct {
	Path    string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("parse error in %s at line %d, column %d: %s", e.Path, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
