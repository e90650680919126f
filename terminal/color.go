package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Color is a 256-color palette index, emitted verbatim in 38;5 / 48;5 sequences
type Color uint8

// Named palette, indices 0-15
const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	Gray
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// Reset doubles as white and the "attributes are at default" sentinel
const Reset = White

// ErrUnknownColor is returned when a color name cannot be resolved
var ErrUnknownColor = errors.New("unknown color")

var paletteNames = [16]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"gray", "bright_red", "bright_green", "bright_yellow",
	"bright_blue", "bright_magenta", "bright_cyan", "bright_white",
}

// String returns the palette name for 0-15, the decimal index otherwise
func (c Color) String() string {
	if int(c) < len(paletteNames) {
		return paletteNames[c]
	}
	return strconv.Itoa(int(c))
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// ParseColor resolves a color name to a palette index.
// Accepted forms, in lookup order:
//   - palette names ("red", "bright-blue", "bright_blue", "grey")
//   - decimal index "0"-"255"
//   - xterm/W3C names and "#rrggbb" via tcell, RGB values mapped to the nearest 256-color entry
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	switch key {
	case "grey":
		key = "gray"
	case "reset", "default":
		return Reset, nil
	}
	for i, n := range paletteNames {
		if n == key {
			return Color(i), nil
		}
	}
	if n, err := strconv.Atoi(key); err == nil {
		if n < 0 || n > 255 {
			return 0, fmt.Errorf("%w: index %d out of range", ErrUnknownColor, n)
		}
		return Color(n), nil
	}

	tc := tcell.GetColor(key)
	if !tc.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	if tc.IsRGB() {
		r, g, b := tc.RGB()
		return RGBTo256(RGB{R: uint8(r), G: uint8(g), B: uint8(b)}), nil
	}
	return Color(tc - tcell.ColorValid), nil
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeIndex maps a channel value to the nearest cube level 0-5
func cubeIndex(v int) int {
	best := 0
	bestDist := abs(v - cubeValues[0])
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(v - cubeValues[j]); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

// RGBTo256 finds the nearest 256-color palette index for an RGB value,
// choosing between the color cube and the grayscale ramp
func RGBTo256(c RGB) Color {
	r, g, b := int(c.R), int(c.G), int(c.B)
	ci, cj, ck := cubeIndex(r), cubeIndex(g), cubeIndex(b)
	cube := Color(16 + 36*ci + 6*cj + ck)

	gray := (r + g + b) / 3
	if max(abs(r-gray), abs(g-gray), abs(b-gray)) >= 10 || gray < 4 || gray > 243 {
		return cube
	}

	// Grayscale ramp: 232-255 maps to luminance 8, 18, ..., 238
	step := min((gray-8)/10, 23)
	if step < 0 {
		step = 0
	}
	level := 8 + step*10
	grayDist := abs(r-level) + abs(g-level) + abs(b-level)
	cubeDist := abs(r-cubeValues[ci]) + abs(g-cubeValues[cj]) + abs(b-cubeValues[ck])
	if grayDist < cubeDist {
		return Color(grayscaleStart + step)
	}
	return cube
}
