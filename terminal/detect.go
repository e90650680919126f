package terminal

import (
	"os"
	"strings"
)

// DetectColor reports whether the environment indicates a color-capable
// terminal. NO_COLOR (any value) and TERM=dumb or empty disable color.
func DetectColor() bool {
	return detectColor(os.Getenv)
}

func detectColor(getenv func(string) string) bool {
	if getenv("NO_COLOR") != "" {
		return false
	}
	term := strings.ToLower(getenv("TERM"))
	if term == "" || term == "dumb" {
		// Known emulators export their own markers even without TERM
		return getenv("COLORTERM") != "" ||
			getenv("KITTY_WINDOW_ID") != "" ||
			getenv("WEZTERM_PANE") != "" ||
			getenv("ALACRITTY_WINDOW_ID") != ""
	}
	return true
}
