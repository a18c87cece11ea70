package cli

import "os"

// ANSI escape sequences used by the presenter. Colors are disabled when
// NO_COLOR is set, per the informal convention the rest of the terminal
// ecosystem follows.
const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

var colorsEnabled = os.Getenv("NO_COLOR") == ""

func colorReset() string {
	if !colorsEnabled {
		return ""
	}
	return ansiReset
}

func colorRed() string {
	if !colorsEnabled {
		return ""
	}
	return ansiRed
}

func colorGreen() string {
	if !colorsEnabled {
		return ""
	}
	return ansiGreen
}

func colorYellow() string {
	if !colorsEnabled {
		return ""
	}
	return ansiYellow
}

func colorCyan() string {
	if !colorsEnabled {
		return ""
	}
	return ansiCyan
}
