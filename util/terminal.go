package util

import (
	"os"

	"golang.org/x/term"
)

// TerminalWidth returns the column width of the terminal attached to stdout,
// or fallback when stdout is not a terminal.
func TerminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return width
		}
	}

	return fallback
}
