package render

import (
	"golang.org/x/term"
)

// FileDescriptor is implemented by *os.File.
type FileDescriptor interface {
	Fd() uintptr
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(FileDescriptor)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind w, or fallback.
func Width(w any, fallback int) int {
	f, ok := w.(FileDescriptor)
	if !ok {
		return fallback
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return fallback
	}
	return cols
}
