package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI escape sequences used by the views.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	FgRed    = "\033[31m"
	FgGreen  = "\033[32m"
	FgYellow = "\033[33m"
	FgCyan   = "\033[36m"

	FgBrightGreen = "\033[92m"
	FgBrightRed   = "\033[91m"
)

// Terminal writes game output, optionally stripping ANSI styling for
// non-tty or --no-color output.
type Terminal struct {
	out     io.Writer
	noColor bool
}

// NewTerminal creates a Terminal writing to out. When noColor is set,
// Style becomes a no-op.
func NewTerminal(out io.Writer, noColor bool) *Terminal {
	return &Terminal{out: out, noColor: noColor}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the width of the terminal attached to f, or fallback
// when f is not a terminal.
func Width(f *os.File, fallback int) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// Style wraps s in the given ANSI codes, unless color is disabled.
func (t *Terminal) Style(s string, codes ...string) string {
	if t.noColor || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + Reset
}

// Write writes the given string to the terminal output.
func (t *Terminal) Write(s string) {
	fmt.Fprint(t.out, s)
}

// WriteLine writes a string followed by a newline.
func (t *Terminal) WriteLine(s string) {
	fmt.Fprintln(t.out, s)
}

// Writef writes a formatted string.
func (t *Terminal) Writef(format string, args ...any) {
	fmt.Fprintf(t.out, format, args...)
}

// WriteLines writes each line followed by a newline.
func (t *Terminal) WriteLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(t.out, line)
	}
}
