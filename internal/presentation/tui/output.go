package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// ResultLine formats the closing lines printed after a simulation, matching
// the plain "Created trace file" / "Result" output. On terminals the value is
// highlighted.
func ResultLine(w io.Writer, traceFile string, value uint32) string {
	res := fmt.Sprint(value)
	if IsTerminal(w) {
		p := termenv.ColorProfile()
		res = termenv.String(res).Bold().Foreground(p.Color("#22c55e")).String()
	}
	if traceFile == "" {
		return fmt.Sprintf("Result: %s\n", res)
	}
	return fmt.Sprintf("Created trace file '%s'\nResult: %s\n", traceFile, res)
}
