package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the tmsim ASCII art banner.
func PrintBanner(w io.Writer) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"  _                  _", "#818cf8"},
		{" | |_ _ __ ___  ___(_)_ __ ___", "#a78bfa"},
		{" | __| '_ ` _ \\/ __| | '_ ` _ \\", "#c084fc"},
		{" | |_| | | | | \\__ \\ | | | | | |", "#e879f9"},
		{"  \\__|_| |_| |_|___/_|_| |_| |_|", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
