// Package ui prints colored status lines for the command line.
package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	// ANSI Colors
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
)

// Printer writes status lines to W, with ANSI colors when Color is set.
type Printer struct {
	W     io.Writer
	Color bool
}

// New returns a Printer for w. Colors are enabled only when w is a terminal
// and NO_COLOR is unset.
func New(w io.Writer) *Printer {
	return &Printer{W: w, Color: isTerminal(w) && os.Getenv("NO_COLOR") == ""}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

func (p *Printer) c(color string) string {
	if !p.Color {
		return ""
	}
	return color
}

// Error prints "error: msg" in red.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.W, "%serror:%s %s\n", p.c(ColorRed), p.c(ColorReset), msg)
}

// Warning prints "warning: msg" in yellow.
func (p *Printer) Warning(msg string) {
	fmt.Fprintf(p.W, "%swarning:%s %s\n", p.c(ColorYellow), p.c(ColorReset), msg)
}

// Plain prints msg unchanged.
func (p *Printer) Plain(msg string) {
	fmt.Fprintln(p.W, msg)
}

// Check prints a check-marked (ok) or crossed line with a padded label.
func (p *Printer) Check(ok bool, label, detail string) {
	mark, color := "✔", ColorGreen
	if !ok {
		mark, color = "✘", ColorRed
	}
	fmt.Fprintf(p.W, "  %s%s%s %-15s %s\n", p.c(color), mark, p.c(ColorReset), label, detail)
}
