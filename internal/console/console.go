// Package console writes the human-facing output of the tools. Colors are
// only used when the destination is a terminal and NO_COLOR is unset.
package console

import (
	"fmt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"io"
	"os"
	"strings"
)

type Printer struct {
	out     io.Writer
	verbose bool

	heading *color.Color
	warn    *color.Color
	ok      *color.Color
	dim     *color.Color
}

func New(out io.Writer, verbose bool) *Printer {
	p := &Printer{
		out:     out,
		verbose: verbose,
		heading: color.New(color.FgCyan, color.Bold),
		warn:    color.New(color.FgYellow),
		ok:      color.New(color.FgGreen),
		dim:     color.New(color.Faint),
	}
	enabled := IsTerminal(out)
	for _, c := range []*color.Color{p.heading, p.warn, p.ok, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// IsTerminal reports whether w is a terminal that should receive colors.
func IsTerminal(w io.Writer) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (p *Printer) Writer() io.Writer { return p.out }
func (p *Printer) Verbose() bool     { return p.verbose }

func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Verbosef prints only when verbose output was requested.
func (p *Printer) Verbosef(format string, args ...any) {
	if !p.verbose {
		return
	}
	p.dim.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Warnf(format string, args ...any) {
	p.warn.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Successf(format string, args ...any) {
	p.ok.Fprintf(p.out, format+"\n", args...)
}

// Heading prints title between two rules of the given width.
func (p *Printer) Heading(title string, width int) {
	rule := strings.Repeat("=", width)
	p.heading.Fprintln(p.out, rule)
	p.heading.Fprintln(p.out, title)
	p.heading.Fprintln(p.out, rule)
}

func (p *Printer) Blank() {
	fmt.Fprintln(p.out)
}
