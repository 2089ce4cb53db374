// Package output provides context-aware output for grh.
// Stdout carries the interactive session: prompts, lists and status lines.
// Stderr (via log package) is used for diagnostics.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/grh/internal/ui/styles"
)

type ctxKey struct{}

// Printer writes session output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a new Printer writing to the given writer unchanged.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewTerminal creates a Printer whose styled output is adapted to what w
// supports, detected from w and environ (NO_COLOR, TERM, not a TTY...).
// With plain set every escape sequence is stripped.
func NewTerminal(w io.Writer, environ []string, plain bool) *Printer {
	cw := colorprofile.NewWriter(w, environ)
	if plain {
		cw.Profile = colorprofile.NoTTY
	}
	return &Printer{w: cw}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return &Printer{w: os.Stdout}
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Line writes text in the given tone followed by a newline.
func (p *Printer) Line(tone styles.Tone, text string) {
	fmt.Fprintln(p.w, styles.Render(tone, text))
}

// Linef formats and writes a line in the given tone.
func (p *Printer) Linef(tone styles.Tone, format string, a ...any) {
	p.Line(tone, fmt.Sprintf(format, a...))
}
