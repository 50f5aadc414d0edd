package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Printer writes diagnostics to a stream.
type Printer struct {
	out    io.Writer
	styles Styles
	width  int
}

// NewPrinter creates a Printer for w. If w is nil, os.Stderr is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stderr
	}
	width := MaxContentWidth
	if f, ok := w.(*os.File); ok {
		width = GetTerminalWidth(f)
	}
	return &Printer{
		out:    w,
		styles: NewStyles(w),
		width:  width,
	}
}

// Failure prints a failure report: a title line, the message and optional hints.
func (p *Printer) Failure(title, message string, hints []string) {
	_, _ = fmt.Fprintln(p.out, p.RenderFailure(title, message, hints))
}

// RenderFailure returns the failure report as a string.
func (p *Printer) RenderFailure(title, message string, hints []string) string {
	var lines []string
	lines = append(lines, p.styles.ErrorTitle.Render(fmt.Sprintf("%s %s", FailureMarker, title)))

	if message != "" {
		msg := p.styles.ErrorMessage.
			PaddingLeft(2).
			Render(ansi.Wordwrap(message, p.width-2, ""))
		lines = append(lines, msg)
	}

	for _, hint := range hints {
		lines = append(lines, p.styles.Hint.Render(HintMarker+" "+hint))
	}

	return strings.Join(lines, "\n")
}

// Success prints a success note with optional key/value details.
func (p *Printer) Success(title string, details [][2]string) {
	_, _ = fmt.Fprintln(p.out, p.RenderSuccess(title, details))
}

// RenderSuccess returns the success note as a string.
func (p *Printer) RenderSuccess(title string, details [][2]string) string {
	lines := []string{p.styles.SuccessTitle.Render(fmt.Sprintf("%s %s", SuccessMarker, title))}
	for _, kv := range details {
		lines = append(lines, "  "+p.styles.Key.Render(kv[0]+":")+" "+p.styles.Value.Render(kv[1]))
	}
	return strings.Join(lines, "\n")
}

// Usage prints raw usage text.
func (p *Printer) Usage(text string) {
	_, _ = fmt.Fprint(p.out, text)
}
