package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

var _ Terminal = (*TTY)(nil)

// controllingTTY is opened for key input when stdin is not a terminal.
const controllingTTY = "/dev/tty"

// TTY is the Terminal backed by the process's controlling terminal.
// Rows go to stderr through a buffered writer; keys are read through a
// survey rune reader with echo and line buffering disabled.
type TTY struct {
	in     *os.File
	out    *os.File
	w      *bufio.Writer
	reader *surveyterm.RuneReader
	cursor *surveyterm.Cursor

	ownsIn bool
	raw    bool
	eof    bool
}

// Open prepares the controlling terminal for a box session.
// The caller must Close the TTY to restore the terminal mode.
func Open() (*TTY, error) {
	out := os.Stderr
	if !term.IsTerminal(int(out.Fd())) {
		return nil, &Error{Op: "open", Err: errors.New("stderr is not a terminal")}
	}

	in := os.Stdin
	ownsIn := false
	if !term.IsTerminal(int(in.Fd())) {
		f, err := os.Open(controllingTTY)
		if err != nil {
			return nil, &Error{Op: "open", Err: fmt.Errorf("stdin is not a terminal and %s is unavailable: %w", controllingTTY, err)}
		}
		in = f
		ownsIn = true
	}

	t := newTTY(in, out)
	t.ownsIn = ownsIn

	if err := t.reader.SetTermMode(); err != nil {
		t.closeInput()
		return nil, &Error{Op: "set input mode", Err: err}
	}
	t.raw = true

	return t, nil
}

func newTTY(in, out *os.File) *TTY {
	return &TTY{
		in:     in,
		out:    out,
		w:      bufio.NewWriter(out),
		reader: surveyterm.NewRuneReader(surveyterm.Stdio{In: in, Out: out, Err: out}),
		cursor: &surveyterm.Cursor{In: in, Out: out},
	}
}

// Close flushes pending output and restores the terminal mode.
func (t *TTY) Close() error {
	flushErr := t.Flush()

	var restoreErr error
	if t.raw {
		if err := t.reader.RestoreTermMode(); err != nil {
			restoreErr = &Error{Op: "restore input mode", Err: err}
		}
		t.raw = false
	}
	t.closeInput()

	if flushErr != nil {
		return flushErr
	}
	return restoreErr
}

func (t *TTY) closeInput() {
	if t.ownsIn {
		_ = t.in.Close()
		t.ownsIn = false
	}
}

// CursorPosition reports the cursor location using a device status report.
func (t *TTY) CursorPosition() (Point, error) {
	if err := t.Flush(); err != nil {
		return Point{}, err
	}

	// Keys typed ahead of the report land in the reader's buffer and are
	// returned by the next ReadRune.
	loc, err := t.cursor.Location(t.reader.Buffer())
	if err != nil {
		return Point{}, &Error{Op: "cursor position", Err: err}
	}

	// The report is 1-based.
	return Point{Col: int(loc.X) - 1, Row: int(loc.Y) - 1}, nil
}

// Size reports the terminal width and height in cells.
func (t *TTY) Size() (int, int, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, &Error{Op: "size", Err: err}
	}
	return cols, rows, nil
}

// MoveBuffered queues a cursor move.
func (t *TTY) MoveBuffered(p Point) error {
	return t.Write(moveSequence(p))
}

// MoveFlushed moves the cursor and flushes everything queued before it.
func (t *TTY) MoveFlushed(p Point) error {
	if err := t.MoveBuffered(p); err != nil {
		return err
	}
	return t.Flush()
}

// Write queues text for stderr.
func (t *TTY) Write(s string) error {
	if _, err := t.w.WriteString(s); err != nil {
		return &Error{Op: "write", Err: err}
	}
	return nil
}

// Flush writes all queued output to stderr.
func (t *TTY) Flush() error {
	if err := t.w.Flush(); err != nil {
		return &Error{Op: "flush", Err: err}
	}
	return nil
}

// NextEvent blocks for the next key. End of input is reported once as
// EventOther; reading past it is an error.
func (t *TTY) NextEvent() (Event, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) && !t.eof {
			t.eof = true
			return OtherEvent(), nil
		}
		return Event{}, &Error{Op: "read key", Err: err}
	}
	return DecodeRune(r), nil
}

// moveSequence returns the CUP sequence for a 0-based point.
func moveSequence(p Point) string {
	col, row := p.Col, p.Row
	if col < 0 {
		col = 0
	}
	if row < 0 {
		row = 0
	}
	return ansi.CursorPosition(col+1, row+1)
}
