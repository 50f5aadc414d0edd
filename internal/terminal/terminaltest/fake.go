// Package terminaltest provides an in-memory terminal for tests.
package terminaltest

import (
	"errors"
	"sort"
	"strings"

	"github.com/muurk/ibox/internal/terminal"
)

// ErrNoEvents is returned by NextEvent once the scripted events run out.
var ErrNoEvents = errors.New("terminaltest: no events scripted")

// Fake is a terminal.Terminal that simulates a screen grid.
//
// Buffered moves and writes are held until Flush (or any call that flushes),
// mirroring the real TTY, so tests can check which moves reached the screen
// before a read.
type Fake struct {
	// Cursor is the on-screen cursor position.
	Cursor terminal.Point
	// Cols and Rows are reported by Size.
	Cols, Rows int
	// Events are returned by NextEvent in order.
	Events []terminal.Event

	// SizeErr, PositionErr and ReadErr make the matching call fail.
	SizeErr     error
	PositionErr error
	ReadErr     error

	// Reads records the cursor position and pending-output state at every NextEvent call.
	Reads []Read
	// Queries counts CursorPosition calls.
	Queries int

	screen  map[terminal.Point]rune
	pending []op
	next    int
}

// Read describes the terminal state when NextEvent was called.
type Read struct {
	Cursor  terminal.Point
	Pending bool
}

type op struct {
	move bool
	to   terminal.Point
	text string
}

var _ terminal.Terminal = (*Fake)(nil)

// New returns a Fake with an 80x24 screen and the cursor at the origin.
func New(events ...terminal.Event) *Fake {
	return &Fake{
		Cols:   80,
		Rows:   24,
		Events: events,
		screen: make(map[terminal.Point]rune),
	}
}

// CursorPosition flushes pending output and returns the cursor.
func (f *Fake) CursorPosition() (terminal.Point, error) {
	f.Queries++
	if f.PositionErr != nil {
		return terminal.Point{}, f.PositionErr
	}
	if err := f.Flush(); err != nil {
		return terminal.Point{}, err
	}
	return f.Cursor, nil
}

// Size reports Cols and Rows.
func (f *Fake) Size() (int, int, error) {
	if f.SizeErr != nil {
		return 0, 0, f.SizeErr
	}
	return f.Cols, f.Rows, nil
}

// MoveBuffered queues a move.
func (f *Fake) MoveBuffered(p terminal.Point) error {
	f.pending = append(f.pending, op{move: true, to: p})
	return nil
}

// MoveFlushed queues a move and flushes.
func (f *Fake) MoveFlushed(p terminal.Point) error {
	if err := f.MoveBuffered(p); err != nil {
		return err
	}
	return f.Flush()
}

// Write queues text.
func (f *Fake) Write(s string) error {
	f.pending = append(f.pending, op{text: s})
	return nil
}

// Flush applies queued moves and writes to the screen.
func (f *Fake) Flush() error {
	if f.screen == nil {
		f.screen = make(map[terminal.Point]rune)
	}
	for _, o := range f.pending {
		if o.move {
			f.Cursor = o.to
			continue
		}
		for _, r := range o.text {
			if r == '\n' {
				f.Cursor = terminal.Point{Col: 0, Row: f.Cursor.Row + 1}
				continue
			}
			f.screen[f.Cursor] = r
			f.Cursor.Col++
		}
	}
	f.pending = nil
	return nil
}

// NextEvent returns the next scripted event.
func (f *Fake) NextEvent() (terminal.Event, error) {
	f.Reads = append(f.Reads, Read{Cursor: f.Cursor, Pending: len(f.pending) > 0})
	if f.ReadErr != nil {
		return terminal.Event{}, f.ReadErr
	}
	if f.next >= len(f.Events) {
		return terminal.Event{}, ErrNoEvents
	}
	ev := f.Events[f.next]
	f.next++
	return ev, nil
}

// Pending reports whether output is queued but not yet flushed.
func (f *Fake) Pending() bool {
	return len(f.pending) > 0
}

// Line returns the flushed contents of a screen row with trailing unset cells dropped.
func (f *Fake) Line(row int) string {
	var cols []int
	for p := range f.screen {
		if p.Row == row {
			cols = append(cols, p.Col)
		}
	}
	if len(cols) == 0 {
		return ""
	}
	sort.Ints(cols)

	var b strings.Builder
	last := cols[len(cols)-1]
	for c := 0; c <= last; c++ {
		r, ok := f.screen[terminal.Point{Col: c, Row: row}]
		if !ok {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Cell returns the rune drawn at p, or zero if nothing was drawn there.
func (f *Fake) Cell(p terminal.Point) rune {
	return f.screen[p]
}
