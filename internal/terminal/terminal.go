package terminal

import "fmt"

// Point is a 0-based terminal cell coordinate.
type Point struct {
	Col int
	Row int
}

// Right returns the point n columns to the right of p.
func (p Point) Right(n int) Point {
	return Point{Col: p.Col + n, Row: p.Row}
}

// Down returns the point n rows below p.
func (p Point) Down(n int) Point {
	return Point{Col: p.Col, Row: p.Row + n}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Terminal is the full set of terminal operations ibox consumes.
// Consumers usually depend on a narrower subset.
type Terminal interface {
	// CursorPosition flushes pending output and reports the cursor location.
	CursorPosition() (Point, error)
	// Size reports the terminal dimensions in cells.
	Size() (cols, rows int, err error)
	// MoveBuffered queues a cursor move; it reaches the screen on the next flush.
	MoveBuffered(p Point) error
	// MoveFlushed moves the cursor and flushes all pending output.
	MoveFlushed(p Point) error
	// Write queues text for the diagnostic stream.
	Write(s string) error
	// Flush writes all pending output.
	Flush() error
	// NextEvent blocks until the next input event arrives.
	NextEvent() (Event, error)
}

// Error reports a failed terminal query or terminal I/O operation.
type Error struct {
	// Op names the operation that failed (e.g. "cursor position", "read key")
	Op string
	// Underlying error
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("terminal %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("terminal %s failed", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}
