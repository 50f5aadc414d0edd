// Package terminal is the terminal I/O collaborator used by ibox.
//
// It exposes the small set of operations the box renderer and the input
// capture loop need: cursor and size queries, key-event delivery and a
// two-mode cursor movement capability.
//
// # Buffered and Flushed Moves
//
// Output to the diagnostic stream is buffered. MoveBuffered queues a cursor
// move together with the row text that follows it, which is how the box is
// drawn row by row. MoveFlushed writes the move and flushes immediately; it
// is used whenever the move anchors the next key read, so the cursor is
// visibly in place before the process blocks.
//
//	tty, err := terminal.Open()
//	if err != nil {
//	    return err
//	}
//	defer tty.Close()
//
//	_ = tty.MoveBuffered(terminal.Point{Col: 4, Row: 2})
//	_ = tty.Write("│ Question  │\n")
//	_ = tty.MoveFlushed(terminal.Point{Col: 14, Row: 2})
//	ev, err := tty.NextEvent()
//
// # Coordinates
//
// Points are 0-based (column, row) pairs. Conversion to the 1-based
// coordinates used by escape sequences happens inside TTY.
//
// # Input Source
//
// Keys are read from stdin when it is a terminal and from /dev/tty
// otherwise, so ibox keeps working when stdin is redirected. Rows are always
// written to stderr, leaving stdout for the captured answers.
package terminal
