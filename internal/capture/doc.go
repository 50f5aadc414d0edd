// Package capture runs the interactive input loop over the fields of a
// rendered box and emits the captured answers.
//
// Each Field moves through three states:
//
//	Idle ──Begin──▶ Capturing ──Enter──▶ Committed
//	                   │  ▲
//	                   └──┘ printable rune (append, echo, advance)
//
// Any other key or non-key event is handled by the UnknownKeyPolicy.
// EndField (the default) commits the field, so unexpected input can never
// leave the loop stuck; IgnoreKey drops the event and keeps capturing.
// Ctrl+C aborts the whole session with ErrInterrupted.
//
// Fields are captured strictly in order and a committed field is never
// revisited. Before every read the cursor is moved to the field's insertion
// point with a flushed move; after a commit it returns to where it was when
// the field began.
package capture
