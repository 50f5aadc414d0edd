package capture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/muurk/ibox/internal/terminal"
)

// ErrInterrupted is returned when the user presses Ctrl+C during capture.
var ErrInterrupted = errors.New("input interrupted")

// State is the lifecycle state of a Field
type State uint8

const (
	// Idle fields have not started capturing yet
	Idle State = iota
	// Capturing fields accept key events
	Capturing
	// Committed fields are sealed; their text ends with a newline
	Committed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Capturing:
		return "capturing"
	case Committed:
		return "committed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// UnknownKeyPolicy decides what a key other than a printable rune or Enter
// does to a capturing field.
type UnknownKeyPolicy uint8

const (
	// EndField commits the field
	EndField UnknownKeyPolicy = iota
	// IgnoreKey discards the event and keeps capturing
	IgnoreKey
)

func (p UnknownKeyPolicy) String() string {
	switch p {
	case EndField:
		return "end-field"
	case IgnoreKey:
		return "ignore"
	default:
		return fmt.Sprintf("UnknownKeyPolicy(%d)", p)
	}
}

// Action is the side effect a transition asks the loop to perform
type Action uint8

const (
	// ActionNone needs nothing from the loop
	ActionNone Action = iota
	// ActionEcho echoes the appended rune at the old insertion point
	ActionEcho
	// ActionCommit restores the cursor saved when the field began
	ActionCommit
	// ActionAbort ends the whole session
	ActionAbort
)

// Transition is the field state function: given the current state and an
// event it returns the next state and the action to perform.
func Transition(s State, ev terminal.Event, policy UnknownKeyPolicy) (State, Action) {
	if s != Capturing {
		return s, ActionNone
	}

	switch {
	case ev.IsPrintable():
		return Capturing, ActionEcho
	case ev.Kind == terminal.EventKey && ev.Key == terminal.KeyEnter:
		return Committed, ActionCommit
	case ev.Kind == terminal.EventKey && ev.Key == terminal.KeyInterrupt:
		return Capturing, ActionAbort
	}

	if policy == IgnoreKey {
		return Capturing, ActionNone
	}
	return Committed, ActionCommit
}

// StateError reports a field operation attempted in the wrong state.
type StateError struct {
	Field int
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("field %d: cannot %s while %s", e.Field, e.Op, e.State)
}

// Field is one interactive line of the box.
type Field struct {
	// Index is the field's position among all fields
	Index int

	start     terminal.Point
	insertion terminal.Point
	saved     terminal.Point
	state     State
	text      strings.Builder
}

// NewField creates an idle field whose input starts at insertion.
func NewField(index int, insertion terminal.Point) *Field {
	return &Field{
		Index:     index,
		start:     insertion,
		insertion: insertion,
	}
}

// State returns the field's lifecycle state.
func (f *Field) State() State {
	return f.state
}

// Start is where the field's first character is echoed.
func (f *Field) Start() terminal.Point {
	return f.start
}

// Insertion is where the next typed character is echoed.
func (f *Field) Insertion() terminal.Point {
	return f.insertion
}

// Saved is the cursor position recorded when capture began.
func (f *Field) Saved() terminal.Point {
	return f.saved
}

// Text returns the captured text. Once committed it ends with a newline.
func (f *Field) Text() string {
	return f.text.String()
}

// Begin moves an idle field to Capturing and remembers where the cursor
// must return once the field commits.
func (f *Field) Begin(saved terminal.Point) error {
	if f.state != Idle {
		return &StateError{Field: f.Index, Op: "begin", State: f.state}
	}
	f.saved = saved
	f.state = Capturing
	return nil
}

// Apply feeds an event to a capturing field and returns the action the
// caller must perform.
func (f *Field) Apply(ev terminal.Event, policy UnknownKeyPolicy) (Action, error) {
	if f.state != Capturing {
		return ActionNone, &StateError{Field: f.Index, Op: "apply event", State: f.state}
	}

	next, action := Transition(f.state, ev, policy)
	switch action {
	case ActionEcho:
		f.text.WriteRune(ev.Rune)
		f.insertion = f.insertion.Right(1)
	case ActionCommit:
		f.text.WriteByte('\n')
	}
	f.state = next
	return action, nil
}
