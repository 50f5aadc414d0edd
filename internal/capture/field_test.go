package capture

import (
	"errors"
	"testing"

	"github.com/muurk/ibox/internal/terminal"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name       string
		state      State
		ev         terminal.Event
		policy     UnknownKeyPolicy
		wantState  State
		wantAction Action
	}{
		{"rune appends", Capturing, terminal.RuneEvent('x'), EndField, Capturing, ActionEcho},
		{"enter commits", Capturing, terminal.KeyEvent(terminal.KeyEnter), EndField, Committed, ActionCommit},
		{"ctrl-c aborts", Capturing, terminal.KeyEvent(terminal.KeyInterrupt), EndField, Capturing, ActionAbort},
		{"unknown key ends field", Capturing, terminal.KeyEvent(terminal.KeyOther), EndField, Committed, ActionCommit},
		{"non-key event ends field", Capturing, terminal.OtherEvent(), EndField, Committed, ActionCommit},
		{"unknown key ignored", Capturing, terminal.KeyEvent(terminal.KeyOther), IgnoreKey, Capturing, ActionNone},
		{"non-key event ignored", Capturing, terminal.OtherEvent(), IgnoreKey, Capturing, ActionNone},
		{"enter still commits when ignoring", Capturing, terminal.KeyEvent(terminal.KeyEnter), IgnoreKey, Committed, ActionCommit},
		{"idle ignores events", Idle, terminal.RuneEvent('x'), EndField, Idle, ActionNone},
		{"committed is sealed", Committed, terminal.RuneEvent('x'), EndField, Committed, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotState, gotAction := Transition(tt.state, tt.ev, tt.policy)
			if gotState != tt.wantState || gotAction != tt.wantAction {
				t.Errorf("Transition(%v, %+v, %v) = (%v, %v), want (%v, %v)",
					tt.state, tt.ev, tt.policy, gotState, gotAction, tt.wantState, tt.wantAction)
			}
		})
	}
}

func TestFieldLifecycle(t *testing.T) {
	start := terminal.Point{Col: 11, Row: 5}
	saved := terminal.Point{Col: 0, Row: 7}
	f := NewField(0, start)

	if f.State() != Idle {
		t.Fatalf("new field state = %v, want idle", f.State())
	}
	if _, err := f.Apply(terminal.RuneEvent('y'), EndField); err == nil {
		t.Error("Apply before Begin should fail")
	}

	if err := f.Begin(saved); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if f.Saved() != saved {
		t.Errorf("Saved() = %v, want %v", f.Saved(), saved)
	}

	for _, r := range "yes" {
		if _, err := f.Apply(terminal.RuneEvent(r), EndField); err != nil {
			t.Fatalf("Apply(%q) error = %v", r, err)
		}
	}
	if got, want := f.Insertion(), start.Right(3); got != want {
		t.Errorf("Insertion() = %v, want %v", got, want)
	}
	if f.Start() != start {
		t.Errorf("Start() = %v, want %v", f.Start(), start)
	}

	action, err := f.Apply(terminal.KeyEvent(terminal.KeyEnter), EndField)
	if err != nil {
		t.Fatal(err)
	}
	if action != ActionCommit || f.State() != Committed {
		t.Errorf("after Enter: action %v state %v", action, f.State())
	}
	if f.Text() != "yes\n" {
		t.Errorf("Text() = %q, want %q", f.Text(), "yes\n")
	}

	var stateErr *StateError
	if _, err := f.Apply(terminal.RuneEvent('!'), EndField); !errors.As(err, &stateErr) {
		t.Errorf("Apply after commit error = %v, want *StateError", err)
	}
	if err := f.Begin(saved); !errors.As(err, &stateErr) {
		t.Errorf("Begin after commit error = %v, want *StateError", err)
	}
	if f.Text() != "yes\n" {
		t.Errorf("committed text changed to %q", f.Text())
	}
}

func TestFieldEmptyCommit(t *testing.T) {
	f := NewField(0, terminal.Point{})
	_ = f.Begin(terminal.Point{})
	if _, err := f.Apply(terminal.KeyEvent(terminal.KeyEnter), EndField); err != nil {
		t.Fatal(err)
	}
	if f.Text() != "\n" {
		t.Errorf("Text() = %q, want a lone newline", f.Text())
	}
}

func TestStateStrings(t *testing.T) {
	if Capturing.String() != "capturing" || State(9).String() != "State(9)" {
		t.Errorf("unexpected State strings: %q %q", Capturing, State(9))
	}
	if IgnoreKey.String() != "ignore" || EndField.String() != "end-field" {
		t.Errorf("unexpected policy strings: %q %q", IgnoreKey, EndField)
	}
	err := &StateError{Field: 2, Op: "begin", State: Committed}
	if err.Error() != "field 2: cannot begin while committed" {
		t.Errorf("Error() = %q", err.Error())
	}
}
