package capture

import (
	"github.com/muurk/ibox/internal/logging"
	"github.com/muurk/ibox/internal/terminal"
	"go.uber.org/zap"
)

// Terminal is the part of the terminal the capture loop needs.
type Terminal interface {
	CursorPosition() (terminal.Point, error)
	MoveFlushed(p terminal.Point) error
	Write(s string) error
	NextEvent() (terminal.Event, error)
}

// Options configures a Loop.
type Options struct {
	// UnknownKeys decides what keys other than printable runes and Enter do
	UnknownKeys UnknownKeyPolicy
}

// Loop captures input for a sequence of fields, one at a time.
type Loop struct {
	term Terminal
	opts Options
}

// NewLoop creates a capture loop on the given terminal.
func NewLoop(term Terminal, opts Options) *Loop {
	return &Loop{
		term: term,
		opts: opts,
	}
}

// Run captures every field in order. On error the fields committed so far
// are returned alongside it.
func (l *Loop) Run(insertions []terminal.Point) ([]*Field, error) {
	fields := make([]*Field, 0, len(insertions))
	for i, p := range insertions {
		f := NewField(i, p)
		if err := l.capture(f); err != nil {
			return fields, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

func (l *Loop) capture(f *Field) error {
	saved, err := l.term.CursorPosition()
	if err != nil {
		return err
	}
	if err := f.Begin(saved); err != nil {
		return err
	}

	for f.State() == Capturing {
		if err := l.term.MoveFlushed(f.Insertion()); err != nil {
			return err
		}

		ev, err := l.term.NextEvent()
		if err != nil {
			return err
		}

		action, err := f.Apply(ev, l.opts.UnknownKeys)
		if err != nil {
			return err
		}

		switch action {
		case ActionEcho:
			if err := l.term.Write(string(ev.Rune)); err != nil {
				return err
			}
		case ActionAbort:
			if err := l.term.MoveFlushed(saved); err != nil {
				logging.Warn("Failed to restore cursor after interrupt",
					zap.Int("field", f.Index),
					zap.Stringer("position", saved),
					zap.Error(err),
				)
			}
			return ErrInterrupted
		case ActionCommit:
			if !(ev.Kind == terminal.EventKey && ev.Key == terminal.KeyEnter) {
				logging.Debug("Field ended by unrecognized event",
					zap.Int("field", f.Index),
					zap.Stringer("key", ev.Key),
				)
			}
		}
	}

	logging.Debug("Field committed",
		zap.Int("field", f.Index),
		zap.Int("length", len(f.Text())-1),
	)
	return l.term.MoveFlushed(saved)
}
