package terminal

import (
	"testing"

	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
)

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want Event
	}{
		{"ascii letter", 'y', RuneEvent('y')},
		{"space", ' ', RuneEvent(' ')},
		{"non-ascii letter", 'é', RuneEvent('é')},
		{"carriage return", surveyterm.KeyEnter, KeyEvent(KeyEnter)},
		{"line feed", '\n', KeyEvent(KeyEnter)},
		{"ctrl-c", surveyterm.KeyInterrupt, KeyEvent(KeyInterrupt)},
		{"arrow left", surveyterm.KeyArrowLeft, KeyEvent(KeyOther)},
		{"backspace", surveyterm.KeyBackspace, KeyEvent(KeyOther)},
		{"delete", surveyterm.KeyDelete, KeyEvent(KeyOther)},
		{"escape", surveyterm.KeyEscape, KeyEvent(KeyOther)},
		{"tab", surveyterm.KeyTab, KeyEvent(KeyOther)},
		{"ignored sequence", surveyterm.IgnoreKey, OtherEvent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeRune(tt.in); got != tt.want {
				t.Errorf("DecodeRune(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEventIsPrintable(t *testing.T) {
	if !RuneEvent('a').IsPrintable() {
		t.Error("RuneEvent('a') should be printable")
	}
	if KeyEvent(KeyEnter).IsPrintable() {
		t.Error("Enter should not be printable")
	}
	if OtherEvent().IsPrintable() {
		t.Error("non-key event should not be printable")
	}
}

func TestMoveSequence(t *testing.T) {
	tests := []struct {
		p    Point
		want string
	}{
		{Point{Col: 9, Row: 4}, "\x1b[5;10H"},
		{Point{Col: -3, Row: 2}, "\x1b[3;1H"},
	}

	for _, tt := range tests {
		if got := moveSequence(tt.p); got != tt.want {
			t.Errorf("moveSequence(%v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestPointHelpers(t *testing.T) {
	p := Point{Col: 3, Row: 7}
	if got := p.Right(2); got != (Point{Col: 5, Row: 7}) {
		t.Errorf("Right(2) = %v", got)
	}
	if got := p.Down(1); got != (Point{Col: 3, Row: 8}) {
		t.Errorf("Down(1) = %v", got)
	}
	if got := p.String(); got != "(3,7)" {
		t.Errorf("String() = %q, want %q", got, "(3,7)")
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := &Error{Op: "size"}
	if inner.Error() != "terminal size failed" {
		t.Errorf("Error() = %q", inner.Error())
	}
	wrapped := &Error{Op: "read key", Err: inner}
	if wrapped.Unwrap() != inner {
		t.Error("Unwrap should return the underlying error")
	}
}
