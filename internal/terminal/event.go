package terminal

import (
	"fmt"
	"unicode"

	surveyterm "github.com/AlecAivazis/survey/v2/terminal"
)

// EventKind distinguishes input event categories
type EventKind uint8

const (
	// EventKey is a keyboard event (check Event.Key)
	EventKey EventKind = iota
	// EventOther is anything that is not a key press, including end of input
	EventOther
)

// Key identifies the key of an EventKey event
type Key uint8

const (
	// KeyOther is a recognized key press with no meaning for field input
	// (arrows, backspace, tab, escape, function keys)
	KeyOther Key = iota
	// KeyRune is a printable character (check Event.Rune)
	KeyRune
	// KeyEnter ends the current field
	KeyEnter
	// KeyInterrupt is Ctrl+C; raw input mode delivers it as a key instead of SIGINT
	KeyInterrupt
)

func (k Key) String() string {
	switch k {
	case KeyOther:
		return "other"
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyInterrupt:
		return "interrupt"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// Event is a single input event
type Event struct {
	Kind EventKind
	Key  Key
	Rune rune
}

// RuneEvent returns the key event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Kind: EventKey, Key: KeyRune, Rune: r}
}

// KeyEvent returns a key event without a character payload.
func KeyEvent(k Key) Event {
	return Event{Kind: EventKey, Key: k}
}

// OtherEvent returns a non-key event.
func OtherEvent() Event {
	return Event{Kind: EventOther}
}

// IsPrintable reports whether the event carries a printable character.
func (e Event) IsPrintable() bool {
	return e.Kind == EventKey && e.Key == KeyRune
}

// DecodeRune classifies a rune delivered by the survey rune reader.
// Special keys arrive as the control runes survey maps escape sequences to.
func DecodeRune(r rune) Event {
	switch r {
	case surveyterm.KeyEnter, '\n':
		return KeyEvent(KeyEnter)
	case surveyterm.KeyInterrupt:
		return KeyEvent(KeyInterrupt)
	case surveyterm.IgnoreKey:
		return OtherEvent()
	}

	if unicode.IsPrint(r) {
		return RuneEvent(r)
	}

	// KeyArrowLeft, KeyBackspace, KeyDelete, KeyEscape, KeyTab, SpecialKeyHome...
	return KeyEvent(KeyOther)
}
