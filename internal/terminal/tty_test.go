package terminal

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// pipeTTY returns a TTY reading keys from a pipe and writing to a file.
func pipeTTY(t *testing.T) (*TTY, *os.File, string) {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error = %v", err)
	}
	outPath := filepath.Join(t.TempDir(), "out")
	out, err := os.Create(outPath)
	if err != nil {
		t.Fatalf("os.Create() error = %v", err)
	}

	tty := newTTY(r, out)
	t.Cleanup(func() {
		_ = tty.Close()
		_ = r.Close()
		_ = w.Close()
		_ = out.Close()
	})
	return tty, w, outPath
}

func TestCursorPositionKeepsTypeahead(t *testing.T) {
	tty, keys, outPath := pipeTTY(t)

	if _, err := keys.WriteString("ab\x1b[5;10R"); err != nil {
		t.Fatal(err)
	}

	got, err := tty.CursorPosition()
	if err != nil {
		t.Fatalf("CursorPosition() error = %v", err)
	}
	if want := (Point{Col: 9, Row: 4}); got != want {
		t.Errorf("CursorPosition() = %v, want %v", got, want)
	}

	for _, want := range []rune{'a', 'b'} {
		ev, err := tty.NextEvent()
		if err != nil {
			t.Fatalf("NextEvent() error = %v", err)
		}
		if ev != RuneEvent(want) {
			t.Errorf("NextEvent() = %+v, want rune %q typed before the report", ev, want)
		}
	}

	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(written), "\x1b[6n") {
		t.Errorf("output = %q, want a device status report query", written)
	}
}

func TestNextEventEndOfInput(t *testing.T) {
	tty, keys, _ := pipeTTY(t)

	if _, err := keys.WriteString("x"); err != nil {
		t.Fatal(err)
	}
	if err := keys.Close(); err != nil {
		t.Fatal(err)
	}

	ev, err := tty.NextEvent()
	if err != nil || ev != RuneEvent('x') {
		t.Fatalf("NextEvent() = %+v, %v, want rune 'x'", ev, err)
	}

	ev, err = tty.NextEvent()
	if err != nil {
		t.Fatalf("NextEvent() at end of input error = %v", err)
	}
	if ev != OtherEvent() {
		t.Errorf("NextEvent() at end of input = %+v, want EventOther", ev)
	}

	_, err = tty.NextEvent()
	var termErr *Error
	if !errors.As(err, &termErr) || !errors.Is(err, io.EOF) {
		t.Errorf("NextEvent() past end of input error = %v, want *Error wrapping io.EOF", err)
	}
}

func TestWriteIsBufferedUntilFlush(t *testing.T) {
	tty, _, outPath := pipeTTY(t)

	if err := tty.MoveBuffered(Point{Col: 2, Row: 1}); err != nil {
		t.Fatal(err)
	}
	if err := tty.Write("┌─┐"); err != nil {
		t.Fatal(err)
	}
	if written, _ := os.ReadFile(outPath); len(written) != 0 {
		t.Errorf("output before flush = %q, want nothing", written)
	}

	if err := tty.MoveFlushed(Point{Col: 3, Row: 2}); err != nil {
		t.Fatal(err)
	}
	written, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if want := "\x1b[2;3H┌─┐\x1b[3;4H"; string(written) != want {
		t.Errorf("output after flush = %q, want %q", written, want)
	}
}
