package box

import (
	"fmt"
	"strings"
)

// Palette holds the border glyphs in the order
// top-left, horizontal, top-right, vertical, bottom-left, bottom-right.
type Palette [6]rune

// DefaultPalette is the single-line border.
var DefaultPalette = Palette{'┌', '─', '┐', '│', '└', '┘'}

// DefaultPadding is the number of columns added after the longest line.
const DefaultPadding = 8

// Glyph indices into a Palette.
const (
	TopLeft = iota
	Horizontal
	TopRight
	Vertical
	BottomLeft
	BottomRight
)

func (p Palette) String() string {
	return string(p[:])
}

// NewPalette builds a palette from exactly six glyphs.
func NewPalette(glyphs string) (Palette, error) {
	runes := []rune(glyphs)
	if len(runes) != len(Palette{}) {
		return Palette{}, fmt.Errorf("invalid border length: %d (expected %d glyphs)", len(runes), len(Palette{}))
	}
	var p Palette
	copy(p[:], runes)
	return p, nil
}

// ComputeWidth returns the interior width: the longest display text plus padding.
// Length is measured in bytes.
func ComputeWidth(lines []ContentLine, padding int) (int, error) {
	if len(lines) == 0 {
		return 0, ErrEmptyQuery
	}
	if padding < 0 {
		return 0, &InvariantError{Row: "padding", Text: fmt.Sprint(padding), Width: 0}
	}

	longest := 0
	for _, l := range lines {
		if n := len(l.Display); n > longest {
			longest = n
		}
	}
	return longest + padding, nil
}

// Top builds the top row. A nil title yields the three-glyph degenerate row.
func Top(title *string, p Palette, width int) (string, error) {
	var b strings.Builder
	b.WriteRune(p[TopLeft])
	b.WriteRune(p[Horizontal])
	if title != nil {
		fill := width - len(*title)
		if fill < 0 {
			return "", &InvariantError{Row: "top", Text: *title, Width: width}
		}
		b.WriteString(*title)
		repeat(&b, p[Horizontal], fill)
	}
	b.WriteRune(p[TopRight])
	return b.String(), nil
}

// Middle builds a content row.
func Middle(display string, p Palette, width int) (string, error) {
	fill := width - len(display) + 1
	if fill < 1 {
		return "", &InvariantError{Row: "middle", Text: display, Width: width}
	}

	var b strings.Builder
	b.WriteRune(p[Vertical])
	b.WriteString(display)
	repeat(&b, ' ', fill)
	b.WriteRune(p[Vertical])
	return b.String(), nil
}

// Bottom builds the bottom row.
func Bottom(p Palette, width int) string {
	var b strings.Builder
	b.WriteRune(p[BottomLeft])
	b.WriteRune(p[Horizontal])
	repeat(&b, p[Horizontal], width)
	b.WriteRune(p[BottomRight])
	return b.String()
}

func repeat(b *strings.Builder, r rune, n int) {
	for i := 0; i < n; i++ {
		b.WriteRune(r)
	}
}
