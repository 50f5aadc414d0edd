package box

import (
	"github.com/muurk/ibox/internal/logging"
	"github.com/muurk/ibox/internal/terminal"
	"go.uber.org/zap"
)

// Geometry is the placement and interior width of a box.
type Geometry struct {
	Origin terminal.Point
	Width  int
}

// Placement selects where the top-left corner of the box goes.
type Placement struct {
	// Center places the box in the middle of the terminal; it wins over Origin.
	Center bool
	// Origin is an explicit top-left corner. Nil means the current cursor position.
	Origin *terminal.Point
}

// Screen is the part of the terminal the renderer draws with.
type Screen interface {
	CursorPosition() (terminal.Point, error)
	Size() (cols, rows int, err error)
	MoveBuffered(p terminal.Point) error
	Write(s string) error
	Flush() error
}

// Renderer draws a box row by row onto a Screen.
type Renderer struct {
	screen  Screen
	palette Palette
}

// NewRenderer creates a renderer drawing with the given palette.
func NewRenderer(screen Screen, palette Palette) *Renderer {
	return &Renderer{
		screen:  screen,
		palette: palette,
	}
}

// Place resolves the box origin for lines laid out at the given width.
func (r *Renderer) Place(pl Placement, lines []ContentLine, width int) (terminal.Point, error) {
	if pl.Center {
		cols, rows, err := r.screen.Size()
		if err != nil {
			return terminal.Point{}, err
		}
		return terminal.Point{
			Col: max(cols/2-width/2-2, 0),
			Row: max(rows/2-len(lines)/2-2, 0),
		}, nil
	}
	if pl.Origin != nil {
		return *pl.Origin, nil
	}
	return r.screen.CursorPosition()
}

// Layout computes the geometry for lines and resolves its placement.
func (r *Renderer) Layout(pl Placement, lines []ContentLine, padding int) (Geometry, error) {
	width, err := ComputeWidth(lines, padding)
	if err != nil {
		return Geometry{}, err
	}
	origin, err := r.Place(pl, lines, width)
	if err != nil {
		return Geometry{}, err
	}
	return Geometry{Origin: origin, Width: width}, nil
}

// Render draws the box and returns the insertion point of every field, in
// line order. The first line is the title and is never a field.
func (r *Renderer) Render(lines []ContentLine, geo Geometry) ([]terminal.Point, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyQuery
	}

	pos := geo.Origin
	title := lines[0].Display
	top, err := Top(&title, r.palette, geo.Width)
	if err != nil {
		return nil, err
	}
	if err := r.row(pos, top); err != nil {
		return nil, err
	}

	var fields []terminal.Point
	for _, line := range lines[1:] {
		pos = pos.Down(1)
		if err := r.screen.MoveBuffered(pos); err != nil {
			return nil, err
		}

		text, insertion, err := r.middle(line, geo.Width)
		if err != nil {
			return nil, err
		}
		if insertion != nil {
			fields = append(fields, *insertion)
		}
		if err := r.screen.Write(text + "\n"); err != nil {
			return nil, err
		}
	}

	if err := r.row(pos.Down(1), Bottom(r.palette, geo.Width)); err != nil {
		return nil, err
	}
	if err := r.screen.Flush(); err != nil {
		return nil, err
	}

	logging.Debug("Box rendered",
		zap.Stringer("origin", geo.Origin),
		zap.Int("width", geo.Width),
		zap.Int("lines", len(lines)),
		zap.Int("fields", len(fields)),
	)
	return fields, nil
}

func (r *Renderer) row(pos terminal.Point, text string) error {
	if err := r.screen.MoveBuffered(pos); err != nil {
		return err
	}
	return r.screen.Write(text + "\n")
}

// middle builds a content row. For a field it also returns the position
// right after the text, measured from the live cursor because the absolute
// column depends on where the box landed.
func (r *Renderer) middle(line ContentLine, width int) (string, *terminal.Point, error) {
	text, err := Middle(line.Display, r.palette, width)
	if err != nil {
		return "", nil, err
	}
	if !line.IsField {
		return text, nil, nil
	}

	cur, err := r.screen.CursorPosition()
	if err != nil {
		return "", nil, err
	}
	insertion := cur.Right(1 + len(line.Display))
	return text, &insertion, nil
}
