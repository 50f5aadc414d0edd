package box

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/muurk/ibox/internal/terminal"
	"github.com/muurk/ibox/internal/terminal/terminaltest"
)

func renderBox(t *testing.T, fake *terminaltest.Fake, raw []string, pl Placement, padding int) (Geometry, []terminal.Point) {
	t.Helper()

	lines := ParseLines(raw)
	r := NewRenderer(fake, DefaultPalette)
	geo, err := r.Layout(pl, lines, padding)
	if err != nil {
		t.Fatalf("Layout() error = %v", err)
	}
	fields, err := r.Render(lines, geo)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return geo, fields
}

func TestRenderScenario(t *testing.T) {
	fake := terminaltest.New()
	origin := terminal.Point{Col: 2, Row: 3}

	geo, fields := renderBox(t, fake, []string{"Title", "Context", "Question?>"}, Placement{Origin: &origin}, 8)

	if geo.Width != 16 {
		t.Errorf("Width = %d, want 16", geo.Width)
	}

	want := []string{
		"  ┌─Title" + strings.Repeat("─", 11) + "┐",
		"  │Context" + strings.Repeat(" ", 10) + "│",
		"  │Question" + strings.Repeat(" ", 9) + "│",
		"  └─" + strings.Repeat("─", 16) + "┘",
	}
	var got []string
	for row := 3; row <= 6; row++ {
		got = append(got, fake.Line(row))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered rows mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]terminal.Point{{Col: 11, Row: 5}}, fields); diff != "" {
		t.Errorf("field insertion points mismatch (-want +got):\n%s", diff)
	}

	if fake.Pending() {
		t.Error("output should be flushed after the bottom row")
	}
	if fake.Cursor != (terminal.Point{Col: 0, Row: 7}) {
		t.Errorf("cursor after render = %v, want (0,7)", fake.Cursor)
	}
}

func TestRenderInsertionFollowsOrigin(t *testing.T) {
	for _, origin := range []terminal.Point{{Col: 0, Row: 0}, {Col: 7, Row: 1}, {Col: 30, Row: 12}} {
		origin := origin
		fake := terminaltest.New()
		_, fields := renderBox(t, fake, []string{"T", "Name?>", "static", "Favourite colour?>"}, Placement{Origin: &origin}, 4)

		want := []terminal.Point{
			{Col: origin.Col + 1 + len("Name"), Row: origin.Row + 1},
			{Col: origin.Col + 1 + len("Favourite colour"), Row: origin.Row + 3},
		}
		if diff := cmp.Diff(want, fields); diff != "" {
			t.Errorf("origin %v: insertion points mismatch (-want +got):\n%s", origin, diff)
		}
	}
}

func TestRenderTitleOnly(t *testing.T) {
	fake := terminaltest.New()
	origin := terminal.Point{Col: 0, Row: 0}

	_, fields := renderBox(t, fake, []string{"Only?>"}, Placement{Origin: &origin}, 2)

	if len(fields) != 0 {
		t.Errorf("fields = %v, the title row is never a field", fields)
	}
	if got, want := fake.Line(0), "┌─Only──┐"; got != want {
		t.Errorf("top = %q, want %q", got, want)
	}
	if got, want := fake.Line(1), "└───────┘"; got != want {
		t.Errorf("bottom = %q, want %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	r := NewRenderer(terminaltest.New(), DefaultPalette)
	if _, err := r.Render(nil, Geometry{}); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("Render(nil) error = %v, want ErrEmptyQuery", err)
	}
}

func TestRenderCursorQueryFailure(t *testing.T) {
	fake := terminaltest.New()
	fake.PositionErr = &terminal.Error{Op: "cursor position"}

	r := NewRenderer(fake, DefaultPalette)
	lines := ParseLines([]string{"T", "Q?>"})
	_, err := r.Render(lines, Geometry{Width: 10})

	var termErr *terminal.Error
	if !errors.As(err, &termErr) {
		t.Errorf("Render() error = %v, want *terminal.Error", err)
	}
}

func TestPlace(t *testing.T) {
	explicit := terminal.Point{Col: 5, Row: 6}
	lines := ParseLines([]string{"Title", "Context", "Question?>"})

	tests := []struct {
		name   string
		pl     Placement
		cursor terminal.Point
		cols   int
		rows   int
		want   terminal.Point
	}{
		{"current cursor", Placement{}, terminal.Point{Col: 3, Row: 9}, 80, 24, terminal.Point{Col: 3, Row: 9}},
		{"explicit", Placement{Origin: &explicit}, terminal.Point{Col: 3, Row: 9}, 80, 24, explicit},
		{"center", Placement{Center: true}, terminal.Point{}, 80, 24, terminal.Point{Col: 30, Row: 9}},
		{"center wins over explicit", Placement{Center: true, Origin: &explicit}, terminal.Point{}, 80, 24, terminal.Point{Col: 30, Row: 9}},
		{"center clamps on small terminal", Placement{Center: true}, terminal.Point{}, 10, 3, terminal.Point{Col: 0, Row: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := terminaltest.New()
			fake.Cursor = tt.cursor
			fake.Cols, fake.Rows = tt.cols, tt.rows

			got, err := NewRenderer(fake, DefaultPalette).Place(tt.pl, lines, 16)
			if err != nil {
				t.Fatalf("Place() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Place() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlaceSizeFailure(t *testing.T) {
	fake := terminaltest.New()
	fake.SizeErr = errors.New("no tty")

	_, err := NewRenderer(fake, DefaultPalette).Place(Placement{Center: true}, ParseLines([]string{"x"}), 4)
	if err == nil {
		t.Error("Place() should fail when the terminal size is unavailable")
	}
}
