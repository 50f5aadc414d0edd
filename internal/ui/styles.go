package ui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for diagnostics
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles
	SuccessColor = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor   = lipgloss.Color("#FF5555") // Red - errors, X marks
	MutedColor   = lipgloss.Color("#626262") // Gray - secondary info
)

// Layout constants
const (
	MinTerminalWidth = 40 // Minimum width used for wrapping
	MaxContentWidth  = 100
)

// Markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	HintMarker    = "•"
)

// Styles is the set of styles bound to one output.
type Styles struct {
	ErrorTitle   lipgloss.Style
	ErrorMessage lipgloss.Style
	SuccessTitle lipgloss.Style
	Hint         lipgloss.Style
	Key          lipgloss.Style
	Value        lipgloss.Style
}

// NewStyles creates styles whose colour profile is detected from w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		ErrorTitle: r.NewStyle().
			Foreground(ErrorColor).
			Bold(true),
		ErrorMessage: r.NewStyle().
			Foreground(ErrorColor),
		SuccessTitle: r.NewStyle().
			Foreground(SuccessColor).
			Bold(true),
		Hint: r.NewStyle().
			Foreground(MutedColor).
			PaddingLeft(2),
		Key: r.NewStyle().
			Foreground(MutedColor),
		Value: r.NewStyle().
			Foreground(PrimaryColor),
	}
}

// GetTerminalWidth returns the width of the terminal behind f, with fallback
func GetTerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}
