package box

import "strings"

// PromptMarker marks a content line as an interactive field.
const PromptMarker = "?>"

// ContentLine is one caller-supplied line of box content.
type ContentLine struct {
	// Raw is the line exactly as supplied
	Raw string
	// Display is Raw with the prompt marker removed
	Display string
	// IsField reports whether the line ends with the prompt marker
	IsField bool
}

// NewContentLine classifies raw as a field or static line.
func NewContentLine(raw string) ContentLine {
	display, isField := strings.CutSuffix(raw, PromptMarker)
	return ContentLine{
		Raw:     raw,
		Display: display,
		IsField: isField,
	}
}

// ParseLines classifies every line in order.
func ParseLines(raw []string) []ContentLine {
	lines := make([]ContentLine, 0, len(raw))
	for _, r := range raw {
		lines = append(lines, NewContentLine(r))
	}
	return lines
}
