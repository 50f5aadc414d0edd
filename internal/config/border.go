package config

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ibox/internal/box"
)

// DefaultBorder is the preset used when nothing else is configured.
const DefaultBorder = "single"

// Presets maps border preset names to palettes.
type Presets map[string]box.Palette

// BuiltinPresets returns the presets every installation knows.
func BuiltinPresets() Presets {
	single := paletteFromBorder(lipgloss.NormalBorder())
	curved := paletteFromBorder(lipgloss.RoundedBorder())
	thick := paletteFromBorder(lipgloss.ThickBorder())

	return Presets{
		"single":  single,
		"double":  paletteFromBorder(lipgloss.DoubleBorder()),
		"thick":   thick,
		"heavy":   thick,
		"curved":  curved,
		"rounded": curved,
		"block":   paletteFromBorder(lipgloss.BlockBorder()),
		"hidden":  paletteFromBorder(lipgloss.HiddenBorder()),
	}
}

// paletteFromBorder picks the six glyphs a box needs out of a lipgloss border.
func paletteFromBorder(b lipgloss.Border) box.Palette {
	return box.Palette{
		firstRune(b.TopLeft),
		firstRune(b.Top),
		firstRune(b.TopRight),
		firstRune(b.Left),
		firstRune(b.BottomLeft),
		firstRune(b.BottomRight),
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return ' '
	}
	return r
}

// Names returns the preset names in sorted order.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve turns a preset name or six literal glyphs into a palette.
func (p Presets) Resolve(border string) (box.Palette, error) {
	if palette, ok := p[border]; ok {
		return palette, nil
	}

	palette, err := box.NewPalette(border)
	if err != nil {
		return box.Palette{}, &Error{
			Field:   "border",
			Value:   border,
			Message: "expected a preset (" + strings.Join(p.Names(), ", ") + ") or exactly 6 glyphs",
			Err:     err,
		}
	}
	return palette, nil
}

// WithCustom returns a copy of p extended with user presets. Custom presets
// may shadow built-in names.
func (p Presets) WithCustom(custom map[string]string) (Presets, error) {
	out := make(Presets, len(p)+len(custom))
	for name, palette := range p {
		out[name] = palette
	}
	for name, glyphs := range custom {
		palette, err := box.NewPalette(glyphs)
		if err != nil {
			return nil, &Error{Field: "presets." + name, Value: glyphs, Message: "a preset needs exactly 6 glyphs", Err: err}
		}
		out[name] = palette
	}
	return out, nil
}
