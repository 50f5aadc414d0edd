package config

import (
	"github.com/muurk/ibox/internal/box"
	"github.com/muurk/ibox/internal/terminal"
)

// Config is the fully resolved configuration of one ibox run.
type Config struct {
	Palette box.Palette
	// Padding is the number of columns added after the longest line
	Padding int
	// Origin is the explicit top-left corner; nil means the current cursor
	Origin *terminal.Point
	Center bool
	// IgnoreUnknownKeys keeps capturing when a key other than a rune or Enter arrives
	IgnoreUnknownKeys bool
	// Query holds the content lines; the first one is the title
	Query []string
}

// Placement returns where the box should be drawn.
func (c *Config) Placement() box.Placement {
	return box.Placement{Center: c.Center, Origin: c.Origin}
}

// File represents the YAML defaults file.
type File struct {
	Version           int               `yaml:"version"`
	Border            string            `yaml:"border,omitempty"`            // Preset name or six glyphs
	Length            *int              `yaml:"length,omitempty"`            // Padding after the longest line
	Center            bool              `yaml:"center,omitempty"`            // Center the box by default
	IgnoreUnknownKeys bool              `yaml:"ignore_unknown_keys,omitempty"`
	Presets           map[string]string `yaml:"presets,omitempty"` // Extra border presets, name -> six glyphs
}

// NewFile creates a File holding the built-in defaults.
func NewFile() *File {
	length := box.DefaultPadding
	return &File{
		Version: 1,
		Border:  DefaultBorder,
		Length:  &length,
		Presets: make(map[string]string),
	}
}

// Overrides carries command-line values. A nil field was not given.
type Overrides struct {
	Border            *string
	Length            *string
	Position          *string
	Center            *bool
	IgnoreUnknownKeys *bool
}
