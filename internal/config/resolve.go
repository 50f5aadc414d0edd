package config

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/ibox/internal/box"
	"github.com/muurk/ibox/internal/logging"
	"github.com/muurk/ibox/internal/terminal"
)

// ParseLength parses a padding value. Anything that is not a non-negative
// integer yields fallback and ok=false.
func ParseLength(s string, fallback int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return fallback, false
	}
	return n, true
}

// ParsePosition parses "X,Y" into a 0-based point.
func ParsePosition(s string) (terminal.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return terminal.Point{}, &Error{Field: "position", Value: s, Message: "expected X,Y"}
	}

	x, err := strconv.ParseUint(strings.TrimSpace(xs), 10, 16)
	if err != nil {
		return terminal.Point{}, &Error{Field: "position", Value: s, Message: "X must be a non-negative integer", Err: err}
	}
	y, err := strconv.ParseUint(strings.TrimSpace(ys), 10, 16)
	if err != nil {
		return terminal.Point{}, &Error{Field: "position", Value: s, Message: "Y must be a non-negative integer", Err: err}
	}

	return terminal.Point{Col: int(x), Row: int(y)}, nil
}

// Build resolves the configuration for a run from the defaults file, the
// command-line overrides and the query lines.
func Build(file *File, o Overrides, query []string) (*Config, error) {
	if file == nil {
		file = NewFile()
	}

	presets, err := BuiltinPresets().WithCustom(file.Presets)
	if err != nil {
		return nil, err
	}

	border := file.Border
	if border == "" {
		border = DefaultBorder
	}
	if o.Border != nil {
		border = *o.Border
	}
	palette, err := presets.Resolve(border)
	if err != nil {
		return nil, err
	}

	padding := box.DefaultPadding
	if file.Length != nil {
		if *file.Length < 0 {
			return nil, &Error{Field: "length", Value: strconv.Itoa(*file.Length), Message: "must not be negative"}
		}
		padding = *file.Length
	}
	if o.Length != nil {
		n, ok := ParseLength(*o.Length, padding)
		if !ok {
			logging.Warn("Invalid length, using default",
				zap.String("value", *o.Length),
				zap.Int("default", padding),
			)
		}
		padding = n
	}

	cfg := &Config{
		Palette:           palette,
		Padding:           padding,
		Center:            file.Center,
		IgnoreUnknownKeys: file.IgnoreUnknownKeys,
		Query:             query,
	}
	if o.Center != nil {
		cfg.Center = *o.Center
	}
	if o.IgnoreUnknownKeys != nil {
		cfg.IgnoreUnknownKeys = *o.IgnoreUnknownKeys
	}
	if o.Position != nil {
		p, err := ParsePosition(*o.Position)
		if err != nil {
			return nil, err
		}
		cfg.Origin = &p
	}

	if len(cfg.Query) == 0 {
		return nil, box.ErrEmptyQuery
	}

	logging.Debug("Configuration resolved",
		zap.String("border", palette.String()),
		zap.Int("padding", cfg.Padding),
		zap.Bool("center", cfg.Center),
		zap.Int("lines", len(cfg.Query)),
	)
	return cfg, nil
}
