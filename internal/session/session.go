// Package session runs one ibox prompt: lay out, draw, capture, emit.
package session

import (
	"io"

	"go.uber.org/zap"

	"github.com/muurk/ibox/internal/box"
	"github.com/muurk/ibox/internal/capture"
	"github.com/muurk/ibox/internal/config"
	"github.com/muurk/ibox/internal/logging"
	"github.com/muurk/ibox/internal/terminal"
)

// Session binds a configuration to a terminal and an output stream.
type Session struct {
	cfg  *config.Config
	term terminal.Terminal
	out  io.Writer
}

// New creates a session. Captured answers are written to out.
func New(cfg *config.Config, term terminal.Terminal, out io.Writer) *Session {
	return &Session{
		cfg:  cfg,
		term: term,
		out:  out,
	}
}

// Run draws the box, captures every field and writes the answers. Every
// failure is returned as a *Error.
func (s *Session) Run() error {
	if err := s.run(); err != nil {
		classified := Classify(err)
		logging.Error("Session failed",
			zap.Stringer("type", classified.Type),
			zap.Error(err),
		)
		return classified
	}
	return nil
}

func (s *Session) run() error {
	lines := box.ParseLines(s.cfg.Query)

	renderer := box.NewRenderer(s.term, s.cfg.Palette)
	geo, err := renderer.Layout(s.cfg.Placement(), lines, s.cfg.Padding)
	if err != nil {
		return err
	}

	insertions, err := renderer.Render(lines, geo)
	if err != nil {
		return err
	}

	policy := capture.EndField
	if s.cfg.IgnoreUnknownKeys {
		policy = capture.IgnoreKey
	}
	fields, err := capture.NewLoop(s.term, capture.Options{UnknownKeys: policy}).Run(insertions)
	if err != nil {
		return err
	}

	if err := capture.Emit(s.out, fields); err != nil {
		return &Error{Type: ErrTypeIO, Message: "failed to write captured input", Err: err}
	}

	logging.Info("Session finished", zap.Int("fields", len(fields)))
	return nil
}
