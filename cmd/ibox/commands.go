package main

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/muurk/ibox/internal/config"
	"github.com/muurk/ibox/internal/logging"
	"github.com/muurk/ibox/internal/session"
	"github.com/muurk/ibox/internal/ui"
)

// options holds the root command flags
type options struct {
	border            string
	length            string
	position          string
	center            bool
	ignoreUnknownKeys bool
	configPath        string
	logLevel          string
	saveConfig        bool
}

// overrides returns the values of the flags that were given on the command line.
func (o *options) overrides(flags *pflag.FlagSet) config.Overrides {
	var ov config.Overrides
	if flags.Changed("border") {
		ov.Border = &o.border
	}
	if flags.Changed("length") {
		ov.Length = &o.length
	}
	if flags.Changed("position") {
		ov.Position = &o.position
	}
	if flags.Changed("center") {
		ov.Center = &o.center
	}
	if flags.Changed("ignore-unknown-keys") {
		ov.IgnoreUnknownKeys = &o.ignoreUnknownKeys
	}
	return ov
}

func runBox(cmd *cobra.Command, opts *options, args []string, stdout io.Writer, printer *ui.Printer) error {
	if err := logging.Initialize(opts.logLevel); err != nil {
		return &config.Error{Field: "log-level", Value: opts.logLevel, Message: "cannot start logging", Err: err}
	}

	file, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	overrides := opts.overrides(cmd.Flags())

	if opts.saveConfig {
		if err := saveDefaults(file, overrides, opts.configPath, printer); err != nil {
			return err
		}
		if len(args) == 0 {
			return nil
		}
	}

	cfg, err := config.Build(file, overrides, args)
	if err != nil {
		return err
	}

	tty, err := openTerminal()
	if err != nil {
		return err
	}

	runErr := session.New(cfg, tty, stdout).Run()
	closeErr := tty.Close()
	if runErr != nil {
		if closeErr != nil {
			logging.Warn("Failed to restore terminal", zap.Error(closeErr))
		}
		return runErr
	}
	return closeErr
}

// saveDefaults records overrides in the defaults file and reports where it went.
func saveDefaults(file *config.File, overrides config.Overrides, path string, printer *ui.Printer) error {
	if err := file.Apply(overrides); err != nil {
		return err
	}

	saved, err := file.Save(path)
	if err != nil {
		return &session.Error{Type: session.ErrTypeIO, Message: "failed to save defaults", Err: err}
	}

	logging.Info("Defaults saved", zap.String("path", saved))
	printer.Success("Defaults saved", [][2]string{
		{"Path", saved},
		{"Border", file.Border},
		{"Length", file.LengthString()},
		{"Center", strconv.FormatBool(file.Center)},
		{"Ignore unknown keys", strconv.FormatBool(file.IgnoreUnknownKeys)},
	})
	return nil
}
