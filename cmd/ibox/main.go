// Ibox draws an input box on the terminal and prints what was typed.
//
// The first argument is the box title. Every further argument is a content
// line; a line ending in "?>" becomes an input field. The box is drawn on
// stderr at the cursor (or at --position, or centred), each field is
// captured in turn, and the answers are printed to stdout one per line, so
// ibox composes with shell substitution:
//
//	name=$(ibox "Setup" "" "Your name?>")
//
// Usage:
//
//	ibox [flags] TITLE [LINE...]
//
// See 'ibox --help' for the flags.
package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/ibox/internal/config"
	"github.com/muurk/ibox/internal/logging"
	"github.com/muurk/ibox/internal/session"
	"github.com/muurk/ibox/internal/terminal"
	"github.com/muurk/ibox/internal/ui"
	"github.com/muurk/ibox/internal/version"
)

// sessionTerminal is a terminal that must be closed to restore its mode.
type sessionTerminal interface {
	terminal.Terminal
	io.Closer
}

// openTerminal opens the controlling terminal. Tests replace it.
var openTerminal = func() (sessionTerminal, error) {
	return terminal.Open()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes ibox with args and returns the process exit code. It is the
// only place failures are reported to the user.
func run(args []string, stdout, stderr io.Writer) int {
	printer := ui.NewPrinter(stderr)

	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCmd(stdout, printer)
	cmd.SetArgs(args)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	logging.Sync()
	if err == nil {
		return 0
	}

	classified := session.Classify(err)
	if classified.Type == session.ErrTypeInterrupted {
		return classified.ExitCode()
	}

	var hints []string
	if classified.Type == session.ErrTypeTerminal {
		hints = append(hints, "ibox needs an interactive terminal on stderr")
	}
	if classified.Type == session.ErrTypeInvariant {
		hints = append(hints, "This is a bug; please report it with the arguments used")
	}
	printer.Failure(classified.Type.String(), classified.Message, hints)
	if classified.Type.ShowUsage() {
		printer.Usage("\n" + cmd.UsageString())
	}
	return classified.ExitCode()
}

func newRootCmd(stdout io.Writer, printer *ui.Printer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "ibox [flags] TITLE [LINE...]",
		Short: "Draw an input box on the terminal and print what was typed",
		Long: `Draw a bordered box on the terminal and capture input fields.

The first argument is the title, drawn in the top border. Every further
argument is a content line. A line ending in "?>" is a field: its text is
shown without the marker and input is captured right after it.

The box is drawn on stderr. When every field has been answered with Enter,
the answers are written to stdout, one per line, in field order.

Flag parsing stops at the first non-flag argument, so content lines may
start with "-". Defaults for the flags can be stored in
$XDG_CONFIG_HOME/ibox/config.yaml with --save-config.`,
		Example: `  # Ask a single question at the cursor
  ibox "Login" "" "User?>"

  # Double border, centred, wider box
  ibox -b double -c -l 20 "Deploy" "Target env?>" "Version?>"

  # Custom glyphs (top-left, horizontal, top-right, vertical, bottom-left, bottom-right)
  ibox -b '+-+|++' "Plain" "Answer?>"

  # Store defaults
  ibox --save-config -b curved -l 12`,
		Version:       version.Full(),
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBox(cmd, opts, args, stdout, printer)
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetVersionTemplate("ibox {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &session.Error{Type: session.ErrTypeConfiguration, Message: err.Error(), Err: err}
	})

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVarP(&opts.border, "border", "b", config.DefaultBorder, "Border preset name or 6 glyphs")
	flags.StringVarP(&opts.length, "length", "l", "8", "Columns of padding after the longest line")
	flags.StringVarP(&opts.position, "position", "p", "", "Top-left corner as X,Y (0-based); default is the cursor")
	flags.BoolVarP(&opts.center, "center", "c", false, "Centre the box on the terminal")
	flags.BoolVar(&opts.ignoreUnknownKeys, "ignore-unknown-keys", false, "Keep capturing when arrows, tab or other special keys are pressed")
	flags.StringVar(&opts.configPath, "config", "", "Path to the defaults file")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); logs go to stderr or $"+logging.LogFileEnvVar)
	flags.BoolVar(&opts.saveConfig, "save-config", false, "Save the given flags as defaults; the query becomes optional")

	return cmd
}
