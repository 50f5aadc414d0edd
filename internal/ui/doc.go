// Package ui renders ibox's own diagnostics: failure reports, hints and
// short success notes.
//
// Everything here is written to stderr. Styles are created from a lipgloss
// renderer bound to the writer they will be printed on, so colour detection
// follows stderr even when stdout is captured by a shell substitution.
//
//	p := ui.NewPrinter(os.Stderr)
//	p.Failure("Configuration Error", err.Error(), []string{"Run 'ibox --help' for usage"})
package ui
