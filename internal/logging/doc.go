// Package logging provides structured logging for ibox.
//
// This package wraps a global zap logger. Logging is silent by default
// because stderr carries the box itself; set IBOX_LOG_LEVEL (or pass
// --log-level) to enable it and IBOX_LOG_FILE to keep log lines off the
// terminal:
//
//	IBOX_LOG_LEVEL=debug IBOX_LOG_FILE=/tmp/ibox.log ibox 'Title' 'Name?>'
//
// Fields never contain captured input, only its length.
//
//	logging.Debug("Field committed",
//	    zap.Int("field", 1),
//	    zap.Int("length", 3),
//	)
package logging
