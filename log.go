package overlay

import (
	"log/slog"
	"os"
)

// guiLogLevel controls the verbosity of the package loggers.
// Default is LevelInfo (debug messages suppressed).
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables debug logging for focus, activation and
// replay decisions.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// IsVerbose returns whether debug logging is enabled.
func IsVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// defaultLogger is used by a GUI created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))
