package logging

import (
	"io"
	"log/slog"
)

// New returns a Logger for the named backend. Unknown names fall back to the
// slog text handler.
func New(backend string, w io.Writer, debug bool) Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	switch backend {
	case BackendZap:
		return NewZapJSONLogger(w, debug)
	case BackendSlogJSON:
		return NewJSONLogger(w, level)
	default:
		return NewTextLogger(w, level)
	}
}
