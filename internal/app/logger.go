package app

import (
	"io"
	"log/slog"
)

// logLevels maps every accepted log-level value to its slog level.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// logHandlers maps every accepted log-format value to a handler constructor.
var logHandlers = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	"text": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, opts) },
	"json": func(w io.Writer, opts *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, opts) },
}

// newLogger builds an isolated logger writing to outW; the global logger is
// left alone. Unset or unknown values fall back to the defaults, so it is
// safe to call before the configuration is validated.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	level, ok := logLevels[levelStr]
	if !ok {
		level = logLevels[DefaultLogLevel]
	}
	newHandler, ok := logHandlers[formatStr]
	if !ok {
		newHandler = logHandlers[DefaultLogFormat]
	}
	return slog.New(newHandler(outW, &slog.HandlerOptions{Level: level}))
}
