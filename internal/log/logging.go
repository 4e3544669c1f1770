// Package log builds the slog.Logger used by signalgen.
//
// Without a log file, records below error go to stdout and errors go to
// stderr, so a build system capturing stderr only sees failures. With a log
// file, console output moves entirely to stderr and the file gets a copy of
// everything.
package log

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"

	"golang.org/x/term"
)

// LevelTrace sits below Debug; the generator logs one record per rendered
// event at this level.
const LevelTrace slog.Level = -8

var levels = map[string]slog.Level{
	"trace": LevelTrace,
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLevel maps a --log.level value to a slog level. Unknown values fall
// back to info.
func ParseLevel(s string) slog.Level {
	if l, ok := levels[s]; ok {
		return l
	}
	return slog.LevelInfo
}

// MultiHandler hands each record to every member that accepts its level.
type MultiHandler []slog.Handler

func (m MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return slices.ContainsFunc(m, func(h slog.Handler) bool { return h.Enabled(ctx, level) })
}

func (m MultiHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range m {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (m MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (m MultiHandler) WithGroup(name string) slog.Handler {
	return m.derive(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (m MultiHandler) derive(fn func(slog.Handler) slog.Handler) MultiHandler {
	out := make(MultiHandler, len(m))
	for i, h := range m {
		out[i] = fn(h)
	}
	return out
}

// LevelFilter splits records at slog.LevelError. With Errors set only error
// records reach Handler, otherwise only the ones below.
type LevelFilter struct {
	Handler slog.Handler
	Errors  bool
}

func (f LevelFilter) accepts(l slog.Level) bool { return (l >= slog.LevelError) == f.Errors }

func (f LevelFilter) Enabled(ctx context.Context, level slog.Level) bool {
	return f.accepts(level) && f.Handler.Enabled(ctx, level)
}

func (f LevelFilter) Handle(ctx context.Context, r slog.Record) error {
	if !f.accepts(r.Level) {
		return nil
	}
	return f.Handler.Handle(ctx, r)
}

func (f LevelFilter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return LevelFilter{Handler: f.Handler.WithAttrs(attrs), Errors: f.Errors}
}

func (f LevelFilter) WithGroup(name string) slog.Handler {
	return LevelFilter{Handler: f.Handler.WithGroup(name), Errors: f.Errors}
}

// newHandler picks the text or JSON handler. "auto" uses text on a terminal
// and JSON otherwise (build logs, CI).
func newHandler(w io.Writer, format string, isTerminal bool, opts *slog.HandlerOptions) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(w, opts)
	case "text":
		return slog.NewTextHandler(w, opts)
	default:
		if isTerminal {
			return slog.NewTextHandler(w, opts)
		}
		return slog.NewJSONHandler(w, opts)
	}
}

func consoleHandlers(format string, level slog.Level, split bool) MultiHandler {
	tty := term.IsTerminal(int(os.Stderr.Fd()))
	opts := &slog.HandlerOptions{Level: level}
	if !split {
		return MultiHandler{newHandler(os.Stderr, format, tty, opts)}
	}
	return MultiHandler{
		LevelFilter{Handler: newHandler(os.Stdout, format, tty, opts)},
		LevelFilter{Handler: newHandler(os.Stderr, format, tty, opts), Errors: true},
	}
}

// SetupLogger builds the logger from the --log.* flags. The returned closers
// release the log file, if any.
func SetupLogger(logLevel, logFile, logFormat string) (*slog.Logger, []io.Closer, error) {
	level := ParseLevel(logLevel)
	handlers := consoleHandlers(logFormat, level, logFile == "")
	if logFile == "" {
		return slog.New(handlers), nil, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	handlers = append(handlers, newHandler(f, logFormat, false, &slog.HandlerOptions{Level: level}))
	return slog.New(handlers), []io.Closer{f}, nil
}
