package text

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger configures the logger used by the text package.
// By default the package is silent. Pass nil to restore that.
//
// The root txt2png.SetLogger calls this, so most programs never need to.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// printfLogger adapts slog to Printf-style loggers such as fontscan's.
type printfLogger struct {
	level slog.Level
}

func (p printfLogger) Printf(format string, args ...any) {
	l := Logger()
	if !l.Enabled(context.Background(), p.level) {
		return
	}
	l.Log(context.Background(), p.level, fmt.Sprintf(format, args...))
}
