package simview

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/simview/texture"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for simview and its sub-packages.
// By default simview produces no log output. Pass nil to restore the
// silent default.
//
// Levels used:
//   - [slog.LevelDebug]: per-operation diagnostics (view created, batch loaded)
//   - [slog.LevelInfo]: lifecycle events (feed connected)
//   - [slog.LevelWarn]: skipped input (malformed feed message)
//
// Example:
//
//	simview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	texture.SetLogger(l)
}

// Logger returns the current logger. Sub-packages that import simview
// (feed, termview) call this to share one configuration without import
// cycles; texture cannot and gets the logger pushed by SetLogger.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
