// Package logger holds the slog.Logger shared by ltdc and its
// sub-packages. It discards everything until a logger is installed with
// Set.
package logger

import (
	"context"
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

var ptr atomic.Pointer[slog.Logger]

func init() {
	ptr.Store(slog.New(nopHandler{}))
}

// Set installs l. A nil l restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	ptr.Store(l)
}

// L returns the current logger.
func L() *slog.Logger {
	return ptr.Load()
}
