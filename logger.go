package wardrobe

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package-wide logger. Libraries created afterwards
// without WithLogger use it and hand it down to catalog, compositor and
// project. By default wardrobe produces no log output.
//
// Pass nil to restore the silent default. SetLogger is safe for concurrent
// use.
//
// Log levels used by wardrobe:
//   - [slog.LevelDebug]: per-article selection and cache activity
//   - [slog.LevelInfo]: catalogs loaded, images and projects written
//   - [slog.LevelWarn]: skipped inventories, undecodable images, unknown project ids
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package-wide logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
