package circleimage

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false so slog never
// formats the message.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func newSilentLogger() *slog.Logger { return slog.New(discardHandler{}) }

// activeLogger holds the logger shared by the package and its sub-packages.
var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(newSilentLogger())
}

// SetLogger installs the logger used by circleimage and raster.
// The package is silent until SetLogger is called; passing nil silences it again.
//
// Levels:
//   - [slog.LevelDebug]: geometry recomputation, deferred setup
//   - [slog.LevelInfo]: drawables rasterized into an image sample
//   - [slog.LevelWarn]: image samples that could not be extracted
//
// Example:
//
//	circleimage.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newSilentLogger()
	}
	activeLogger.Store(l)
}

// Logger returns the logger installed with SetLogger. Safe for concurrent use.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
