package gpuprep

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers skip
// formatting entirely.
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

// SetLogger routes gpuprep's records to l. Pass nil to silence gpuprep
// again, which is also the initial state.
//
// Records emitted:
//   - Debug "gpuprep: mip pyramid generated" with width, height, levels and
//     parallel (whether a worker pool reduced the levels)
//   - Debug "gpuprep: ring geometry built" with indexed, subdivisions,
//     vertices and indices
//   - Warn "gpuprep: rejected input" with op (the exported function) and err
//     (the detail sentinel, e.g. ErrInvalidSubdivisions)
//
// The mipgen and ringgen commands install a stderr text handler and switch
// it to Debug with -v:
//
//	gpuprep.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//
// SetLogger is safe for concurrent use, including while generators run.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger gpuprep currently writes to. It is never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
