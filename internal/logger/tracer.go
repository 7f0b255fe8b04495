package logger

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Verbosity selects which tracer sinks receive decision traces.
type Verbosity int32

const (
	VerbosityOff   Verbosity = iota // nothing is traced
	VerbosityTrace                  // trace sink only
	VerbosityEcho                   // trace sink and the user-visible sink
)

// ParseVerbosity converts a config value. Unknown values are off.
func ParseVerbosity(s string) Verbosity {
	switch strings.ToLower(s) {
	case "trace", "debug":
		return VerbosityTrace
	case "echo", "chat":
		return VerbosityEcho
	default:
		return VerbosityOff
	}
}

// String returns the config spelling of v.
func (v Verbosity) String() string {
	switch v {
	case VerbosityTrace:
		return "trace"
	case VerbosityEcho:
		return "echo"
	default:
		return "off"
	}
}

// Tracer is a side channel for per-decision traces. It never influences the caller:
// a nil *Tracer, or one at VerbosityOff, drops everything.
//
// Thread-safe: verbosity is an atomic and can be flipped while tracing.
type Tracer struct {
	trace *slog.Logger
	user  *slog.Logger
	level atomic.Int32
}

// NewTracer creates a tracer writing to trace (file/debug) and user (visible) sinks.
// Either sink may be nil.
func NewTracer(trace, user *slog.Logger, v Verbosity) *Tracer {
	t := &Tracer{trace: trace, user: user}
	t.level.Store(int32(v))
	return t
}

// SetVerbosity changes the verbosity.
func (t *Tracer) SetVerbosity(v Verbosity) {
	if t == nil {
		return
	}
	t.level.Store(int32(v))
}

// Verbosity returns the current verbosity.
func (t *Tracer) Verbosity() Verbosity {
	if t == nil {
		return VerbosityOff
	}
	return Verbosity(t.level.Load())
}

// Enabled reports whether Trace writes anywhere. Use it to guard expensive arguments.
func (t *Tracer) Enabled() bool {
	return t.Verbosity() != VerbosityOff
}

// Trace writes one decision line.
func (t *Tracer) Trace(msg string, args ...any) {
	v := t.Verbosity()
	if v == VerbosityOff {
		return
	}
	if t.trace != nil {
		t.trace.Log(context.Background(), LevelAlways, msg, args...)
	}
	if v == VerbosityEcho && t.user != nil {
		t.user.Log(context.Background(), LevelAlways, msg, args...)
	}
}
