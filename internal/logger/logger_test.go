package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestNew_ConsoleFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "WARN"

	l, closer := New(cfg, &buf)
	defer closer.Close()

	l.Info("hidden")
	l.Warn("shown")
	Always(l, "audit")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "level=ALWAYS")
}

func TestNew_FileSink(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FileFormat = "json"
	cfg.FilePath = filepath.Join(t.TempDir(), "spellcore.log")

	l, closer := New(cfg, &buf)
	l.Info("both sinks", "spell", 202)
	require.NoError(t, closer.Close())

	raw, err := os.ReadFile(cfg.FilePath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"both sinks"`)
	assert.Contains(t, buf.String(), "both sinks")
}

func TestTracer_Sinks(t *testing.T) {
	var traceBuf, userBuf bytes.Buffer
	traceLog := slog.New(slog.NewTextHandler(&traceBuf, nil))
	userLog := slog.New(slog.NewTextHandler(&userBuf, nil))

	tr := NewTracer(traceLog, userLog, VerbosityOff)
	tr.Trace("off")
	assert.Empty(t, traceBuf.String())
	assert.Empty(t, userBuf.String())

	tr.SetVerbosity(VerbosityTrace)
	tr.Trace("trace only")
	assert.Contains(t, traceBuf.String(), "trace only")
	assert.Empty(t, userBuf.String())

	tr.SetVerbosity(VerbosityEcho)
	tr.Trace("echoed")
	assert.Equal(t, 2, strings.Count(traceBuf.String(), "msg="))
	assert.Contains(t, userBuf.String(), "echoed")
}

func TestTracer_NilIsNoop(t *testing.T) {
	var tr *Tracer
	assert.False(t, tr.Enabled())
	tr.SetVerbosity(VerbosityEcho)
	tr.Trace("nothing", "k", 1)
	assert.Equal(t, VerbosityOff, tr.Verbosity())
}

func TestParseVerbosity(t *testing.T) {
	assert.Equal(t, VerbosityTrace, ParseVerbosity("trace"))
	assert.Equal(t, VerbosityEcho, ParseVerbosity("ECHO"))
	assert.Equal(t, VerbosityOff, ParseVerbosity(""))
	assert.Equal(t, "echo", VerbosityEcho.String())
}
