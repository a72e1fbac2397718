package logger

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	baseLogger = nil
	initBaseLoggerOnce = sync.Once{}
}

// observe replaces the global logger with one recording entries at level and above.
func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(level)
	baseLogger = zap.New(core).Sugar()
	t.Cleanup(resetLogger)

	return logs
}

func validSpanContext(t *testing.T) trace.SpanContext {
	t.Helper()

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	return trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
}

func TestInit(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run("valid level "+level, func(t *testing.T) {
			resetLogger()
			defer resetLogger()

			require.NoError(t, Init(level))
			assert.NotNil(t, baseLogger)
		})
	}

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		defer resetLogger()

		assert.Error(t, Init("verbose"))
		assert.Nil(t, baseLogger)
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()
		defer resetLogger()

		require.NoError(t, Init("debug"))
		first := baseLogger

		require.NoError(t, Init("error"))
		assert.Same(t, first, baseLogger, "Init() should only initialize once")
	})
}

func TestUninitialized(t *testing.T) {
	resetLogger()

	assert.NotPanics(t, func() {
		Debug(t.Context(), "discarded")
		Info(t.Context(), "discarded", "key", "value")
		Warn(t.Context(), "discarded")
		Error(t.Context(), "discarded")
	})
	assert.NoError(t, Sync())
}

func TestLevels(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)
	ctx := t.Context()

	Debug(ctx, "debug message", "key", 1)
	Info(ctx, "info message", "key", 2)
	Warn(ctx, "warn message", "key", 3)
	Error(ctx, "error message", "key", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	expected := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}
	for i, entry := range entries {
		assert.Equal(t, expected[i], entry.Level)
		assert.Equal(t, int64(i+1), entry.ContextMap()["key"])
	}
}

func TestLevelFiltering(t *testing.T) {
	logs := observe(t, zapcore.WarnLevel)

	Debug(t.Context(), "dropped")
	Info(t.Context(), "dropped")
	Warn(t.Context(), "kept")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestDerive(t *testing.T) {
	t.Run("fields are attached to later entries", func(t *testing.T) {
		logs := observe(t, zapcore.DebugLevel)

		ctx := Derive(t.Context(), "run.id", "abc")
		Info(ctx, "message", "key", "value")

		entries := logs.All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "abc", fields["run.id"])
		assert.Equal(t, "value", fields["key"])
	})

	t.Run("derived contexts stack", func(t *testing.T) {
		logs := observe(t, zapcore.DebugLevel)

		ctx := Derive(Derive(t.Context(), "outer", 1), "inner", 2)
		Info(ctx, "message")

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, int64(1), fields["outer"])
		assert.Equal(t, int64(2), fields["inner"])
	})

	t.Run("parent context is not modified", func(t *testing.T) {
		logs := observe(t, zapcore.DebugLevel)

		parent := t.Context()
		_ = Derive(parent, "child", true)
		Info(parent, "message")

		assert.NotContains(t, logs.All()[0].ContextMap(), "child")
	})

	t.Run("stores a sugared logger in the context", func(t *testing.T) {
		observe(t, zapcore.DebugLevel)

		l, ok := Derive(t.Context()).Value(ctxKey).(*zap.SugaredLogger)
		assert.True(t, ok)
		assert.NotNil(t, l)
	})
}

func TestTraceCorrelation(t *testing.T) {
	t.Run("valid span context adds trace and span IDs", func(t *testing.T) {
		logs := observe(t, zapcore.DebugLevel)

		ctx := trace.ContextWithSpanContext(t.Context(), validSpanContext(t))
		Info(ctx, "traced")

		fields := logs.All()[0].ContextMap()
		assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", fields["trace_id"])
		assert.Equal(t, "00f067aa0ba902b7", fields["span_id"])
	})

	t.Run("derived context inside a span is tagged once", func(t *testing.T) {
		logs := observe(t, zapcore.DebugLevel)

		ctx := trace.ContextWithSpanContext(t.Context(), validSpanContext(t))
		ctx = Derive(ctx, "key", "value")
		Info(ctx, "traced")

		var traceFields int
		for _, field := range logs.All()[0].Context {
			if field.Key == "trace_id" {
				traceFields++
			}
		}
		assert.Equal(t, 1, traceFields)
	})

	t.Run("invalid span context adds nothing", func(t *testing.T) {
		logs := observe(t, zapcore.DebugLevel)

		ctx := trace.ContextWithSpanContext(t.Context(), trace.SpanContext{})
		Info(ctx, "untraced")

		fields := logs.All()[0].ContextMap()
		assert.NotContains(t, fields, "trace_id")
		assert.NotContains(t, fields, "span_id")
	})
}

func TestPanic(t *testing.T) {
	observe(t, zapcore.DebugLevel)

	assert.Panics(t, func() {
		Panic(t.Context(), "panic message", "key", "value")
	}, "Panic() should panic")
}

func TestFatal(t *testing.T) {
	// This subprocess will execute the Fatal call.
	if os.Getenv("TEST_FATAL_SUBPROCESS") == "1" {
		_ = Init("debug")
		// this will call os.Exit(1)
		Fatal(context.Background(), "fatal error for test", "key", "value")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestFatal$")
	cmd.Env = append(os.Environ(), "TEST_FATAL_SUBPROCESS=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "the subprocess should exit with a non-zero status")
	assert.Equal(t, 1, exitErr.ExitCode(), "logger.Fatal should terminate with exit code 1")

	// Logs go to stderr so stdout stays free for command output.
	assert.Contains(t, stderr.String(), `"level":"fatal"`)
	assert.NotContains(t, stdout.String(), `"level":"fatal"`)
}
