package tinylog

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// benchWriter discards entries after declaring its required values, keeping
// benchmarks focused on pure dispatch overhead.
type benchWriter struct {
	required ValueSet
}

func (w *benchWriter) RequiredValues() ValueSet { return w.required }
func (w *benchWriter) Log(*Entry) error         { return nil }
func (w *benchWriter) Flush() error             { return nil }
func (w *benchWriter) Close() error             { return nil }

type asyncBenchWriter struct {
	benchWriter
}

func (w *asyncBenchWriter) Asynchronous() {}

// newBenchBackend constructs a backend with a single discard writer. It
// bypasses the default diagnostic reporter setup to avoid console I/O.
func newBenchBackend(b *testing.B, minimum Level, writer Writer) *Backend {
	b.Helper()
	cfg, err := NewLoggingConfiguration(globalScope(minimum), []WriterConfig{
		{Writer: writer, MinLevel: LevelTrace},
	})
	if err != nil {
		b.Fatal(err)
	}
	backend, err := NewBackend(cfg, BackendOptions{Reporter: &captureReporter{}})
	if err != nil {
		b.Fatal(err)
	}
	return backend
}

func BenchmarkIsEnabled_SingleScope(b *testing.B) {
	backend := newBenchBackend(b, LevelInfo, &benchWriter{required: ValueMessage})
	loc := locationAt("com.app.Main")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.IsEnabled(loc, "", LevelDebug)
	}
}

func BenchmarkLog_Disabled(b *testing.B) {
	backend := newBenchBackend(b, LevelInfo, &benchWriter{required: ValueMessage})
	loc := locationAt("com.app.Main")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.Log(loc, "", LevelDebug, nil, "dropped message", nil, nil)
	}
}

func BenchmarkLog_MinimalRecord(b *testing.B) {
	backend := newBenchBackend(b, LevelTrace, &benchWriter{required: ValueMessage})
	loc := locationAt("com.app.Main")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.Log(loc, "", LevelInfo, nil, "plain message", nil, nil)
	}
}

func BenchmarkLog_FullRecord(b *testing.B) {
	required := ValueTimestamp | ValueUptime | ValueThread | ValueContext | frameValues | ValueClass
	backend := newBenchBackend(b, LevelTrace, &benchWriter{required: required})
	backend.ContextStorage().Put("request_id", "r-1")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.Log(CallerLocation(0), "", LevelInfo, nil, "full message", nil, nil)
	}
}

func BenchmarkLog_Formatted(b *testing.B) {
	backend := newBenchBackend(b, LevelTrace, &benchWriter{required: ValueMessage})
	loc := locationAt("com.app.Main")
	args := []any{"world"}
	formatter := braceFormatter{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.Log(loc, "", LevelInfo, nil, "hello {}", args, formatter)
	}
}

func BenchmarkLog_Async(b *testing.B) {
	backend := newBenchBackend(b, LevelTrace, &asyncBenchWriter{benchWriter{required: ValueMessage}})
	backend.Hook().Start()
	defer func() { _ = backend.Hook().Stop() }()
	loc := locationAt("com.app.Main")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		backend.Log(loc, "", LevelInfo, nil, "queued message", nil, nil)
	}
}

// Competitive baseline: the same discard-sink message through zap, to keep
// dispatch overhead honest against an established structured logger.
func BenchmarkCompetitive_Zap(b *testing.B) {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	logger := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(io.Discard), zap.InfoLevel))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("plain message")
	}
}

func BenchmarkCompetitive_ZapDisabled(b *testing.B) {
	encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	logger := zap.New(zapcore.NewCore(encoder, zapcore.AddSync(io.Discard), zap.InfoLevel))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("dropped message")
	}
}
