package logging

import (
	"testing"

	"github.com/go-logr/logr"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":  zapcore.DebugLevel,
		" INFO ": zapcore.InfoLevel,
		"warn":   zapcore.WarnLevel,
		"error":  zapcore.ErrorLevel,
		"":       zapcore.InfoLevel,
		"chatty": zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromLevelDebugEnablesV1(t *testing.T) {
	if !FromLevel("debug").V(1).Enabled() {
		t.Fatal("expected V(1) to be enabled at debug level")
	}
	if FromLevel("info").V(1).Enabled() {
		t.Fatal("expected V(1) to be disabled at info level")
	}
}

func TestNewFallsBackToDefault(t *testing.T) {
	l := New(logr.Logger{})
	if l.Logr().GetSink() == nil {
		t.Fatal("expected default sink")
	}
	// Discard must be usable without a sink.
	Discard().WithName("x").WithValues("k", "v").Info("dropped")
}
