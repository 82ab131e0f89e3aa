package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/samvad-hq/akhbar-tech/internal/config"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestEnsureFallsBackToNop(t *testing.T) {
	if _, ok := Ensure(nil).(NopLogger); !ok {
		t.Fatalf("expected NopLogger for nil input")
	}
}

func TestInitSetsPackageLogger(t *testing.T) {
	log, err := Init(&config.Config{AppName: "test", Env: "test", LogLevel: "error"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if log == nil || S == nil {
		t.Fatalf("expected logger to be initialised")
	}
	log.DebugObj("dropped below level", "k", 1)
	InfoObj("package helper", "k", 1)
}
