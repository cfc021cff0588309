package logging

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap/zapcore"

	"timetally/internal/platform/config"
)

func TestLevelMapping(t *testing.T) {
	cases := map[int]zapcore.Level{
		1: zapcore.ErrorLevel,
		2: zapcore.WarnLevel,
		3: zapcore.InfoLevel,
		4: zapcore.DebugLevel,
		5: zapcore.DebugLevel,
	}
	for verbosity, want := range cases {
		if got := level(verbosity); got != want {
			t.Errorf("level(%d) = %v, want %v", verbosity, got, want)
		}
	}
}

func TestNewStdoutLogger(t *testing.T) {
	cfg := config.Config{LogMethod: config.LogMethodStdout, Verbosity: 3}
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
}

func TestNewFileLogger(t *testing.T) {
	cfg := config.Config{
		LogMethod: config.LogMethodFile,
		LogFile:   filepath.Join(t.TempDir(), "timetally.log"),
		Verbosity: 3,
	}
	logger, err := New(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	logger.Info("hello")
	_ = logger.Sync()
}

func TestNewRejectsUnknownMethod(t *testing.T) {
	if _, err := New(config.Config{LogMethod: "loki"}); err == nil {
		t.Fatal("expected error for unknown log method")
	}
}
