package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.expected {
			t.Errorf("parseLevel(%q): got %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestFileOutput(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "test.log")

	Init(Options{Level: "debug", File: logFile, Console: false})
	defer Sync()

	Sugar.Infow("decode failed", "mip", 5, "format", "DXT5")
	Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "decode failed") {
		t.Errorf("log file missing entry, got: %s", data)
	}
}

func TestNopBeforeInit(t *testing.T) {
	// The package-level logger must be usable before Init is ever called.
	Log.Info("ignored")
	Sugar.Debugw("ignored", "key", "value")
}
