package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	Init(Config{Level: "info"})
	if level.Level() != zapcore.InfoLevel {
		t.Fatalf("expected info, got %v", level.Level())
	}

	SetLevel("debug")
	if level.Level() != zapcore.DebugLevel {
		t.Fatalf("expected debug after SetLevel, got %v", level.Level())
	}
}

func TestLIsNeverNil(t *testing.T) {
	if L() == nil {
		t.Fatal("L() returned nil")
	}
}
