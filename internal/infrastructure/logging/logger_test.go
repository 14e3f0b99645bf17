package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("explicit level", func(t *testing.T) {
		l, err := New(true, "warn")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if l.Core().Enabled(zapcore.InfoLevel) {
			t.Fatalf("info must be disabled at warn level")
		}
		if !l.Core().Enabled(zapcore.WarnLevel) {
			t.Fatalf("warn must be enabled")
		}
	})

	t.Run("development default is debug", func(t *testing.T) {
		l, err := New(false, "")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !l.Core().Enabled(zapcore.DebugLevel) {
			t.Fatalf("debug must be enabled in development")
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		if _, err := New(false, "loud"); err == nil {
			t.Fatalf("expected error for invalid level")
		}
	})
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatalf("expected a logger")
	}
}
