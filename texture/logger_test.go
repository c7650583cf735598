package texture

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	orig := logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	SetLogger(custom)

	logger().Debug("probe")
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("log output = %q, want it to contain the probe message", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	orig := logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	SetLogger(nil)

	l := logger()
	if l == nil {
		t.Fatal("logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent default")
	}
}
