package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultIsSilent(t *testing.T) {
	Set(nil)
	if L().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSet(t *testing.T) {
	var buf bytes.Buffer
	Set(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer Set(nil)

	L().Debug("hello", "n", 3)
	if got := buf.String(); !strings.Contains(got, "msg=hello") || !strings.Contains(got, "n=3") {
		t.Errorf("log output = %q, want msg and attribute", got)
	}
}
