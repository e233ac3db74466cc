package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_DebugWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Debug: true, Output: &buf})

	l.Debug("overpass.request", "bytes", 42)

	out := buf.String()
	if !strings.Contains(out, "overpass.request") || !strings.Contains(out, "bytes=42") {
		t.Errorf("unexpected log output: %q", out)
	}
	if !strings.Contains(out, "time=") || !strings.Contains(out, "Z ") {
		t.Errorf("expected UTC RFC3339 timestamp, got %q", out)
	}
}

func TestNew_WithoutDebugDiscards(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Output: &buf})

	l.Info("ignored")
	l.Error("ignored too")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
