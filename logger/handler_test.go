package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestHandlerRendersLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Options{Output: &buf, TimeFormat: "15:04:05"})

	log.Info("converted pic.png", "quality", 80)

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level in %q", line)
	}
	if !strings.Contains(line, "converted pic.png") {
		t.Fatalf("missing message in %q", line)
	}
	if !strings.Contains(line, "quality=80") {
		t.Fatalf("missing attr in %q", line)
	}
	if strings.Contains(line, "\033[") {
		t.Fatalf("colors disabled but escape codes present in %q", line)
	}
}

func TestHandlerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&Options{Output: &buf, Level: slog.LevelWarn})

	log.Info("quiet")
	log.Warn("loud")

	out := buf.String()
	if strings.Contains(out, "quiet") {
		t.Fatalf("info record leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "loud") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestConsoleOutcomeGlyphs(t *testing.T) {
	var buf bytes.Buffer
	console := NewConsole(&Options{Output: &buf})

	console.Success("done")
	console.Error("broke")

	out := buf.String()
	if !strings.Contains(out, "✓ done") {
		t.Fatalf("success glyph missing: %q", out)
	}
	if !strings.Contains(out, "✖ broke") {
		t.Fatalf("error glyph missing: %q", out)
	}
}
