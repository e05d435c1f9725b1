package lvlog

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func consoleEvent(level Level) *Event {
	return &Event{
		Level:  level,
		Time:   time.Date(2025, 1, 1, 12, 34, 56, 0, time.UTC),
		File:   "main.go",
		Line:   42,
		Format: "listening on %s",
		Args:   []any{":8080"},
	}
}

func TestConsolePlainLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewConsole(&buf, ColorNever)
	if err := c.Write(consoleEvent(LevelInfo)); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "12:34:56 INFO  main.go:42: listening on :8080\n"
	if got := buf.String(); got != want {
		t.Fatalf("console line mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestConsoleColors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	c := NewConsole(&buf, ColorAlways)
	c.Write(consoleEvent(LevelError))

	out := buf.String()
	if !strings.Contains(out, "\x1b[31mERROR\x1b[") {
		t.Fatalf("missing red level: %q", out)
	}
	if !strings.Contains(out, "\x1b[90mmain.go:42:\x1b[") {
		t.Fatalf("missing dimmed location: %q", out)
	}
	if !strings.HasSuffix(out, "listening on :8080\n") {
		t.Fatalf("missing message: %q", out)
	}
}

func TestConsoleAutoIsPlainForBuffers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	NewConsole(&buf, ColorAuto).Write(consoleEvent(LevelWarn))
	if strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("non-terminal writer got escape codes: %q", buf.String())
	}
}

func TestParseColorMode(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]ColorMode{
		"always": ColorAlways,
		"never":  ColorNever,
		"auto":   ColorAuto,
		"":       ColorAuto,
		"1":      ColorAlways,
	} {
		if got := ParseColorMode(in); got != want {
			t.Fatalf("ParseColorMode(%q) = %d, want %d", in, got, want)
		}
	}
}
