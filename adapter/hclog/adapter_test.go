package hclog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/trickstertwo/lvlog"
)

func TestHclogSink_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(NewLogger(Config{Name: "api", Writer: &buf, MinLevel: lvlog.LevelTrace, JSON: true}))

	ev := &lvlog.Event{
		Level:  lvlog.LevelError,
		Time:   time.Date(2024, 12, 31, 23, 59, 59, 5, time.UTC),
		File:   "db.go",
		Line:   77,
		Format: "query failed: %v",
		Args:   []any{"timeout"},
	}
	if err := s.Write(ev); err != nil {
		t.Fatalf("write: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("json unmarshal: %v; line=%s", err, buf.String())
	}
	if m["@level"] != "error" || m["@message"] != "query failed: timeout" || m["@module"] != "api" {
		t.Fatalf("line mismatch: %v", m)
	}
	if m["caller"] != "db.go:77" || m["ts"] != "2024-12-31T23:59:59.000000005Z" {
		t.Fatalf("field mismatch: %v", m)
	}
}

func TestHclogSink_LevelMapping(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := New(NewLogger(Config{Writer: &buf, MinLevel: lvlog.LevelWarn}))
	for _, lvl := range []lvlog.Level{lvlog.LevelTrace, lvlog.LevelDebug, lvlog.LevelInfo, lvlog.LevelWarn, lvlog.LevelFatal} {
		s.Write(&lvlog.Event{Level: lvl, Time: time.Now(), File: "a.go", Line: 1, Format: lvl.String()})
	}

	out := buf.String()
	for _, hidden := range []string{"TRACE", "DEBUG", "INFO"} {
		if strings.Contains(out, hidden) {
			t.Fatalf("%s should be filtered: %q", hidden, out)
		}
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "FATAL") {
		t.Fatalf("expected warn and fatal-as-error lines: %q", out)
	}
}

func TestUse_Registers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := lvlog.NewBuilder().WithConsole(nil).WithCapacity(1).Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if _, _, err := Use(l, Config{Writer: &buf}); err != nil {
		t.Fatalf("use: %v", err)
	}
	if _, _, err := Use(l, Config{Writer: &buf}); err == nil {
		t.Fatalf("expected capacity error on second Use")
	}

	l.Log(lvlog.LevelInfo, "main.go", 9, "hello")
	if out := buf.String(); !strings.Contains(out, "[INFO]") || !strings.Contains(out, "hello") || !strings.Contains(out, "caller=main.go:9") {
		t.Fatalf("unexpected line: %q", buf.String())
	}
}
