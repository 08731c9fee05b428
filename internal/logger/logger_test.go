package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func parseLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var entries []map[string]interface{}
	for i, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("Line %d is not valid JSON: %v", i+1, err)
		}
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:     DEBUG,
		Format:    JSONFormat,
		Output:    &buf,
		Component: "test",
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", nil)

	entries := parseLines(t, &buf)
	if len(entries) != 4 {
		t.Fatalf("Expected 4 log lines, got %d", len(entries))
	}

	expected := []string{"debug", "info", "warning", "error"}
	for i, entry := range entries {
		if entry["level"] != expected[i] {
			t.Errorf("Line %d: expected level %s, got %v", i+1, expected[i], entry["level"])
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:  WARN,
		Format: JSONFormat,
		Output: &buf,
	})

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message", nil)

	if entries := parseLines(t, &buf); len(entries) != 2 {
		t.Errorf("Expected 2 log lines with WARN level, got %d", len(entries))
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:     INFO,
		Format:    JSONFormat,
		Output:    &buf,
		Component: "image-fetcher",
	})

	logger.Info("fetched image", map[string]interface{}{
		"source": "APOD",
		"count":  5,
	})

	entries := parseLines(t, &buf)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 log line, got %d", len(entries))
	}
	entry := entries[0]

	if entry["msg"] != "fetched image" {
		t.Errorf("Expected message 'fetched image', got %v", entry["msg"])
	}
	if entry["component"] != "image-fetcher" {
		t.Errorf("Expected component 'image-fetcher', got %v", entry["component"])
	}
	if entry["source"] != "APOD" {
		t.Errorf("Expected field source='APOD', got %v", entry["source"])
	}
	if entry["count"] != float64(5) {
		t.Errorf("Expected field count=5, got %v", entry["count"])
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:     INFO,
		Format:    TextFormat,
		Output:    &buf,
		Component: "weather",
	})

	logger.Info("snapshot ready", map[string]interface{}{"kp": "2.33"})

	output := buf.String()
	for _, want := range []string{"level=info", "component=weather", "snapshot ready", "kp=2.33"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got %s", want, output)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer

	base := New(Config{
		Level:     INFO,
		Format:    JSONFormat,
		Output:    &buf,
		Component: "base",
	})

	base.WithComponent("chat").Info("test message")

	entries := parseLines(t, &buf)
	if entries[0]["component"] != "chat" {
		t.Errorf("Expected component 'chat', got %v", entries[0]["component"])
	}
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:  ERROR,
		Format: JSONFormat,
		Output: &buf,
	})

	logger.Error("operation failed", &testError{msg: "test error"}, map[string]interface{}{
		"operation": "search",
	})

	entries := parseLines(t, &buf)
	if entries[0]["error"] != "test error" {
		t.Errorf("Expected error 'test error', got %v", entries[0]["error"])
	}
	if entries[0]["operation"] != "search" {
		t.Errorf("Expected operation field 'search', got %v", entries[0]["operation"])
	}
}

func TestGlobalLogger(t *testing.T) {
	var buf bytes.Buffer

	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	SetGlobalLogger(New(Config{
		Level:  INFO,
		Format: JSONFormat,
		Output: &buf,
	}))

	Info("global info message")
	Warn("global warn message")
	WithComponent("server").Info("component message")

	entries := parseLines(t, &buf)
	if len(entries) != 3 {
		t.Fatalf("Expected 3 log lines, got %d", len(entries))
	}
	if entries[0]["msg"] != "global info message" || entries[0]["level"] != "info" {
		t.Errorf("First line incorrect: %v", entries[0])
	}
	if entries[1]["msg"] != "global warn message" || entries[1]["level"] != "warning" {
		t.Errorf("Second line incorrect: %v", entries[1])
	}
	if entries[2]["component"] != "server" {
		t.Errorf("Third line should carry component 'server': %v", entries[2])
	}
}

func TestFormattedLogging(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{
		Level:  INFO,
		Format: JSONFormat,
		Output: &buf,
	})

	logger.Infof("Search %q returned %d images", "nebula", 5)

	entries := parseLines(t, &buf)
	expected := `Search "nebula" returned 5 images`
	if entries[0]["msg"] != expected {
		t.Errorf("Expected message '%s', got '%v'", expected, entries[0]["msg"])
	}
}

func TestParseLogLevelAndFormat(t *testing.T) {
	levels := map[string]LogLevel{
		"DEBUG":   DEBUG,
		"debug":   DEBUG,
		"info":    INFO,
		"warning": WARN,
		"Error":   ERROR,
		"bogus":   -1,
		"":        -1,
	}
	for in, want := range levels {
		if got := ParseLogLevel(in); got != want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}

	if got := ParseLogFormat("JSON"); got != JSONFormat {
		t.Errorf("Expected JSONFormat for 'JSON', got %v", got)
	}
	if got := ParseLogFormat("text"); got != TextFormat {
		t.Errorf("Expected TextFormat for 'text', got %v", got)
	}
	if got := ParseLogFormat("xml"); got != -1 {
		t.Errorf("Expected -1 for unknown format, got %v", got)
	}
	if got := ParseLogFormat("auto"); got != JSONFormat && got != TextFormat {
		t.Errorf("Expected auto to resolve to a concrete format, got %v", got)
	}
}

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{FATAL, "FATAL"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, test := range tests {
		if test.level.String() != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, test.level.String())
		}
	}
}

type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}

func BenchmarkJSONLogging(b *testing.B) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  INFO,
		Format: JSONFormat,
		Output: &buf,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", map[string]interface{}{
			"iteration": i,
		})
	}
}

func BenchmarkLevelFiltering(b *testing.B) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  WARN,
		Format: JSONFormat,
		Output: &buf,
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug("debug message that should be filtered")
	}
}
