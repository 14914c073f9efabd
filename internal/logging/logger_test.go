package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	stdlog "log"
	"strings"
	"testing"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, buf.String())
	}
	return entry
}

func TestZerologAdapter_InfoWithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Info("conversion done",
		String("path", "bytes"),
		Int("digits", 42),
		Uint64("bits", 140),
		Float64("seconds", 0.5),
	)

	entry := decodeLine(t, &buf)
	if entry["message"] != "conversion done" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["component"] != "test" {
		t.Errorf("component = %v", entry["component"])
	}
	if entry["path"] != "bytes" {
		t.Errorf("path = %v", entry["path"])
	}
	if entry["digits"] != float64(42) {
		t.Errorf("digits = %v", entry["digits"])
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Error("conversion failed", errors.New("boom"), Err(errors.New("detail")))

	entry := decodeLine(t, &buf)
	if entry["level"] != "error" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["error"] == nil {
		t.Error("error field missing")
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStdLoggerAdapter(stdlog.New(&buf, "", 0))

	logger.Info("hello")
	logger.Debug("world", Int("n", 1))
	logger.Error("bad", errors.New("boom"))

	s := buf.String()
	for _, needle := range []string{"[INFO] hello", "[DEBUG] world", "[ERROR] bad: boom"} {
		if !strings.Contains(s, needle) {
			t.Errorf("output missing %q:\n%s", needle, s)
		}
	}
}
