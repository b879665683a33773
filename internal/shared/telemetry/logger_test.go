package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestFieldsAreWrittenAsJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetLogger(build(os.Stdout, true, false))

	Warn("analysis.extract_failed", map[string]any{"size_bytes": 12, "file_name": "cv.pdf"})

	var line map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", buf.String(), err)
	}
	if line["msg"] != "analysis.extract_failed" || line["level"] != "warn" {
		t.Fatalf("unexpected envelope %v", line)
	}
	if line["file_name"] != "cv.pdf" || line["size_bytes"] != float64(12) {
		t.Fatalf("unexpected fields %v", line)
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetLogger(build(os.Stdout, true, false))

	Logger().Debug("noisy")
	Info("kept", nil)
	if strings.Contains(buf.String(), "noisy") || !strings.Contains(buf.String(), "kept") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestSetLoggerNil(t *testing.T) {
	SetLogger(nil)
	defer SetLogger(build(os.Stdout, true, false))
	Info("dropped", map[string]any{"k": "v"})
}
