package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/finovahq/agentdesk/internal/errors"
)

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	logger.Info("case loaded", "case_id", "C-42")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["msg"] != "case loaded" {
		t.Errorf("msg = %v, want 'case loaded'", entry["msg"])
	}
	if entry["case_id"] != "C-42" {
		t.Errorf("case_id = %v, want C-42", entry["case_id"])
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelWarn,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.Debug("hidden")
	logger.Info("also hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-level messages leaked: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn message missing: %s", out)
	}
}

func TestWithErrorAddsDeskErrorFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})

	err := errors.Wrap(errors.ErrCodeNetwork, "request failed", fmt.Errorf("dial tcp: refused"))
	logger.WithError(err).Error("fetch cases")

	out := buf.String()
	if !strings.Contains(out, "API-002") {
		t.Errorf("error_code missing: %s", out)
	}
	if !strings.Contains(out, "dial tcp: refused") {
		t.Errorf("cause missing: %s", out)
	}
}

func TestLogErrorPlainError(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelInfo,
		Format: FormatText,
		Output: NewOutput(&buf),
	})

	logger.LogError(fmt.Errorf("plain failure"))

	if !strings.Contains(buf.String(), "plain failure") {
		t.Errorf("plain error not logged: %s", buf.String())
	}
}

func TestEnabled(t *testing.T) {
	logger := New(Config{Level: LevelError, Format: FormatText, Output: OutputStderr()})

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled at error level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at error level")
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	if ParseLevel("debug") != LevelDebug {
		t.Error("ParseLevel(debug) failed")
	}
	if ParseLevel("nonsense") != LevelInfo {
		t.Error("ParseLevel should default to info")
	}
	if ParseFormat("json") != FormatJSON {
		t.Error("ParseFormat(json) failed")
	}
	if ParseFormat("") != FormatText {
		t.Error("ParseFormat should default to text")
	}
}

func TestDefaultLoggerLazyInit(t *testing.T) {
	SetDefaultLogger(nil)
	logger := DefaultLogger()
	if logger == nil {
		t.Fatal("DefaultLogger returned nil")
	}
	if DefaultLogger() != logger {
		t.Error("DefaultLogger not stable across calls")
	}
}
