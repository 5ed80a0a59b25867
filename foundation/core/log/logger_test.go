// File: logger_test.go
// Title: Core Logger Unit Tests
// Description: Tests for levels, formats, context propagation, error
//              logging and timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test suite
// - 2026-10-18 v0.2.0: Rewritten for the reduced logger API

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	kinerror "github.com/kin-lang/kin/foundation/core/error"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewWithConfig(Config{Level: level, Format: format, Output: &buf}), &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{" WARN ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"off", LevelOff, false},
		{"loud", LevelWarn, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console", "logfmt"} {
		f, err := ParseFormat(name)
		if err != nil || f.String() != name {
			t.Errorf("Expected %q to round-trip, got %s (%v)", name, f, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)
	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown too")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Expected debug/info to be filtered, got %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("Expected 2 lines, got %q", out)
	}

	quiet, qbuf := newBufferLogger(LevelOff, FormatText)
	quiet.Error("nothing")
	if qbuf.Len() != 0 {
		t.Errorf("Expected LevelOff to suppress output, got %q", qbuf.String())
	}
}

func TestLogger_JSONContext(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)
	logger.WithName("kin").
		WithField("component", "kin-parser").
		WithRequestID("req-42").
		Debug("Starting Kin parsing", Fields{"tokens": 6})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected JSON output, got %q: %v", buf.String(), err)
	}
	expected := map[string]interface{}{
		"level":      "debug",
		"message":    "Starting Kin parsing",
		"logger":     "kin",
		"component":  "kin-parser",
		"request_id": "req-42",
		"tokens":     float64(6),
	}
	for k, v := range expected {
		if entry[k] != v {
			t.Errorf("Expected %s=%v, got %v", k, v, entry[k])
		}
	}
}

func TestLogger_WithDoesNotMutate(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo, FormatLogfmt)
	_ = base.WithField("component", "x").WithLevel(LevelError)
	base.Info("plain")

	if strings.Contains(buf.String(), "component") {
		t.Errorf("Expected base logger to stay untouched, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), `message="plain"`) {
		t.Errorf("Expected logfmt message, got %q", buf.String())
	}
}

func TestTextFormatter_SortedFields(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	logger.Info("msg", Fields{"b": 2, "a": 1, "c": 3})
	if !strings.Contains(buf.String(), "[a=1 b=2 c=3]") {
		t.Errorf("Expected sorted fields, got %q", buf.String())
	}
}

func TestConsoleFormatter_Colors(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatConsole)
	logger.Warn("careful")
	out := buf.String()
	if !strings.HasPrefix(out, LevelWarn.Color()) || !strings.HasSuffix(out, "\033[0m\n") {
		t.Errorf("Expected colored line, got %q", out)
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		minLevel Level
		contains []string
	}{
		{
			name:     "syntax error logs at info",
			err:      kinerror.New("unexpected token").WithCode(kinerror.CodeKinSyntax).WithLine(3),
			minLevel: LevelInfo,
			contains: []string{"[INF]", "error_code=KIN_SYNTAX", "error_line=3"},
		},
		{
			name:     "resource error logs at error",
			err:      kinerror.New("too deep").WithCode(kinerror.CodeKinResource),
			minLevel: LevelError,
			contains: []string{"[ERR]", "error_severity=high"},
		},
		{
			name:     "plain error",
			err:      errors.New("plain failure"),
			minLevel: LevelError,
			contains: []string{"[ERR]", "plain failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(tt.minLevel, FormatText)
			logger.LogError(tt.err)
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("Expected %q in %q", want, buf.String())
				}
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace, FormatText)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Error("Expected nil error to be ignored")
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace, FormatText)
	timer := logger.StartTimer("kin.parse").WithField("file", "a.kin")
	timer.Checkpoint("tokenized")
	if !timer.IsRunning() {
		t.Error("Expected timer to be running")
	}
	timer.Stop()
	timer.Stop()

	out := buf.String()
	if strings.Count(out, "kin.parse completed") != 1 {
		t.Errorf("Expected exactly one completion entry, got %q", out)
	}
	if !strings.Contains(out, "checkpoint=tokenized") || !strings.Contains(out, "file=a.kin") {
		t.Errorf("Expected checkpoint and fields, got %q", out)
	}

	buf.Reset()
	logger.StartTimer("kin.parse").StopWithError(errors.New("bad"))
	if !strings.Contains(buf.String(), "kin.parse failed") || !strings.Contains(buf.String(), `error="bad"`) {
		t.Errorf("Expected failure entry, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[WRN]") {
		t.Errorf("Expected failure at warn level by default, got %q", buf.String())
	}

	buf.Reset()
	logger.StartTimer("kin.parse").WithErrorLevel(LevelDebug).StopWithError(errors.New("bad"))
	if !strings.Contains(buf.String(), "[DBG]") || strings.Contains(buf.String(), "[WRN]") {
		t.Errorf("Expected failure at debug level, got %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.GetLevel() != LevelOff {
		t.Errorf("Expected LevelOff, got %v", logger.GetLevel())
	}
	logger.Error("dropped")
	logger.StartTimer("kin.parse").StopWithError(errors.New("bad"))
}

func TestLogger_ConcurrentWrites(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatText)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.WithField("worker", "w").Info("line")
		}()
	}
	wg.Wait()
	if got := strings.Count(buf.String(), "\n"); got != 20 {
		t.Errorf("Expected 20 complete lines, got %d", got)
	}
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom, _ := newBufferLogger(LevelDebug, FormatJSON)
	SetDefault(custom)
	if GetDefault() != custom {
		t.Error("Expected SetDefault to replace the default logger")
	}
	SetDefault(nil)
	if GetDefault() != custom {
		t.Error("Expected SetDefault(nil) to be ignored")
	}
}
