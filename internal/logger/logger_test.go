package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	// Log a test message
	slog.Info("test message", "key", "value", "number", 42)

	// Parse JSON output
	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	// Verify base attributes
	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	// Verify message
	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	// Verify level
	if logEntry["level"] != "INFO" {
		t.Errorf("Expected level=INFO, got %v", logEntry["level"])
	}

	// Verify custom attributes
	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}

	if logEntry["number"] != float64(42) {
		t.Errorf("Expected number=42, got %v", logEntry["number"])
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := WithRequestID(context.Background(), "test-req-123")

	requestID := GetRequestID(ctx)
	if requestID != "test-req-123" {
		t.Errorf("Expected request_id=test-req-123, got %s", requestID)
	}

	// Test with logger
	log := FromContext(ctx)
	if log == nil {
		t.Error("Expected non-nil logger")
	}
}

func TestProfile(t *testing.T) {
	tests := []struct {
		env       string
		level     string
		format    string
		addSource bool
	}{
		{"prod", "info", "json", false},
		{"production", "info", "json", false},
		{"dev", "debug", "text", true},
		{"Development", "debug", "text", true},
		{"staging", "info", "text", false},
		{"test", "info", "text", false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			cfg := Profile(tt.env)
			if cfg.Level != tt.level {
				t.Errorf("Expected level %s, got %s", tt.level, cfg.Level)
			}
			if cfg.Format != tt.format {
				t.Errorf("Expected format %s, got %s", tt.format, cfg.Format)
			}
			if cfg.AddSource != tt.addSource {
				t.Errorf("Expected AddSource=%v, got %v", tt.addSource, cfg.AddSource)
			}
			if cfg.Environment != tt.env {
				t.Errorf("Expected environment %s, got %s", tt.env, cfg.Environment)
			}
			if cfg.ServiceName != DefaultServiceName {
				t.Errorf("Expected default service name, got %s", cfg.ServiceName)
			}
		})
	}
}

func TestOverride(t *testing.T) {
	cfg := Profile("prod").Override("warn", "", "miner", "")

	if cfg.Level != "warn" {
		t.Errorf("Expected explicit level to win, got %s", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Expected empty format to keep the profile's json, got %s", cfg.Format)
	}
	if cfg.ServiceName != "miner" {
		t.Errorf("Expected service name miner, got %s", cfg.ServiceName)
	}
	if cfg.Version != DefaultVersion {
		t.Errorf("Expected default version, got %s", cfg.Version)
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]string{"debug": "DEBUG", "warning": "WARN", "ERROR": "ERROR", "bogus": "INFO"}
	for in, want := range cases {
		if got := (Config{Level: in}).LogLevel().String(); got != want {
			t.Errorf("LogLevel(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestFromContextAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json", ServiceName: "svc"}, &buf)

	ctx := WithRequestID(context.Background(), GenerateRequestID())
	FromContext(ctx).Debug("with id")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry[AttrKeyRequestID] != GetRequestID(ctx) {
		t.Errorf("Expected request_id=%s, got %v", GetRequestID(ctx), logEntry[AttrKeyRequestID])
	}
}

func TestGetRequestIDMissing(t *testing.T) {
	if id := GetRequestID(context.Background()); id != "" {
		t.Errorf("Expected empty request id, got %q", id)
	}
}
