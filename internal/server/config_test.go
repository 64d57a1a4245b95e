package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urbancost/parkcost/pkg/constants"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != constants.DefaultServerAddress {
		t.Errorf("Address = %q, expected %q", cfg.Address, constants.DefaultServerAddress)
	}
	if cfg.RequestSizeBytes() != constants.DefaultMaxRequestSizeBytes {
		t.Errorf("RequestSizeBytes = %d, expected %d", cfg.RequestSizeBytes(), constants.DefaultMaxRequestSizeBytes)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	content := "address: \":9090\"\nmaxRequestSize: 1M\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Address != ":9090" {
		t.Errorf("Address = %q, expected :9090", cfg.Address)
	}
	if cfg.RequestSizeBytes() != 1024*1024 {
		t.Errorf("RequestSizeBytes = %d, expected 1048576", cfg.RequestSizeBytes())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", cfg.Logging.Level)
	}
}

func TestLoadConfigRejectsBadLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(path, []byte("logging:\n  level: verbose\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() expected error for unknown log level")
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int64
		wantError bool
	}{
		{"Plain bytes", "1024", 1024, false},
		{"Kilobytes", "256K", 256 * 1024, false},
		{"Kilobytes long", "256KB", 256 * 1024, false},
		{"Megabytes", "10M", 10 * 1024 * 1024, false},
		{"Gigabytes", "1G", 1024 * 1024 * 1024, false},
		{"Empty defaults", "", constants.DefaultMaxRequestSizeBytes, false},
		{"Bad unit", "10T", 0, true},
		{"No digits", "MB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSize(tt.input)
			if tt.wantError {
				if err == nil {
					t.Errorf("ParseSize(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSize(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseSize(%q) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
