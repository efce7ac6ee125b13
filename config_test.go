package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseConfigMissingFile(t *testing.T) {
	config, err := ParseConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing config should not be an error: %v", err)
	}
	if config.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", config.LogLevel)
	}
	if config.RetryAttempts != defaultMaxAttempts {
		t.Errorf("RetryAttempts = %d, want %d", config.RetryAttempts, defaultMaxAttempts)
	}
	if config.RetryBackoff() != defaultBackoff {
		t.Errorf("RetryBackoff = %v, want %v", config.RetryBackoff(), defaultBackoff)
	}
}

func TestParseConfigAllFields(t *testing.T) {
	path := writeConfigFile(t, `
log_level: debug
log_file: /tmp/keysound.log
sounds_dir: /tmp/sounds
retry_attempts: 5
retry_backoff_seconds: 1
metrics_listen_addr: "127.0.0.1:9090"
`)
	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if config.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", config.LogLevel)
	}
	if config.LogFile != "/tmp/keysound.log" {
		t.Errorf("LogFile = %q", config.LogFile)
	}
	if config.SoundsDir != "/tmp/sounds" {
		t.Errorf("SoundsDir = %q", config.SoundsDir)
	}
	if config.RetryAttempts != 5 {
		t.Errorf("RetryAttempts = %d", config.RetryAttempts)
	}
	if config.RetryBackoff() != time.Second {
		t.Errorf("RetryBackoff = %v", config.RetryBackoff())
	}
	if config.MetricsListenAddr != "127.0.0.1:9090" {
		t.Errorf("MetricsListenAddr = %q", config.MetricsListenAddr)
	}
}

func TestParseConfigPartialFile(t *testing.T) {
	path := writeConfigFile(t, "sounds_dir: /opt/clips\n")
	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if config.SoundsDir != "/opt/clips" {
		t.Errorf("SoundsDir = %q", config.SoundsDir)
	}
	if config.RetryAttempts != defaultMaxAttempts {
		t.Errorf("absent retry_attempts should keep default, got %d", config.RetryAttempts)
	}
}

func TestParseConfigZeroRetryValues(t *testing.T) {
	path := writeConfigFile(t, "retry_attempts: 0\nretry_backoff_seconds: -3\n")
	config, err := ParseConfig(path)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if config.RetryAttempts != defaultMaxAttempts {
		t.Errorf("RetryAttempts = %d, want default %d", config.RetryAttempts, defaultMaxAttempts)
	}
	if config.RetryBackoff() != defaultBackoff {
		t.Errorf("RetryBackoff = %v, want default %v", config.RetryBackoff(), defaultBackoff)
	}
}

func TestParseConfigMalformed(t *testing.T) {
	path := writeConfigFile(t, "log_level: [unclosed\n")
	if _, err := ParseConfig(path); err == nil {
		t.Error("malformed config should be an error")
	}
}
