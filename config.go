package main

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the optional config.yaml. Everything has a default; the app
// runs fine with no config file at all.
type Config struct {
	LogLevel            string `yaml:"log_level"`
	LogFile             string `yaml:"log_file"`
	SoundsDir           string `yaml:"sounds_dir"`
	RetryAttempts       int    `yaml:"retry_attempts"`
	RetryBackoffSeconds int    `yaml:"retry_backoff_seconds"`
	MetricsListenAddr   string `yaml:"metrics_listen_addr"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:            "info",
		LogFile:             defaultLogFile(),
		RetryAttempts:       defaultMaxAttempts,
		RetryBackoffSeconds: int(defaultBackoff / time.Second),
	}
}

// ParseConfig reads the config file at path. A missing file yields the
// defaults; a present but malformed file is an error.
func ParseConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		path = defaultConfigPath()
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(config); err != nil {
		return nil, err
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.RetryAttempts <= 0 {
		config.RetryAttempts = defaultMaxAttempts
	}
	if config.RetryBackoffSeconds <= 0 {
		config.RetryBackoffSeconds = int(defaultBackoff / time.Second)
	}
	return config, nil
}

// RetryBackoff returns the configured backoff as a duration.
func (c *Config) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffSeconds) * time.Second
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "keysound", "config.yaml")
}

func defaultLogFile() string {
	if runtime.GOOS != "darwin" {
		return ""
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Library", "Logs", "keysound", "keysound.log")
}
