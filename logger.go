package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// InitLogger configures the logger from config: level, and an optional log
// file next to stdout. A broken log file is not fatal.
func InitLogger(config *Config) {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		log.Warnf("Invalid log level '%s', defaulting to 'info'", config.LogLevel)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if config.LogFile == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(config.LogFile), 0755); err != nil {
		log.Warnf("Cannot create log directory: %v", err)
		return
	}
	f, err := os.OpenFile(config.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		log.Warnf("Cannot open log file %s: %v", config.LogFile, err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
}
