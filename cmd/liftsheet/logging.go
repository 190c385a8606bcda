package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vanderheijden86/liftsheet/pkg/config"
	"github.com/vanderheijden86/liftsheet/pkg/debug"
)

// setupLogging sends logrus output to a rotated file so the terminal only
// shows command output. Without a usable path, logs are discarded.
func setupLogging(cfg config.LogConfig, path string) (*logrus.Logger, io.Closer) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	switch strings.ToLower(cfg.Level) {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	if debug.Enabled() {
		log.SetLevel(logrus.DebugLevel)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return log, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return log, nil
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		Compress:   true,
	}
	log.SetOutput(sink)
	return log, sink
}
