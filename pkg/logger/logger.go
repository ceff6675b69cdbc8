package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls the process-wide logrus setup.
type Config struct {
	Level      string // debug, info, warn, error
	OutputFile string // optional; empty means console only
	MaxSize    int    // MB per log file before rotation
	MaxBackups int    // rotated files to keep
	MaxAge     int    // days to keep rotated files
	Compress   bool
}

// Init configures the standard logrus logger. Call once at startup; loggers
// derived with logrus.WithField pick the settings up automatically.
func Init(config Config) error {
	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05",
	})

	if config.OutputFile == "" {
		logrus.SetOutput(os.Stdout)
		return nil
	}

	if dir := filepath.Dir(config.OutputFile); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}

	rotator := &lumberjack.Logger{
		Filename:   config.OutputFile,
		MaxSize:    orDefault(config.MaxSize, 50),
		MaxBackups: orDefault(config.MaxBackups, 5),
		MaxAge:     orDefault(config.MaxAge, 14),
		Compress:   config.Compress,
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, rotator))
	return nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
