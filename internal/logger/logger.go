// Package logger provides the global zerolog logger. Console output goes to
// stderr so it never mixes with anything a handed-off server writes to
// stdout; an optional rotating file sink can be layered on for hosts that
// keep entrypoint logs.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Log is the global logger instance.
	Log zerolog.Logger

	// fileWriter is the file output for logging (with rotation).
	fileWriter *lumberjack.Logger
)

// FileConfig holds configuration for the optional file sink.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

func (c *FileConfig) maxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

func (c *FileConfig) maxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 7
	}
	return c.MaxAgeDays
}

func (c *FileConfig) maxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

// Init initializes the global logger with console-only output.
func Init(debug bool) {
	Log = zerolog.New(consoleWriter()).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// InitWithFile initializes the logger with an additional rotating file sink.
// Console keeps the human-readable format; the file gets JSON lines.
func InitWithFile(debug bool, cfg *FileConfig) error {
	if cfg == nil || cfg.Path == "" {
		Init(debug)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.maxSizeMB(),
		MaxAge:     cfg.maxAgeDays(),
		MaxBackups: cfg.maxBackups(),
		LocalTime:  true,
	}

	multi := io.MultiWriter(consoleWriter(), fileWriter)
	Log = zerolog.New(multi).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseFileWriter closes the file writer if it exists. Call on shutdown;
// on the exec handoff path the descriptor is gone anyway, so this only
// matters for non-exec exits.
func CloseFileWriter() error {
	if fileWriter != nil {
		err := fileWriter.Close()
		fileWriter = nil
		return err
	}
	return nil
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// Debug logs a debug message.
func Debug() *zerolog.Event { return Log.Debug() }

// Info logs an info message.
func Info() *zerolog.Event { return Log.Info() }

// Warn logs a warning message.
func Warn() *zerolog.Event { return Log.Warn() }

// Error logs an error message.
func Error() *zerolog.Event { return Log.Error() }

// Fatal logs a fatal message and exits.
func Fatal() *zerolog.Event { return Log.Fatal() }
