package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/julianstephens/adhan/internal/constants"
)

var (
	// Logger is the global logger instance
	Logger *log.Logger
)

// Config holds logger configuration
type Config struct {
	Debug bool
	// LogDir receives adhan.log; a leading "~" expands to the home directory
	LogDir string
	// Console tees debug output to stderr. The TUI turns this off because
	// stderr shares the terminal with the alt screen.
	Console bool
}

// Init initializes the global logger with the given configuration
func Init(cfg Config) error {
	logDir, err := ExpandHome(cfg.LogDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.AppName+".log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	level := log.WarnLevel
	if cfg.Debug {
		level = log.DebugLevel
	}

	var writer io.Writer = fileWriter
	if cfg.Debug && cfg.Console {
		writer = io.MultiWriter(os.Stderr, fileWriter)
	}

	Logger = log.NewWithOptions(writer, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          constants.AppName,
	})

	return nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Debug(msg, keyvals...)
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Info(msg, keyvals...)
	}
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Warn(msg, keyvals...)
	}
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Error(msg, keyvals...)
	}
}

// Fatal logs a fatal error and exits
func Fatal(msg string, keyvals ...interface{}) {
	if Logger != nil {
		Logger.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
