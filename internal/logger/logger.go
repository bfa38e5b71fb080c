// Package logger configures the process-wide log sink. Haven is a
// consumer-facing tool, so records go to a rotating file under the config
// directory instead of the terminal; the debug flag mirrors them to stderr.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation policy for the on-disk log file.
const (
	maxSizeMB  = 10
	maxBackups = 3
	maxAgeDays = 28
)

var global *log.Logger

// Init sets up the shared logger, writing to <configDir>/logs/haven.log.
// Debug raises the level from warn to debug, echoes every record to stderr,
// and annotates records with their call site.
func Init(configDir string, debug bool) error {
	dir := filepath.Join(configDir, "logs")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	var sink io.Writer = &lumberjack.Logger{
		Filename:   filepath.Join(dir, "haven.log"),
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
		Compress:   true,
	}

	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
		sink = io.MultiWriter(os.Stderr, sink)
	}

	global = log.NewWithOptions(sink, log.Options{
		Level:           level,
		Prefix:          "haven",
		ReportTimestamp: true,
		ReportCaller:    debug,
	})
	return nil
}

// The level helpers are safe to call before Init; records are dropped until a
// sink exists. This keeps library packages loggable from tests that never
// configure logging.

func Debug(msg string, keyvals ...any) {
	if global != nil {
		global.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...any) {
	if global != nil {
		global.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...any) {
	if global != nil {
		global.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...any) {
	if global != nil {
		global.Error(msg, keyvals...)
	}
}
