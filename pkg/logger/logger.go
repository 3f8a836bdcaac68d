// pkg/logger/logger.go

// Package logger owns the process-wide zap logger: human console
// rendering on stderr, JSON file output for the record, and graceful
// fallbacks when no log path is writable. Stdout stays reserved for
// generated wordlists.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log *zap.Logger

// L returns the global logger, initializing the console fallback on
// first use.
func L() *zap.Logger {
	if log == nil {
		InitFallback()
	}
	return log
}

// SetLogger replaces the global logger.
func SetLogger(l *zap.Logger) {
	log = l
}

// Sync flushes buffered entries. Call before the process exits; sync
// errors on terminal sinks are expected and ignored.
func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}

// ParseLogLevel maps the LOG_LEVEL environment value to a zap level,
// defaulting to Info.
func ParseLogLevel(level string) zapcore.Level {
	switch level {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "WARN":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	case "DPANIC":
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}
