// pkg/logger/inspect.go

package logger

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// ReadLogFile returns the contents of a given log file.
func ReadLogFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read log file %s: %w", path, err)
	}
	return string(data), nil
}

// TryReadLogFile validates that the path exists and is a regular file
// before reading it.
func TryReadLogFile(path string) (string, error) {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		zap.L().Warn("Invalid log file path", zap.String("path", path))
		return "", fmt.Errorf("invalid log file path: %s", path)
	}
	return ReadLogFile(path)
}

// ColorizeLogLine takes a raw JSON log line and applies ANSI color
// based on its level field. Non-JSON lines pass through unchanged.
func ColorizeLogLine(jsonLine string) string {
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(jsonLine), &entry); err != nil {
		return jsonLine
	}

	rawLevel, ok := entry["level"].(string)
	if !ok {
		if rawLevel, ok = entry["L"].(string); !ok {
			return jsonLine
		}
	}

	switch rawLevel {
	case "DEBUG":
		return "\033[90m" + jsonLine + "\033[0m"
	case "INFO":
		return "\033[32m" + jsonLine + "\033[0m"
	case "WARN", "WARNING":
		return "\033[33m" + jsonLine + "\033[0m"
	case "ERROR":
		return "\033[31m" + jsonLine + "\033[0m"
	case "FATAL", "PANIC", "DPANIC":
		return "\033[1;31m" + jsonLine + "\033[0m"
	default:
		return jsonLine
	}
}
