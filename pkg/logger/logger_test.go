// pkg/logger/logger_test.go

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"TRACE", zapcore.DebugLevel},
		{"DEBUG", zapcore.DebugLevel},
		{"WARN", zapcore.WarnLevel},
		{"ERROR", zapcore.ErrorLevel},
		{"FATAL", zapcore.FatalLevel},
		{"DPANIC", zapcore.DPanicLevel},
		{"", zapcore.InfoLevel},
		{"nonsense", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), "input %q", tt.in)
	}
}

func TestEnsureLogPermissions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "pythia.log")

	require.NoError(t, EnsureLogPermissions(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFindWritableLogPathUsesStateDir(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)

	path, err := FindWritableLogPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(state, "pythia", "pythia.log"), path)
}

func TestGetLogFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pythia.log")

	w, err := GetLogFileWriter(path)
	require.NoError(t, err)

	_, err = w.Write([]byte("hello\n"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(data))
}

func TestColorizeLogLine(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"error goes red",
			`{"level":"ERROR","msg":"boom"}`,
			"\033[31m" + `{"level":"ERROR","msg":"boom"}` + "\033[0m",
		},
		{
			"short key fallback",
			`{"L":"INFO","M":"ok"}`,
			"\033[32m" + `{"L":"INFO","M":"ok"}` + "\033[0m",
		},
		{
			"non-json passes through",
			"plain text line",
			"plain text line",
		},
		{
			"unknown level passes through",
			`{"level":"NOTICE","msg":"hm"}`,
			`{"level":"NOTICE","msg":"hm"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColorizeLogLine(tt.in))
		})
	}
}

func TestFallbackLoggerIsUsable(t *testing.T) {
	l := NewFallbackLogger()
	require.NotNil(t, l)
	l.Info("fallback logger smoke test")
}
