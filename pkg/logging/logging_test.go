package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLevel(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLevel, ConsoleLevel(tt.verbosity))
		})
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "state", "waypoint.log")
	t.Setenv("WAYPOINT_LOG_FILE", logPath)

	SetupLoggerWithOutput(0, &bytes.Buffer{})

	_, err := os.Stat(logPath)
	assert.NoError(t, err, "log file should be created at %s", logPath)
	assert.Equal(t, HistoryLevel, zerolog.GlobalLevel())
}

func TestSetupLoggerRaisesGlobalLevelForVerboseRuns(t *testing.T) {
	t.Setenv("WAYPOINT_LOG_FILE", filepath.Join(t.TempDir(), "waypoint.log"))

	SetupLoggerWithOutput(3, &bytes.Buffer{})

	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestHistoryIsWrittenBelowConsoleLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "waypoint.log")
	t.Setenv("WAYPOINT_LOG_FILE", logPath)
	console := &bytes.Buffer{}

	SetupLoggerWithOutput(0, console)
	logger := GetLogger("shortcuts")
	logger.Info().Str("key", "d").Msg("Shortcut added")
	log.Warn().Msg("visible warning")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"key":"d"`)
	assert.Contains(t, string(data), `"component":"shortcuts"`)

	assert.NotContains(t, console.String(), "Shortcut added")
	assert.True(t, strings.Contains(console.String(), "visible warning"))
}

func TestLogFileIsAppendOnly(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "waypoint.log")
	t.Setenv("WAYPOINT_LOG_FILE", logPath)

	SetupLoggerWithOutput(0, &bytes.Buffer{})
	log.Info().Msg("first run")
	SetupLoggerWithOutput(0, &bytes.Buffer{})
	log.Info().Msg("second run")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestSetupLoggerFallsBackToConsole(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	t.Setenv("WAYPOINT_LOG_FILE", filepath.Join(blocker, "waypoint.log"))
	console := &bytes.Buffer{}

	SetupLoggerWithOutput(0, console)

	assert.Contains(t, console.String(), "Failed to create log file")
}

func TestLogOperationStart(t *testing.T) {
	t.Setenv("WAYPOINT_LOG_FILE", filepath.Join(t.TempDir(), "waypoint.log"))
	console := &bytes.Buffer{}
	SetupLoggerWithOutput(2, console)

	done := LogOperationStart(GetLogger("test"), "rewrite")
	done()

	assert.Contains(t, console.String(), "Operation completed")
}
