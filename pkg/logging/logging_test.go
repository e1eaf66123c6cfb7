package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

// setStateHome points the XDG state home at dir.
func setStateHome(t *testing.T, dir string) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

// captureLogs routes the global logger into a buffer at trace level.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previousLogger, previousLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previousLogger
		zerolog.SetGlobalLevel(previousLevel)
	})
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	log.Logger = zerolog.New(&buf)
	return &buf
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity is trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureLogs(t)
			dir := t.TempDir()
			setStateHome(t, dir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			_, err := os.Stat(filepath.Join(dir, "keepsake", "keepsake.log"))
			assert.NoError(t, err)
		})
	}
}

func TestSetVerbosity(t *testing.T) {
	captureLogs(t)

	SetVerbosity(2)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	SetVerbosity(-1)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestLogFilePath(t *testing.T) {
	setStateHome(t, "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "keepsake", "keepsake.log"), logFilePath())
}

func TestComponentLoggers(t *testing.T) {
	buf := captureLogs(t)

	logger := GetLogger("datastore")
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), `"component":"datastore"`)

	buf.Reset()
	LogCommand("counter", []string{"incr"})
	assert.Contains(t, buf.String(), "Executing command")
	assert.Contains(t, buf.String(), "incr")
}

func TestStartOperation(t *testing.T) {
	buf := captureLogs(t)

	StartOperation(log.Logger, "read")(nil)
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "duration")

	buf.Reset()
	StartOperation(log.Logger, "write")(errors.New("disk full"))
	assert.Contains(t, buf.String(), "Operation failed")
	assert.Contains(t, buf.String(), "disk full")
}
