// Package logging configures the zerolog logger shared by the store and the
// CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AppName names the log directory and file under the XDG state home.
const AppName = "keepsake"

// verbosityLevels maps -v counts to levels; anything past the end is trace.
var verbosityLevels = []zerolog.Level{
	zerolog.WarnLevel,
	zerolog.InfoLevel,
	zerolog.DebugLevel,
}

// SetupLogger installs the global logger: a console writer on stderr and,
// when it can be opened, an append-only file under the XDG state home.
func SetupLogger(verbosity int) {
	SetVerbosity(verbosity)

	path := logFilePath()
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}}
	file, fileErr := openLogFile(path)
	if fileErr == nil {
		writers = append(writers, file)
	}

	ctx := zerolog.New(io.MultiWriter(writers...)).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	log.Logger = ctx.Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", path).Msg("Log file unavailable, logging to console only")
	}
	log.Debug().Int("verbosity", verbosity).Str("logFile", path).Msg("Logger ready")
}

// SetVerbosity changes the global level without touching the writers.
func SetVerbosity(verbosity int) {
	zerolog.SetGlobalLevel(levelFor(verbosity))
}

func levelFor(verbosity int) zerolog.Level {
	if verbosity < 0 {
		return verbosityLevels[0]
	}
	if verbosity >= len(verbosityLevels) {
		return zerolog.TraceLevel
	}
	return verbosityLevels[verbosity]
}

// GetLogger returns the global logger tagged with a component name.
func GetLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

func logFilePath() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogCommand records a CLI invocation.
func LogCommand(cmd string, args []string) {
	log.Debug().Str("command", cmd).Strs("args", args).Msg("Executing command")
}

// StartOperation marks the start of a store operation. The returned func
// records how it ended: failures at debug with the error, successes at
// trace, both with the elapsed time.
func StartOperation(logger zerolog.Logger, operation string) func(error) {
	start := time.Now()
	logger.Trace().Str("operation", operation).Msg("Operation started")

	return func(err error) {
		if err != nil {
			logger.Debug().Err(err).Str("operation", operation).Dur("duration", time.Since(start)).Msg("Operation failed")
			return
		}
		logger.Trace().Str("operation", operation).Dur("duration", time.Since(start)).Msg("Operation completed")
	}
}
