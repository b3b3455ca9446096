// Package logger builds the zerolog loggers used by the reproduce-race
// CLI and by tests that want to capture the harness's trial events.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogBuild accumulates logger options before Make assembles the logger.
type LogBuild struct {
	writer  io.Writer
	level   zerolog.Level
	console bool
}

// New returns a builder that logs JSON to stderr at the info level.
func New() *LogBuild {
	return &LogBuild{
		writer: os.Stderr,
		level:  zerolog.InfoLevel,
	}
}

// ToWriter directs log output to w.
func (build *LogBuild) ToWriter(w io.Writer) *LogBuild {
	build.writer = w
	return build
}

// AtLevel sets the minimum level emitted.
func (build *LogBuild) AtLevel(level zerolog.Level) *LogBuild {
	build.level = level
	return build
}

// Console renders human-readable console output instead of JSON lines.
func (build *LogBuild) Console() *LogBuild {
	build.console = true
	return build
}

// Make assembles the logger.
func (build *LogBuild) Make() zerolog.Logger {
	w := build.writer
	if build.console {
		w = zerolog.ConsoleWriter{Out: build.writer, TimeFormat: "15:04:05"}
	}
	return zerolog.New(w).Level(build.level).With().Timestamp().Logger()
}
