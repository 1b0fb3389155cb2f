package shared

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/zerolog"
)

// LogFlags are the logging options shared by every subcommand.
type LogFlags struct {
	Debug    bool `help:"Enable debug logging"`
	JSONLogs bool `name:"json-logs" help:"Emit structured JSON logs instead of console output"`
}

// Zerolog configures the command-level logger writing to w.
func (f LogFlags) Zerolog(w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if f.Debug {
		level = zerolog.DebugLevel
	}

	if f.JSONLogs {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		return zerolog.New(w).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Charm configures the logger handed to internal packages.
func (f LogFlags) Charm(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if f.Debug {
		level = log.DebugLevel
	}
	opts := log.Options{Level: level, ReportTimestamp: true}
	if f.JSONLogs {
		opts.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, opts)
}
