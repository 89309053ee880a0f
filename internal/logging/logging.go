// Package logging builds the zerolog logger shared by the entrypoint, the
// demo script and the gorm query logger.
//
// Events below warn level are written to the standard output stream, warn
// and above to the error stream, so progress lines and errors can be
// redirected separately.
package logging

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/mrlokans/catalog/internal/config"
)

// New returns a logger writing console or JSON output according to cfg.
func New(cfg config.Log, stdout, stderr io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	out, errOut := stdout, stderr
	switch cfg.Format {
	case config.LogFormatConsole, "":
		out = zerolog.ConsoleWriter{Out: stdout, NoColor: true, TimeFormat: time.TimeOnly}
		errOut = zerolog.ConsoleWriter{Out: stderr, NoColor: true, TimeFormat: time.TimeOnly}
	case config.LogFormatJSON:
	default:
		return zerolog.Nop(), fmt.Errorf("unsupported log format %q", cfg.Format)
	}

	w := splitWriter{out: out, err: errOut, threshold: zerolog.WarnLevel}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

// splitWriter routes events at or above threshold to err.
type splitWriter struct {
	out       io.Writer
	err       io.Writer
	threshold zerolog.Level
}

func (w splitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w splitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level >= w.threshold && level != zerolog.NoLevel {
		return w.err.Write(p)
	}
	return w.out.Write(p)
}
