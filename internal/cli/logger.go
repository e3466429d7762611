package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the command logger. Console output is human readable;
// json writes one object per line.
func NewLogger(w io.Writer, c LogConfig) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if c.Level != "" {
		l, err := zerolog.ParseLevel(c.Level)
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
		}
		level = l
	}

	var out io.Writer
	switch c.Format {
	case "", logConsole:
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	case logJSON:
		out = w
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", c.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("app", "edifact").Logger(), nil
}
