package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// SetupLogger configures the global zerolog logger to write to stderr.
func SetupLogger(level, format string) error {
	return setupLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level, format)
}

func setupLogger(out io.Writer, isTerminal bool, level, format string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	console := format == "console" || (format == "auto" && isTerminal)
	if console {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly, NoColor: !isTerminal}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}
