package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yash15112001/texttool/internal/config"
)

// Setup points the global zerolog logger at w with the configured level and format.
func Setup(cfg config.Config, w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	out := w
	if cfg.LogFormat != config.LogFormatJSON {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}

	log.Logger = zerolog.New(out).Level(cfg.LogLevel).With().Timestamp().Logger()
}
