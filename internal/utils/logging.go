package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupZerolog routes everything through a console writer and applies
// LOG_LEVEL when set (trace, debug, info, warn, error).
func SetupZerolog() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "2006-01-02T15:04:05.000-07:00", // Fake news, BUT we need milliseconds to debug stuff.
	}).With().Timestamp().Logger()
	// https://github.com/rs/zerolog/issues/114
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		level, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			log.Warn().Err(err).Str("log_level", levelStr).Msg("cannot parse LOG_LEVEL, keeping the default")
			return
		}
		zerolog.SetGlobalLevel(level)
	}
}
