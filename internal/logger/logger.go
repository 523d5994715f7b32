package logger

import (
	"os"
	"time"

	"marketplace/internal/config"

	"github.com/rs/zerolog"
)

// New はアプリ共通のzerologを作る。devはコンソール、それ以外はJSON。
func New(cfg config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.GoEnv == "dev" {
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		logger = zerolog.New(out)
	} else {
		logger = zerolog.New(os.Stderr)
	}

	return logger.Level(level).With().Timestamp().Str("service", "marketplace").Logger()
}
