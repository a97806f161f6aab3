package config_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"reviewecho/internal/config"
	"reviewecho/pkg/logger"
)

var Module = fx.Provide(
	config.Load,
	provideLogger,
)

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logger.New(cfg.LogLevel)
}
