package db_fx

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"reviewecho/internal/config"
	"reviewecho/internal/infra"
)

var Module = fx.Provide(
	provideDB,
)

func provideDB(lc fx.Lifecycle, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := infra.InitDatabase(cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.CloseDatabase(db, log)
			return nil
		},
	})

	return db, nil
}
