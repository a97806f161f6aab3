package infra

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"reviewecho/internal/models/db_models"
)

// InitDatabase opens the store named by databaseURL. A postgres:// DSN
// selects the Postgres driver; anything else is treated as a SQLite file
// path (the default is a local reviews.db next to the binary).
func InitDatabase(databaseURL string, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
		log.Info().Str("driver", "postgres").Msg("connecting to database")
	} else {
		dialector = sqlite.Open(databaseURL)
		log.Info().Str("driver", "sqlite").Str("path", databaseURL).Msg("connecting to database")
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	// Idempotent schema init, safe on every process start.
	if err := db.AutoMigrate(&db_models.Review{}); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return db, nil
}

func CloseDatabase(db *gorm.DB, log zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("error getting database instance")
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("error closing database connection")
	} else {
		log.Info().Msg("database connection closed")
	}
}
