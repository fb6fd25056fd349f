package db

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/config"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/logger"
	"github.com/snnyvrz/shelfshare/apps/authors-api/internal/model"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultDelayBetweenTry = 2 * time.Second

func dialector(cfg *config.Config) (gorm.Dialector, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("no sql dialect for driver %q", cfg.DBDriver)
	}
}

// ConnectWithRetry opens the configured database and pings it until it
// answers, cfg.DBMaxAttempts times at most.
func ConnectWithRetry(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	gcfg := &gorm.Config{
		Logger:         logger.NewGormLogger(log),
		TranslateError: true,
	}

	var db *gorm.DB
	for attempt := 1; attempt <= cfg.DBMaxAttempts; attempt++ {
		db, err = gorm.Open(dial, gcfg)
		if err == nil {
			sqlDB, err2 := db.DB()
			if err2 == nil {
				pingErr := sqlDB.PingContext(ctx)
				if pingErr == nil {
					log.Info().Str("driver", cfg.DBDriver).Int("attempt", attempt).Msg("database connected")
					return db, nil
				}
				err = pingErr
			} else {
				err = err2
			}
		}

		log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", cfg.DBMaxAttempts).Msg("db not ready")

		if attempt == cfg.DBMaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(defaultDelayBetweenTry):
		}
	}

	return nil, fmt.Errorf("could not connect to db after %d attempts: %w", cfg.DBMaxAttempts, err)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.AuthorRecord{}, &model.Book{})
}
