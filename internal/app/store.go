package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/simaogato/lifedash-backend/internal/adapter/repository/memory"
	"github.com/simaogato/lifedash-backend/internal/adapter/repository/postgres"
	"github.com/simaogato/lifedash-backend/internal/config"
	"github.com/simaogato/lifedash-backend/internal/domain"
)

const (
	dbConnectAttempts = 10
	dbConnectWait     = 2 * time.Second
)

// OpenStore connects the configured repository backend and migrates it.
// The returned func releases the connection.
func OpenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (domain.Repositories, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Warn().Msg("Using in-memory store, data is lost on exit")
		return memory.NewStore().Repositories(), func() {}, nil
	}

	db, err := postgres.Connect(ctx, cfg.DBConnStr, dbConnectAttempts, dbConnectWait)
	if err != nil {
		return domain.Repositories{}, nil, err
	}
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return domain.Repositories{}, nil, err
	}
	log.Debug().Msg("Database ready")

	return db.Repositories(), func() {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}, nil
}
