package storage

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/helper"
	"hotel/infras/filestore"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/shared/repository"

	"github.com/rs/zerolog/log"
)

// New picks the persistence backend named by STORAGE_BACKEND.
func New(cfg *config.Config, codec repository.Codec, otl otel.Otel) (repository.Backend, error) {
	switch cfg.Storage.Backend {
	case config.StorageBackendFile, "":
		return filestore.NewFromConfig(cfg, codec), nil
	case config.StorageBackendMemory:
		log.Warn().Msg("Using in-memory storage, data is lost on exit")

		return repository.NewMemoryBackend(), nil
	case config.StorageBackendRedis:
		client, err := redis.Connect(context.Background(), cfg)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return redis.NewBackend(client, cfg.Storage.Prefix, otl), nil
	case config.StorageBackendPostgres:
		if cfg.DB.Postgres.AutoMigrate {
			if err := helper.Migrate(cfg, helper.DirectionUp); err != nil {
				return nil, fmt.Errorf("failed to migrate storage schema: %w", err)
			}
		}

		db, err := postgres.Connect(cfg)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		return postgres.NewBackend(db, otl), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Storage.Backend)
	}
}

func NewCodec(cfg *config.Config) (repository.Codec, error) {
	return repository.NewCodec(cfg.Storage.Format) //nolint:wrapcheck
}
