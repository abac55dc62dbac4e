package redis

import (
	"context"
	"errors"
	"fmt"

	"hotel/infras/otel"
	"hotel/shared/repository"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	otelScopeName       = "storage.redis"
	otelKeyAttributeKey = "redis.key"
)

// Backend stores every collection document under "<prefix>:<name>" without expiry.
type Backend struct {
	client *goRedis.Client
	prefix string
	otel   otel.Otel
}

func NewBackend(client *goRedis.Client, prefix string, otl otel.Otel) *Backend {
	return &Backend{
		client: client,
		prefix: prefix,
		otel:   otl,
	}
}

func (b *Backend) key(name string) string {
	if b.prefix == "" {
		return name
	}

	return b.prefix + ":" + name
}

// Read implements repository.Backend.
func (b *Backend) Read(ctx context.Context, name string) (data []byte, err error) {
	ctx, scope := b.otel.NewScope(ctx, otelScopeName, otelScopeName+".Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := b.key(name)
	scope.SetAttribute(otelKeyAttributeKey, key)

	data, err = b.client.Get(ctx, key).Bytes()
	if errors.Is(err, goRedis.Nil) {
		return nil, repository.ErrNotExist
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get collection")

		return nil, fmt.Errorf("failed to get collection: %w", err)
	}

	return data, nil
}

// Write implements repository.Backend.
func (b *Backend) Write(ctx context.Context, name string, data []byte) (err error) {
	ctx, scope := b.otel.NewScope(ctx, otelScopeName, otelScopeName+".Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key := b.key(name)
	scope.SetAttribute(otelKeyAttributeKey, key)

	if err = b.client.Set(ctx, key, data, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to set collection")

		return fmt.Errorf("failed to set collection: %w", err)
	}

	log.Debug().Str("key", key).Int("bytes", len(data)).Msg("collection saved")

	return nil
}
