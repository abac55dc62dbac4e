package redis

import (
	"context"
	"fmt"

	"hotel/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Connect opens the primary redis client and pings it once.
func Connect(ctx context.Context, cfg *config.Config) (*goRedis.Client, error) {
	primary := cfg.Cache.Redis.Primary

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     cfg.RedisAddr(),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.RedisAddr(), err)
	}

	log.Info().Str("addr", cfg.RedisAddr()).Int("db", primary.DB).Msg("Connected to redis")

	return client, nil
}
