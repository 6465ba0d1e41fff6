package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"portfolio-server/config"
)

// NewClient connects to Redis with the configured pool settings. Returns
// nil when the audit log is disabled; callers treat a nil client as "skip
// persistence".
func NewClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		log.Info().Msg("Redis disabled in configuration - submission log off")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().Str("address", cfg.Address).Msg("Connected to Redis successfully")
	return rdb
}
