package config

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"alfredoptarigan/resume-analyzer/internal/logger"
)

// InitRedis connects the job store. It returns (nil, nil) when Redis is disabled.
func InitRedis(cfg *Config) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		logger.Info().Msg("Redis disabled, async jobs are kept in memory")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Msg("✅ Redis connected successfully")
	return client, nil
}
