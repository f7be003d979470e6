package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/GregMSThompson/dashboard-layout/internal/config"
)

// InitRedis connects to Redis and verifies the connection with a PING.
func InitRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}
	return client, nil
}
