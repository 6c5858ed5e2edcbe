package infrastructure

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jaipal-12/villageconnect/internal/config"
	redisclient "github.com/jaipal-12/villageconnect/pkg/redis"
)

// NewRedisClient creates a Redis client for the rate limiter and the
// redis storage driver.
func NewRedisClient(cfg *config.Config, l *zap.Logger) (*redisclient.Client, error) {
	rdb, err := redisclient.NewClient(redisclient.Config{
		Host:        cfg.Redis.Host,
		Port:        cfg.Redis.Port,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		MinIdleConn: cfg.Redis.MinIdleConn,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
