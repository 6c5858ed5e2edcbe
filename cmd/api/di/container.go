package di

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaipal-12/villageconnect/cmd/api/infrastructure"
	"github.com/jaipal-12/villageconnect/internal/adapter/cache"
	ginhandler "github.com/jaipal-12/villageconnect/internal/adapter/gin/handler"
	"github.com/jaipal-12/villageconnect/internal/adapter/gin/middleware"
	"github.com/jaipal-12/villageconnect/internal/adapter/kv"
	"github.com/jaipal-12/villageconnect/internal/adapter/kv/cached"
	"github.com/jaipal-12/villageconnect/internal/adapter/kv/gormkv"
	"github.com/jaipal-12/villageconnect/internal/adapter/kv/rediskv"
	"github.com/jaipal-12/villageconnect/internal/adapter/repository/static"
	"github.com/jaipal-12/villageconnect/internal/config"
	"github.com/jaipal-12/villageconnect/internal/usecase/catalog"
	"github.com/jaipal-12/villageconnect/internal/usecase/dashboard"
	"github.com/jaipal-12/villageconnect/internal/usecase/session"
	redisclient "github.com/jaipal-12/villageconnect/pkg/redis"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	DB          *gorm.DB
	RedisClient *redisclient.Client
	Storage     kv.Store
	Sessions    *session.Store
	Browser     *catalog.Browser
	Dashboard   *dashboard.Usecase
	RateLimiter *middleware.RateLimiter

	SessionHandler *ginhandler.SessionHandler
	CatalogHandler *ginhandler.CatalogHandler
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	c := &Container{Config: cfg, Logger: l}

	// Redis serves the rate limiter, the storage cache, and optionally
	// durable storage itself
	if cfg.RateLimit.Enabled || cfg.Storage.CacheEnabled || cfg.Storage.Driver == config.DriverRedis {
		rdb, err := infrastructure.NewRedisClient(cfg, l)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Redis: %w", err)
		}
		c.RedisClient = rdb
	}

	storage, err := c.newStorage()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	c.Storage = storage

	catalogRepo := static.NewCatalogRepository()

	c.Sessions = session.New(c.Storage, l)
	c.Browser = catalog.NewBrowser(catalogRepo, l)
	c.Dashboard = dashboard.New(catalogRepo, l)

	c.RateLimiter = middleware.NewRateLimiter(
		c.redisOrNil(),
		middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstCapacity:     cfg.RateLimit.BurstCapacity,
			Enabled:           cfg.RateLimit.Enabled,
		},
		l,
	)

	c.SessionHandler = ginhandler.NewSessionHandler(c.Sessions, l)
	c.CatalogHandler = ginhandler.NewCatalogHandler(c.Browser, c.Dashboard, c.Sessions, l)

	return c, nil
}

// newStorage builds the durable key-value store for the configured driver.
func (c *Container) newStorage() (kv.Store, error) {
	switch c.Config.Storage.Driver {
	case config.DriverSQLite, config.DriverPostgres:
		db, err := infrastructure.NewDatabase(c.Config, c.Logger)
		if err != nil {
			return nil, err
		}
		c.DB = db
		store, err := gormkv.NewStore(db, c.Logger)
		if err != nil {
			return nil, err
		}
		if c.Config.Storage.CacheEnabled {
			ttl := time.Duration(c.Config.Storage.CacheTTLSeconds) * time.Second
			recordCache := cache.NewRedisRecordCache(c.redisOrNil(), ttl, c.Logger)
			return cached.NewStore(store, recordCache, c.Logger), nil
		}
		return store, nil
	case config.DriverRedis:
		return rediskv.NewStore(c.RedisClient.Client, c.Logger), nil
	case config.DriverMemory:
		c.Logger.Warn("using in-memory storage, state is lost on restart")
		return kv.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", c.Config.Storage.Driver)
	}
}

// redisOrNil unwraps the raw client for consumers that tolerate a nil
// Redis connection.
func (c *Container) redisOrNil() *redis.Client {
	if c.RedisClient == nil {
		return nil
	}
	return c.RedisClient.Client
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	var errs []error

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close Redis: %w", err))
		}
	}

	if c.DB != nil {
		if err := infrastructure.CloseDatabase(c.DB); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("container close errors: %v", errs)
	}

	return nil
}
