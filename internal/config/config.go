package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Storage driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig
	Storage   StorageConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Logger    LoggerConfig
}

// AppConfig holds configuration for the application server
type AppConfig struct {
	HTTPPort               string
	ShutdownTimeoutSeconds int
}

// StorageConfig selects and configures the durable key-value backend.
type StorageConfig struct {
	Driver     string // sqlite, postgres, redis, or memory
	SQLitePath string // database file for the sqlite driver
	Host       string // postgres driver
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string

	CacheEnabled    bool // read-through Redis cache over sqlite/postgres
	CacheTTLSeconds int
}

// RedisConfig holds connection settings for Redis, used by the rate
// limiter and the redis storage driver.
type RedisConfig struct {
	Host        string
	Port        string
	Password    string
	DB          int
	PoolSize    int
	MinIdleConn int
}

// RateLimitConfig holds configuration for the HTTP rate limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstCapacity     int
	Enabled           bool
}

// LoggerConfig holds configuration for the logger
type LoggerConfig struct {
	Level            string
	Format           string
	OutputPath       string
	SlowQuerySeconds float64
	EnableSampling   bool
	ServiceName      string
	ServiceVersion   string
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (*Config, error) {
	setDefaults()

	viper.AddConfigPath(path)
	viper.SetConfigName("app") // Look for app.env
	viper.SetConfigType("env")

	viper.AutomaticEnv() // Read from environment variables

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is okay if we have env vars
	}

	var config Config

	config.App.HTTPPort = viper.GetString("HTTP_PORT")
	config.App.ShutdownTimeoutSeconds = viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")

	config.Storage.Driver = viper.GetString("STORAGE_DRIVER")
	config.Storage.SQLitePath = viper.GetString("SQLITE_PATH")
	config.Storage.Host = viper.GetString("DB_HOST")
	config.Storage.Port = viper.GetString("DB_PORT")
	config.Storage.User = viper.GetString("DB_USER")
	config.Storage.Password = viper.GetString("DB_PASSWORD")
	config.Storage.Name = viper.GetString("DB_NAME")
	config.Storage.SSLMode = viper.GetString("DB_SSLMODE")
	config.Storage.CacheEnabled = viper.GetBool("STORAGE_CACHE_ENABLED")
	config.Storage.CacheTTLSeconds = viper.GetInt("STORAGE_CACHE_TTL_SECONDS")

	config.Redis.Host = viper.GetString("REDIS_HOST")
	config.Redis.Port = viper.GetString("REDIS_PORT")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")
	config.Redis.PoolSize = viper.GetInt("REDIS_POOL_SIZE")
	config.Redis.MinIdleConn = viper.GetInt("REDIS_MIN_IDLE_CONN")

	config.RateLimit.RequestsPerSecond = viper.GetFloat64("RATE_LIMIT_RPS")
	config.RateLimit.BurstCapacity = viper.GetInt("RATE_LIMIT_BURST")
	config.RateLimit.Enabled = viper.GetBool("RATE_LIMIT_ENABLED")

	config.Logger.Level = viper.GetString("LOG_LEVEL")
	config.Logger.Format = viper.GetString("LOG_FORMAT")
	config.Logger.OutputPath = viper.GetString("LOG_OUTPUT_PATH")
	config.Logger.SlowQuerySeconds = viper.GetFloat64("LOG_SLOW_QUERY_SECONDS")
	config.Logger.EnableSampling = viper.GetBool("LOG_ENABLE_SAMPLING")
	config.Logger.ServiceName = viper.GetString("SERVICE_NAME")
	config.Logger.ServiceVersion = viper.GetString("SERVICE_VERSION")

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("HTTP_PORT", "8080")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)

	viper.SetDefault("STORAGE_DRIVER", DriverSQLite)
	viper.SetDefault("SQLITE_PATH", "villageconnect.db")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "villageconnect")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("STORAGE_CACHE_ENABLED", false)
	viper.SetDefault("STORAGE_CACHE_TTL_SECONDS", 300)

	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_POOL_SIZE", 10)
	viper.SetDefault("REDIS_MIN_IDLE_CONN", 2)

	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)
	viper.SetDefault("RATE_LIMIT_ENABLED", false)

	env := viper.GetString("APP_ENV")
	if env == "production" {
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("LOG_FORMAT", "json")
		viper.SetDefault("LOG_ENABLE_SAMPLING", true)
	} else {
		viper.SetDefault("LOG_LEVEL", "debug")
		viper.SetDefault("LOG_FORMAT", "console")
		viper.SetDefault("LOG_ENABLE_SAMPLING", false)
	}
	viper.SetDefault("LOG_OUTPUT_PATH", "stdout")
	viper.SetDefault("LOG_SLOW_QUERY_SECONDS", 0.2)
	viper.SetDefault("SERVICE_NAME", "villageconnect")
	viper.SetDefault("SERVICE_VERSION", "1.0.0")
}

// Validate checks the configuration for unusable combinations before any
// dependency is initialized.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set for the sqlite driver")
		}
	case DriverPostgres:
		if c.Storage.Host == "" || c.Storage.Name == "" {
			return fmt.Errorf("DB_HOST and DB_NAME must be set for the postgres driver")
		}
	case DriverRedis:
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST must be set for the redis driver")
		}
	case DriverMemory:
		// Nothing to check; state is lost on restart, which the session
		// store tolerates.
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	if c.Storage.CacheEnabled {
		if c.Storage.Driver != DriverSQLite && c.Storage.Driver != DriverPostgres {
			return fmt.Errorf("STORAGE_CACHE_ENABLED requires the sqlite or postgres driver")
		}
		if c.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST must be set when the storage cache is enabled")
		}
		if c.Storage.CacheTTLSeconds <= 0 {
			return fmt.Errorf("STORAGE_CACHE_TTL_SECONDS must be positive when the storage cache is enabled")
		}
	}

	if c.RateLimit.Enabled && c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive when rate limiting is enabled")
	}

	if c.App.HTTPPort == "" {
		return fmt.Errorf("HTTP_PORT must be set")
	}

	return nil
}

// DSN returns the PostgreSQL Data Source Name
func (c *StorageConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}
