package infrastructure

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jaipal-12/villageconnect/internal/config"
	"github.com/jaipal-12/villageconnect/pkg/logger"
)

// NewDatabase opens the GORM connection backing the sqlite and postgres
// storage drivers. SQLite is the default: a single local file, matching
// the portal's process-local persistence model.
func NewDatabase(cfg *config.Config, l *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.NewGormLogger(l, cfg.Logger.SlowQuerySeconds, cfg.Logger.Level)
	gormCfg := &gorm.Config{Logger: gormLogger}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err = gorm.Open(sqlite.Open(cfg.Storage.SQLitePath), gormCfg)
	case config.DriverPostgres:
		db, err = gorm.Open(pgdriver.Open(cfg.Storage.DSN()), gormCfg)
	default:
		return nil, fmt.Errorf("storage driver %q does not use a database", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	l.Info("database connected successfully",
		zap.String("driver", cfg.Storage.Driver),
	)

	return db, nil
}

// CloseDatabase closes the database connection
func CloseDatabase(db *gorm.DB) error {
	if db == nil {
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	return nil
}
