// Package db opens the gorm connection holding per-client session entries
// and provides the gorm-backed session storage.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/smart-order/internal/config"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"

	defaultSQLitePath = "smart-order.db"
	connectAttempts   = 10
)

// Open connects to the configured storage. Postgres connections are
// retried to give a starting database container time to accept them.
func Open(cfg config.StorageConfig, debug bool, log *slog.Logger) (*gorm.DB, error) {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(level)}

	switch cfg.Driver {
	case DriverPostgres:
		dsn := NormalizeDSN(cfg.PostgresDSN())
		log.Info("connecting to storage", "driver", cfg.Driver, "dsn", MaskDSN(dsn))
		var (
			gdb *gorm.DB
			err error
		)
		for i := 0; i < connectAttempts; i++ {
			gdb, err = gorm.Open(postgres.Open(dsn), gcfg)
			if err == nil {
				break
			}
			log.Warn("storage connection failed, retrying", "attempt", i+1, "error", err)
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("connect postgres after %d attempts: %w", connectAttempts, err)
		}
		if err := gdb.Exec("SELECT 1").Error; err != nil {
			return nil, fmt.Errorf("storage ping: %w", err)
		}
		return gdb, nil
	case DriverSQLite:
		dsn := cfg.DSN
		if dsn == "" {
			dsn = defaultSQLitePath
		}
		log.Info("connecting to storage", "driver", cfg.Driver, "dsn", dsn)
		gdb, err := gorm.Open(sqlite.Open(dsn), gcfg)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
		}
		return gdb, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
