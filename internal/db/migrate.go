package db

import (
	"embed"
	"errors"
	"fmt"

	migrate "github.com/golang-migrate/migrate/v4"
	// registers the postgres database driver for golang-migrate
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/diewo77/smart-order/internal/config"
	"github.com/diewo77/smart-order/internal/models"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate prepares the client_entries table. With MIGRATIONS enabled on
// postgres the embedded SQL files run through golang-migrate; otherwise
// gorm AutoMigrate is used (sqlite, local development).
func Migrate(gdb *gorm.DB, cfg config.StorageConfig) error {
	if cfg.Migrations && cfg.Driver == DriverPostgres {
		if err := runSQLMigrations(ToURLDSN(NormalizeDSN(cfg.PostgresDSN()))); err != nil {
			return fmt.Errorf("sql migrations: %w", err)
		}
	} else if err := gdb.AutoMigrate(&models.ClientEntry{}); err != nil {
		return fmt.Errorf("automigrate %T: %w", &models.ClientEntry{}, err)
	}
	if !gdb.Migrator().HasTable(&models.ClientEntry{}) {
		return errors.New("missing table after migration: client_entries")
	}
	return nil
}

func runSQLMigrations(dsn string) error {
	src, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
