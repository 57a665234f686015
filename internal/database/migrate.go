package database

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file" // File source driver

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/config"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
)

// newMigrator opens a dedicated connection and builds a migrate instance
// over the configured migrations directory. The caller owns Close.
func newMigrator(cfg *config.Config) (*migrate.Migrate, string, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, "", fmt.Errorf("open database connection: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		db.Close()
		return nil, "", fmt.Errorf("create postgres driver: %w", err)
	}

	migrationsPath := cfg.Database.MigrationsPath
	if absPath, pathErr := filepath.Abs(migrationsPath); pathErr == nil {
		migrationsPath = absPath
	}
	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres",
		driver,
	)
	if err != nil {
		db.Close()
		return nil, "", fmt.Errorf("create migrate instance: %w", err)
	}

	return m, migrationsPath, nil
}

// RunMigrations runs all pending migrations
func RunMigrations(cfg *config.Config, log logger.Logger) error {
	m, migrationsPath, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No pending migrations",
				logger.String("migrations_path", migrationsPath),
			)
			return nil
		}
		return fmt.Errorf("run migrations: %w", err)
	}

	log.Info("Migrations applied successfully",
		logger.String("migrations_path", migrationsPath),
	)

	return nil
}

// MigrateDown rolls back N migrations (default: 1)
func MigrateDown(cfg *config.Config, steps int, log logger.Logger) error {
	m, migrationsPath, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	if steps <= 0 {
		steps = 1
	}

	if err := m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to rollback",
				logger.String("migrations_path", migrationsPath),
			)
			return nil
		}
		return fmt.Errorf("rollback migrations: %w", err)
	}

	log.Info("Migrations rolled back successfully",
		logger.String("migrations_path", migrationsPath),
		logger.Int("steps", steps),
	)

	return nil
}
