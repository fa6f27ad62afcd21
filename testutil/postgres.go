// Package testutil starts a throwaway Postgres for tests that need real storage.
package testutil

import (
	"clubhub/config"
	"clubhub/repository"
	"fmt"

	"github.com/ory/dockertest/v3"
	"gorm.io/gorm"
)

// StartPostgres runs postgres in docker, migrates every model and returns a purge func
// that removes the container.
func StartPostgres() (*gorm.DB, func(), error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, nil, fmt.Errorf("could not construct pool: %w", err)
	}
	if err := pool.Client.Ping(); err != nil {
		return nil, nil, fmt.Errorf("could not connect to docker: %w", err)
	}

	resource, err := pool.Run("postgres", "17.2-alpine", []string{"POSTGRES_USER=postgres", "POSTGRES_PASSWORD=postgres", "POSTGRES_DB=postgres"})
	if err != nil {
		return nil, nil, fmt.Errorf("could not start resource: %w", err)
	}
	_ = resource.Expire(600) // hard kill after 10 minutes
	purge := func() {
		_ = pool.Purge(resource)
	}

	dsn := config.DSN("localhost", resource.GetPort("5432/tcp"), "postgres", "postgres", "postgres")
	var db *gorm.DB
	// the server in the container needs a moment before it accepts connections
	if err := pool.Retry(func() error {
		var err error
		db, err = config.OpenDB(dsn)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Ping()
	}); err != nil {
		purge()
		return nil, nil, fmt.Errorf("could not connect to postgres: %w", err)
	}

	if err := config.PrepareSchema(db); err != nil {
		purge()
		return nil, nil, err
	}
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		purge()
		return nil, nil, err
	}
	return db, purge, nil
}

// TruncateAll empties every table between tests.
func TruncateAll(db *gorm.DB) error {
	return db.Exec(`TRUNCATE ` +
		config.Schema + `.competition_registrations, ` +
		config.Schema + `.participants, ` +
		config.Schema + `.competitions, ` +
		config.Schema + `.events, ` +
		config.Schema + `.users RESTART IDENTITY CASCADE`).Error
}
