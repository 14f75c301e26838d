package storage

import (
	"context"

	"github.com/golang-migrate/migrate/v4"
	"github.com/pkg/errors"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
)

// SchemaManager is an abstraction layer for manipulating the bookkeeping schema backed by golang/migrate
type SchemaManager struct {
	DataSourceURL    string
	MigrationsSource string
	migrator         domain.StorageSchemaMigrator
}

// EnsureConnected checks if the migrator database connection is functioning properly and replaces it if needed
func (sm *SchemaManager) EnsureConnected() error {
	_, _, err := sm.migrator.Version()
	if err == nil || err == migrate.ErrNilVersion {
		return nil
	}
	// migrator has stale connection or is not initialized properly
	m, err := migrate.New(sm.MigrationsSource, sm.DataSourceURL)
	if err != nil {
		return err
	}
	sm.migrator = m
	return nil
}

// Prepare migrates the bookkeeping schema to the latest version and returns that version
func (sm *SchemaManager) Prepare(ctx context.Context) (uint, error) {
	// ensure we have an established connection before running any migrate commands
	if err := sm.EnsureConnected(); err != nil {
		return 0, err
	}
	if err := sm.migrator.Up(); err != nil && err != migrate.ErrNoChange {
		return 0, errors.Wrap(err, "failed to migrate bookkeeping schema")
	}
	version, _, err := sm.GetSchemaVersion(ctx)
	return version, err
}

// GetSchemaVersion retrieves the current version of database schema
func (sm *SchemaManager) GetSchemaVersion(ctx context.Context) (uint, bool, error) {
	err := sm.EnsureConnected()
	if err != nil {
		return 0, false, err
	}
	v, dirty, err := sm.migrator.Version()
	if err == migrate.ErrNilVersion {
		// special handling for the version not being present
		return 0, dirty, nil
	}
	if err != nil {
		return 0, dirty, err
	}
	return v, dirty, nil
}
