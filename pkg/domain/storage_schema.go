package domain

import "context"

// StorageSchemaMigrator presents an abstraction over the bookkeeping database schema migration
type StorageSchemaMigrator interface {
	Up() error
	Version() (version uint, dirty bool, err error)
}

// SchemaVersionGetter is used to retrieve the current version of DB schema
type SchemaVersionGetter interface {
	GetSchemaVersion(ctx context.Context) (uint, bool, error)
}

// SchemaPreparer brings the bookkeeping schema to the latest version
type SchemaPreparer interface {
	Prepare(ctx context.Context) (uint, error)
}

// ProgressClearer drops all recorded progress
type ProgressClearer interface {
	ResetAll(ctx context.Context) error
}
