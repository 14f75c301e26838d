package storage

import (
	"context"
	"database/sql"
	"sync"

	"github.com/pkg/errors"

	_ "github.com/lib/pq" // postgres driver for sql must be imported so sql finds and uses it
)

var dbInitFn = func(db *DB, ctx context.Context, url string) error {
	return db.Init(ctx, url)
}

// DB represents a connection to one of the Postgres databases taking part in the migration
type DB struct {
	sqldb *sql.DB // this is a unit test seam
	once  sync.Once
}

// Init opens and verifies the connection to the database at url. Only the first call has any effect.
func (db *DB) Init(ctx context.Context, url string) error {
	var initErr error
	db.once.Do(func() {
		if db.sqldb == nil {
			pgdb, err := sql.Open("postgres", url)
			if err != nil {
				initErr = errors.Wrap(err, "failed to open database")
				return // from the unnamed once.Do function
			}
			db.sqldb = pgdb
		}
		// ping is required for Postgres connection to be fully established
		if err := db.sqldb.PingContext(ctx); err != nil {
			initErr = errors.Wrap(err, "failed to ping database")
		}
	})
	return initErr
}

// Conn exposes the underlying connection pool to the stages
func (db *DB) Conn() *sql.DB {
	return db.sqldb
}

// Close closes the connection pool
func (db *DB) Close() error {
	if db.sqldb == nil {
		return nil
	}
	return db.sqldb.Close()
}
