package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
)

const tableProgress = "migration_progress"

/*
The progress table is created by the bookkeeping schema migrations:

CREATE TABLE migration_progress (
    stage VARCHAR NOT NULL,
    item VARCHAR NOT NULL,
    completed_at TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (stage, item)
);

A row means the item (usually a table) of the stage was fully migrated.
*/

// ProgressStore keeps track of how far each stage got, so a re-run can resume
type ProgressStore struct {
	sqldb *sql.DB
	now   func() time.Time // unit test seam
}

// NewProgressStore creates a ProgressStore on top of the destination database
func NewProgressStore(db *sql.DB) *ProgressStore {
	return &ProgressStore{sqldb: db, now: time.Now}
}

// IsCompleted reports whether the item of the stage was already migrated
func (p *ProgressStore) IsCompleted(ctx context.Context, stage string, item string) (bool, error) {
	var done bool
	stmt := `SELECT EXISTS (SELECT 1 FROM ` + tableProgress + ` WHERE stage = $1 AND item = $2)`
	if err := p.sqldb.QueryRowContext(ctx, stmt, stage, item).Scan(&done); err != nil {
		return false, errors.Wrapf(err, "failed to read progress of %s/%s", stage, item)
	}
	return done, nil
}

// SaveResult marks the item of the stage as migrated
func (p *ProgressStore) SaveResult(ctx context.Context, stage string, item string) error {
	stmt := `INSERT INTO ` + tableProgress + ` (stage, item, completed_at) VALUES ($1, $2, $3)
		ON CONFLICT (stage, item) DO UPDATE SET completed_at = EXCLUDED.completed_at`
	if _, err := p.sqldb.ExecContext(ctx, stmt, stage, item, p.now()); err != nil {
		return errors.Wrapf(err, "failed to save progress of %s/%s", stage, item)
	}
	return nil
}

// Reset forgets all progress of the stage. Resetting a stage without progress is not an error.
func (p *ProgressStore) Reset(ctx context.Context, s domain.Stage) error {
	key := domain.ProgressKey(s)
	if _, err := p.sqldb.ExecContext(ctx, `DELETE FROM `+tableProgress+` WHERE stage = $1`, key); err != nil {
		return errors.Wrapf(err, "failed to reset progress of %s", key)
	}
	return nil
}

// ResetAll forgets the progress of every stage
func (p *ProgressStore) ResetAll(ctx context.Context) error {
	if _, err := p.sqldb.ExecContext(ctx, `DELETE FROM `+tableProgress); err != nil {
		return errors.Wrap(err, "failed to reset progress")
	}
	return nil
}
