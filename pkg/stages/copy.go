package stages

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// DefaultBatchSize is the number of rows read from the source at once
const DefaultBatchSize = 1000

// TableCopy transfers the rows of its tables from the source to the destination.
// Each table is copied in its own transaction and recorded in the progress, so
// a re-run skips tables that were already done.
type TableCopy struct {
	LogFn       domain.LogFn
	Source      *sql.DB
	Destination *sql.DB
	Progress    domain.ProgressRecorder
	Step        string
	Tables      []TableMap
	BatchSize   int
}

// ProgressKey identifies the progress of this stage
func (s *TableCopy) ProgressKey() string {
	return s.Step + "/data"
}

// Perform copies every table that has not been copied yet
func (s *TableCopy) Perform(ctx context.Context) bool {
	logger := s.LogFn(ctx)
	key := s.ProgressKey()
	for _, t := range s.Tables {
		done, err := s.Progress.IsCompleted(ctx, key, t.Destination)
		if err != nil {
			logger.Error(logs.StorageError{Reason: err.Error()})
			return false
		}
		if done {
			logger.Info(logs.TableSkipped{Table: t.Destination})
			continue
		}
		copied, err := s.copyTable(ctx, t)
		if err != nil {
			logger.Error(logs.StorageError{Reason: err.Error()})
			return false
		}
		if err = s.Progress.SaveResult(ctx, key, t.Destination); err != nil {
			logger.Error(logs.StorageError{Reason: err.Error()})
			return false
		}
		logger.Info(logs.TableMigrated{Table: t.Destination, Rows: copied})
	}
	return true
}

// Rollback removes the migrated rows from every destination table of the stage
func (s *TableCopy) Rollback(ctx context.Context) error {
	tx, err := s.Destination.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, t := range s.Tables {
		if _, err = tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", pq.QuoteIdentifier(t.Destination))); err != nil { // nolint
			return handleRollback(tx, errors.Wrapf(err, "failed to clear %s", t.Destination))
		}
	}
	return tx.Commit()
}

func (s *TableCopy) batchSize() int {
	if s.BatchSize < 1 {
		return DefaultBatchSize
	}
	return s.BatchSize
}

// copyTable reads the source in key order from a single read-only snapshot. Each
// batch continues after the last key seen, so batches never overlap or leave gaps.
func (s *TableCopy) copyTable(ctx context.Context, t TableMap) (int64, error) {
	all, err := tableColumns(ctx, s.Source, t.Source)
	if err != nil {
		return 0, err
	}
	columns := make([]string, 0, len(all))
	keyIndex := -1
	for _, c := range all {
		if t.ignored(c) {
			continue
		}
		if c == t.Key {
			keyIndex = len(columns)
		}
		columns = append(columns, c)
	}
	if t.Key == "" || keyIndex < 0 {
		return 0, errors.Errorf("key column %q of %s is not migrated", t.Key, t.Source)
	}

	snapshot, err := s.Source.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return 0, errors.Wrapf(err, "failed to open snapshot of %s", t.Source)
	}
	defer func() { _ = snapshot.Rollback() }()

	tx, err := s.Destination.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	// rows left behind by an interrupted run are replaced
	if _, err = tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", pq.QuoteIdentifier(t.Destination))); err != nil { // nolint
		return 0, handleRollback(tx, err)
	}

	placeholders := make([]string, 0, len(columns))
	for i := range columns {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
	}
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", // nolint
		pq.QuoteIdentifier(t.Destination), quoteColumns(columns), strings.Join(placeholders, ", "))
	key := pq.QuoteIdentifier(t.Key)
	firstBatch := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT $1", // nolint
		quoteColumns(columns), pq.QuoteIdentifier(t.Source), key)
	nextBatch := fmt.Sprintf("SELECT %s FROM %s WHERE %s > $2 ORDER BY %s LIMIT $1", // nolint
		quoteColumns(columns), pq.QuoteIdentifier(t.Source), key, key)

	var copied int64
	var last interface{}
	size := s.batchSize()
	for {
		var batch [][]interface{}
		if copied == 0 {
			batch, err = readBatch(ctx, snapshot, firstBatch, len(columns), size)
		} else {
			batch, err = readBatch(ctx, snapshot, nextBatch, len(columns), size, last)
		}
		if err != nil {
			return 0, handleRollback(tx, errors.Wrapf(err, "failed to read %s", t.Source))
		}
		for _, row := range batch {
			if _, err = tx.ExecContext(ctx, insert, row...); err != nil {
				return 0, handleRollback(tx, errors.Wrapf(err, "failed to insert into %s", t.Destination))
			}
		}
		copied += int64(len(batch))
		if len(batch) < size {
			break
		}
		last = batch[len(batch)-1][keyIndex]
	}
	return copied, tx.Commit()
}

func readBatch(ctx context.Context, snapshot *sql.Tx, query string, width int, limit int, after ...interface{}) ([][]interface{}, error) {
	args := append([]interface{}{limit}, after...)
	rows, err := snapshot.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	batch := make([][]interface{}, 0, limit)
	for rows.Next() {
		values := make([]interface{}, width)
		pointers := make([]interface{}, width)
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			_ = rows.Close()
			return nil, err
		}
		batch = append(batch, values)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	return batch, rows.Close()
}
