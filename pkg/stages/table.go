package stages

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

// TableMap describes how one source table is migrated
type TableMap struct {
	Source      string
	Destination string
	// Key is a unique, not null source column. Batches are read in key order.
	Key string
	// Ignore lists source columns that are not migrated.
	Ignore []string
}

func (t TableMap) ignored(column string) bool {
	for _, c := range t.Ignore {
		if c == column {
			return true
		}
	}
	return false
}

// columnsQuery lists the columns of a table in the current schema. An empty result means the table does not exist.
const columnsQuery = `SELECT column_name FROM information_schema.columns
	WHERE table_schema = current_schema() AND table_name = $1
	ORDER BY ordinal_position`

func tableColumns(ctx context.Context, db *sql.DB, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, columnsQuery, table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read columns of %s", table)
	}
	columns := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			_ = rows.Close()
			return nil, err
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	return columns, rows.Close()
}

// uniqueKeyQuery reports whether the column alone is covered by a unique index
// and cannot hold nulls, which makes it usable to page through the table.
const uniqueKeyQuery = `SELECT EXISTS (
	SELECT 1 FROM pg_index i
	JOIN pg_attribute a ON a.attrelid = i.indrelid AND a.attnum = i.indkey[0]
	WHERE i.indrelid = to_regclass($1) AND i.indisunique AND i.indnatts = 1
		AND i.indpred IS NULL AND a.attname = $2 AND a.attnotnull)`

func isUniqueKey(ctx context.Context, db *sql.DB, table string, column string) (bool, error) {
	var unique bool
	if err := db.QueryRowContext(ctx, uniqueKeyQuery, pq.QuoteIdentifier(table), column).Scan(&unique); err != nil {
		return false, errors.Wrapf(err, "failed to read indexes of %s", table)
	}
	return unique, nil
}

func countRows(ctx context.Context, db *sql.DB, table string) (int64, error) {
	var count int64
	stmt := fmt.Sprintf("SELECT count(*) FROM %s", pq.QuoteIdentifier(table)) // nolint
	if err := db.QueryRowContext(ctx, stmt).Scan(&count); err != nil {
		return 0, errors.Wrapf(err, "failed to count rows of %s", table)
	}
	return count, nil
}

func quoteColumns(columns []string) string {
	quoted := make([]string, 0, len(columns))
	for _, c := range columns {
		quoted = append(quoted, pq.QuoteIdentifier(c))
	}
	return strings.Join(quoted, ", ")
}

func handleRollback(tx *sql.Tx, err error) error {
	if rollbackErr := tx.Rollback(); rollbackErr != nil {
		return fmt.Errorf("rollback error: %v while recovering from %v", rollbackErr, err)
	}
	return err
}
