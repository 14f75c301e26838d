package stages

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

const deltaLogSuffix = "_delta_log"

// deltaLogFunction records the key of every changed row into <table>_delta_log.
// The key column is passed as the first trigger argument.
const deltaLogFunction = `CREATE OR REPLACE FUNCTION migrator_delta_log() RETURNS trigger AS $body$
DECLARE
    rec RECORD;
BEGIN
    IF TG_OP = 'DELETE' THEN
        rec := OLD;
    ELSE
        rec := NEW;
    END IF;
    EXECUTE format('INSERT INTO %I (key_value, operation) VALUES ($1, $2)', TG_TABLE_NAME || '` + deltaLogSuffix + `')
        USING to_jsonb(rec) ->> TG_ARGV[0], left(TG_OP, 1);
    RETURN NULL;
END;
$body$ LANGUAGE plpgsql`

// DeltaTable is a source table whose changes are tracked while the migration runs
type DeltaTable struct {
	Name string
	Key  string
}

// DeltaLogName is the name of the table receiving the changes of table
func DeltaLogName(table string) string {
	return table + deltaLogSuffix
}

// DeltaLogSetup installs change tracking on the source tables so that writes
// happening during the migration can be picked up later.
type DeltaLogSetup struct {
	LogFn  domain.LogFn
	Source *sql.DB
	Tables []DeltaTable
}

// Perform creates the delta log tables and triggers. Installing them again is harmless.
func (s *DeltaLogSetup) Perform(ctx context.Context) bool {
	logger := s.LogFn(ctx)
	if len(s.Tables) == 0 {
		return true
	}
	if _, err := s.Source.ExecContext(ctx, deltaLogFunction); err != nil {
		logger.Error(logs.StorageError{Reason: errors.Wrap(err, "failed to create delta log function").Error()})
		return false
	}
	for _, t := range s.Tables {
		if err := s.install(ctx, t); err != nil {
			logger.Error(logs.StorageError{Reason: err.Error()})
			return false
		}
		logger.Info(logs.DeltaLogInstalled{Table: t.Name})
	}
	return true
}

func (s *DeltaLogSetup) install(ctx context.Context, t DeltaTable) error {
	table := pq.QuoteIdentifier(t.Name)
	logTable := pq.QuoteIdentifier(DeltaLogName(t.Name))
	trigger := pq.QuoteIdentifier(DeltaLogName(t.Name) + "_trg")
	statements := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			key_value TEXT,
			operation CHAR(1) NOT NULL,
			logged_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, logTable),
		fmt.Sprintf("DROP TRIGGER IF EXISTS %s ON %s", trigger, table),
		fmt.Sprintf("CREATE TRIGGER %s AFTER INSERT OR UPDATE OR DELETE ON %s FOR EACH ROW EXECUTE PROCEDURE migrator_delta_log(%s)",
			trigger, table, pq.QuoteLiteral(t.Key)),
	}
	tx, err := s.Source.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, stmt := range statements {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return handleRollback(tx, errors.Wrapf(err, "failed to install delta log on %s", t.Name))
		}
	}
	return tx.Commit()
}
