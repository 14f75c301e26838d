package stages

import (
	"context"
	"database/sql"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// RowCountVolume verifies that each destination table holds as many rows as its source
type RowCountVolume struct {
	LogFn       domain.LogFn
	Source      *sql.DB
	Destination *sql.DB
	Tables      []TableMap
}

// Perform compares the row counts of all tables
func (s *RowCountVolume) Perform(ctx context.Context) bool {
	logger := s.LogFn(ctx)
	ok := true
	for _, t := range s.Tables {
		sourceCount, err := countRows(ctx, s.Source, t.Source)
		if err != nil {
			logger.Error(logs.StorageError{Reason: err.Error()})
			ok = false
			continue
		}
		destinationCount, err := countRows(ctx, s.Destination, t.Destination)
		if err != nil {
			logger.Error(logs.StorageError{Reason: err.Error()})
			ok = false
			continue
		}
		if sourceCount != destinationCount {
			logger.Error(logs.VolumeMismatch{Table: t.Destination, Source: sourceCount, Destination: destinationCount})
			ok = false
		}
	}
	return ok
}
