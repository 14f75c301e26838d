package stages

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// StructureIntegrity verifies that every mapped table can be migrated. Both tables
// must exist, the destination must have every source column that is not ignored
// and the key must be a migrated column with a unique not null index.
type StructureIntegrity struct {
	LogFn       domain.LogFn
	Source      *sql.DB
	Destination *sql.DB
	Tables      []TableMap
}

// Perform checks all tables and logs every problem found
func (s *StructureIntegrity) Perform(ctx context.Context) bool {
	ok := true
	for _, t := range s.Tables {
		ok = s.checkTable(ctx, t) && ok
	}
	return ok
}

func (s *StructureIntegrity) checkTable(ctx context.Context, t TableMap) bool {
	logger := s.LogFn(ctx)
	sourceColumns, err := tableColumns(ctx, s.Source, t.Source)
	if err != nil {
		logger.Error(logs.IntegrityError{Table: t.Source, Reason: err.Error()})
		return false
	}
	if len(sourceColumns) == 0 {
		logger.Error(logs.IntegrityError{Table: t.Source, Reason: "source table does not exist"})
		return false
	}
	destinationColumns, err := tableColumns(ctx, s.Destination, t.Destination)
	if err != nil {
		logger.Error(logs.IntegrityError{Table: t.Destination, Reason: err.Error()})
		return false
	}
	if len(destinationColumns) == 0 {
		logger.Error(logs.IntegrityError{Table: t.Destination, Reason: "destination table does not exist"})
		return false
	}

	ok := true
	existing := make(map[string]bool, len(destinationColumns))
	for _, c := range destinationColumns {
		existing[c] = true
	}
	sourceHasKey := false
	for _, c := range sourceColumns {
		if c == t.Key {
			sourceHasKey = true
		}
		if t.ignored(c) || existing[c] {
			continue
		}
		logger.Error(logs.IntegrityError{
			Table:  t.Destination,
			Reason: fmt.Sprintf("column %s of %s is missing in the destination", c, t.Source),
		})
		ok = false
	}
	return s.checkKey(ctx, t, sourceHasKey) && ok
}

func (s *StructureIntegrity) checkKey(ctx context.Context, t TableMap, sourceHasKey bool) bool {
	logger := s.LogFn(ctx)
	switch {
	case t.Key == "":
		logger.Error(logs.IntegrityError{Table: t.Source, Reason: "no key column"})
		return false
	case !sourceHasKey:
		logger.Error(logs.IntegrityError{Table: t.Source, Reason: fmt.Sprintf("key column %s does not exist", t.Key)})
		return false
	case t.ignored(t.Key):
		logger.Error(logs.IntegrityError{Table: t.Source, Reason: fmt.Sprintf("key column %s is ignored", t.Key)})
		return false
	}
	unique, err := isUniqueKey(ctx, s.Source, t.Source, t.Key)
	if err != nil {
		logger.Error(logs.IntegrityError{Table: t.Source, Reason: err.Error()})
		return false
	}
	if !unique {
		logger.Error(logs.IntegrityError{
			Table:  t.Source,
			Reason: fmt.Sprintf("key column %s has no unique not null index", t.Key),
		})
		return false
	}
	return true
}
