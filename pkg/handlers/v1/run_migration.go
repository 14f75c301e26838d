package v1

import (
	"context"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// MigrationStatus is returned once a migration run completed
type MigrationStatus struct {
	Status string `json:"status"`
}

// RunMigrationHandler handles requests to run the data migration
type RunMigrationHandler struct {
	LogFn  domain.LogFn
	Runner domain.MigrationRunner
}

// Handle runs the migration to completion. Fatal migration errors are returned as they are.
func (h *RunMigrationHandler) Handle(ctx context.Context) (MigrationStatus, error) {
	err := h.Runner.Run(ctx)
	if err == domain.ErrRunInProgress {
		h.LogFn(ctx).Info(logs.InvalidInput{Reason: err.Error()})
		return MigrationStatus{}, Conflict{Reason: err.Error()}
	}
	if err != nil {
		return MigrationStatus{}, err
	}
	return MigrationStatus{Status: "completed"}, nil
}
