package v1

import (
	"context"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// SchemaState describes the bookkeeping schema holding the migration progress
type SchemaState struct {
	Version uint `json:"version"`
	Dirty   bool `json:"dirty"`
	// Prepared is false until the first bookkeeping migration has been applied
	Prepared bool `json:"prepared"`
}

// GetSchemaVersionHandler reports the state of the bookkeeping schema
type GetSchemaVersionHandler struct {
	LogFn  domain.LogFn
	Getter domain.SchemaVersionGetter
}

// Handle returns the bookkeeping schema state. A schema that was never prepared reports version 0.
func (h *GetSchemaVersionHandler) Handle(ctx context.Context) (SchemaState, error) {
	version, dirty, err := h.Getter.GetSchemaVersion(ctx)
	if err != nil {
		h.LogFn(ctx).Error(logs.StorageError{Reason: err.Error()})
		return SchemaState{}, err
	}
	return SchemaState{
		Version:  version,
		Dirty:    dirty,
		Prepared: version > 0,
	}, nil
}
