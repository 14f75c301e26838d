package v1

import (
	"context"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// ResetProgressHandler handles requests to forget all migration progress so the next run starts over
type ResetProgressHandler struct {
	LogFn   domain.LogFn
	Clearer domain.ProgressClearer
}

// Handle clears the progress of every stage
func (h *ResetProgressHandler) Handle(ctx context.Context) error {
	if err := h.Clearer.ResetAll(ctx); err != nil {
		h.LogFn(ctx).Error(logs.StorageError{Reason: err.Error()})
		return err
	}
	return nil
}
