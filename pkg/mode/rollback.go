package mode

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// detachedContext keeps the values of a run context, the logger included, but
// is never cancelled. A run aborted by a closed request must still clean up.
type detachedContext struct {
	context.Context
}

func (detachedContext) Deadline() (time.Time, bool) { return time.Time{}, false }

func (detachedContext) Done() <-chan struct{} { return nil }

func (detachedContext) Err() error { return nil }

// rollback undoes a failed stage when it supports it and clears its progress.
// Failures are logged and reported in the result only; the caller always goes on
// to return the error of the phase that failed.
func (m *Data) rollback(ctx context.Context, stage domain.Stage, stepName string) domain.RollbackResult {
	r, ok := stage.(domain.RollbackStage)
	if !ok {
		return domain.RollbackResult{}
	}
	ctx = detachedContext{ctx}
	logger := m.LogFn(ctx)
	result := domain.RollbackResult{Attempted: true}

	logger.Info(logs.RollbackStarted{Step: stepName})
	logger.Info(logs.StepRollback{Step: stepName})
	if err := performRollback(ctx, r); err != nil {
		result.RollbackErr = err
		logger.Error(logs.RollbackError{Step: stepName, Reason: err.Error()})
	}
	if err := m.Progress.Reset(ctx, stage); err != nil {
		result.ResetErr = err
		logger.Error(logs.ProgressResetError{Step: stepName, Reason: err.Error()})
	}
	logger.Info(logs.RerunAdvice{Step: stepName})
	return result
}

// performRollback runs the rollback of a stage, turning a panic into an error.
func performRollback(ctx context.Context, r domain.RollbackStage) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("rollback panicked: %v", p)
		}
	}()
	return r.Rollback(ctx)
}
