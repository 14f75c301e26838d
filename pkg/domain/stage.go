package domain

import (
	"context"
	"fmt"
)

// Stage is a single unit of migration work. Perform reports success or failure;
// stages log their own problems.
type Stage interface {
	Perform(ctx context.Context) bool
}

// RollbackStage is a Stage that can undo what it has applied.
type RollbackStage interface {
	Stage
	Rollback(ctx context.Context) error
}

// ProgressKeyer is implemented by stages that choose their own progress key.
type ProgressKeyer interface {
	ProgressKey() string
}

// ProgressKey returns the key under which progress of the given stage is recorded
func ProgressKey(s Stage) string {
	if k, ok := s.(ProgressKeyer); ok {
		return k.ProgressKey()
	}
	return fmt.Sprintf("%T", s)
}

// ProgressResetter clears recorded progress of a stage. Reset must be idempotent.
type ProgressResetter interface {
	Reset(ctx context.Context, s Stage) error
}

// ProgressRecorder is used by stages to resume work that was already completed
type ProgressRecorder interface {
	IsCompleted(ctx context.Context, stage string, item string) (bool, error)
	SaveResult(ctx context.Context, stage string, item string) error
}

// ProgressTracker is the full progress bookkeeping API
type ProgressTracker interface {
	ProgressResetter
	ProgressRecorder
	ResetAll(ctx context.Context) error
}
