package domain

import "context"

// ModeData identifies the step list used by the data migration mode
const ModeData = "data"

// Step bundles the stages migrating one named unit of data. A nil slot means the
// step has no stage of that kind.
type Step struct {
	Name      string
	Integrity Stage
	Data      Stage
	Volume    Stage
}

// StepList is the ordered list of steps of a mode. Order is significant.
type StepList []Step

// StepListProvider loads the step list of the given mode
type StepListProvider interface {
	StepList(ctx context.Context, mode string) (StepList, error)
}

// MigrationRunner runs a complete migration
type MigrationRunner interface {
	Run(ctx context.Context) error
}
