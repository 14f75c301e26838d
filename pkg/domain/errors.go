package domain

import (
	"errors"
	"fmt"
)

// Phase names the part of a run that failed
type Phase int

// Phases of a data migration run
const (
	PhaseIntegrity Phase = iota
	PhaseSetupTriggers
	PhaseData
	PhaseVolume
)

var phaseMessages = map[Phase]string{
	PhaseIntegrity:     "Integrity Check failed",
	PhaseSetupTriggers: "Setup triggers failed",
	PhaseData:          "Data Migration failed",
	PhaseVolume:        "Volume Check failed",
}

// ErrRunInProgress is returned when a run is requested while another one is active
var ErrRunInProgress = errors.New("migration is already running")

// FatalError halts a migration run. The message is fixed per phase so callers
// can match on it; Step names the failed step for data and volume failures.
type FatalError struct {
	Phase Phase
	Step  string
}

func (e FatalError) Error() string {
	if msg, ok := phaseMessages[e.Phase]; ok {
		return msg
	}
	return fmt.Sprintf("migration failed in unknown phase %d", e.Phase)
}

// StepListError indicates the step list could not be built
type StepListError struct {
	Step   string
	Reason string
}

func (e StepListError) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("invalid step list: %s", e.Reason)
	}
	return fmt.Sprintf("invalid step %q: %s", e.Step, e.Reason)
}

// RollbackResult records what happened during a best-effort rollback. The errors
// are for reporting only and never fail the run on their own.
type RollbackResult struct {
	Attempted   bool
	RollbackErr error
	ResetErr    error
}
