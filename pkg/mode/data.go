package mode

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/asecurityteam/logevent"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// labels used in logs and stats for each kind of stage
const (
	opIntegrity     = "integrity check"
	opSetupTriggers = "setup triggers"
	opData          = "data migration"
	opVolume        = "volume check"
)

// setupStepName is the step name the trigger setup is logged under
const setupStepName = "Stage"

const dataUsage = `
Data migration mode usage information:

Main data migration. Checks the integrity of every step, installs delta log
triggers on the source tables and then migrates and verifies the data of each
step in order. The first failure rolls back the data of the failed step and
stops the run.
`

// Data is the main data migration mode
type Data struct {
	LogFn         domain.LogFn
	StatFn        domain.StatFn
	Steps         domain.StepListProvider
	Progress      domain.ProgressResetter
	SetupDeltaLog domain.Stage

	running int32
}

// UsageHelp describes the mode for the command line
func (m *Data) UsageHelp() string {
	return dataUsage
}

// Run performs the data migration. It returns nil only if every phase succeeded;
// phase failures are reported as domain.FatalError.
func (m *Data) Run(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&m.running, 0, 1) {
		return domain.ErrRunInProgress
	}
	defer atomic.StoreInt32(&m.running, 0)

	logger := m.LogFn(ctx).Copy()
	logger.SetField("run_id", uuid.New().String())
	ctx = logevent.NewContext(ctx, logger)

	steps, err := m.Steps.StepList(ctx, domain.ModeData)
	if err != nil {
		return errors.Wrap(err, "failed to load step list")
	}
	m.LogFn(ctx).Info(logs.MigrationStarted{Mode: domain.ModeData, Steps: len(steps)})

	if err = m.runIntegrity(ctx, steps); err != nil {
		return m.fail(ctx, err)
	}
	if err = m.setupDeltaLog(ctx); err != nil {
		return m.fail(ctx, err)
	}
	for _, step := range steps {
		if step.Data == nil {
			continue
		}
		if err = m.runData(ctx, step); err != nil {
			return m.fail(ctx, err)
		}
		if err = m.runVolume(ctx, step); err != nil {
			return m.fail(ctx, err)
		}
	}

	m.LogFn(ctx).Info(logs.MigrationCompleted{})
	return nil
}

// runIntegrity checks every step before any data is touched. All checks run so
// the operator sees every problem at once.
func (m *Data) runIntegrity(ctx context.Context, steps domain.StepList) error {
	result := true
	for _, step := range steps {
		if step.Integrity == nil {
			continue
		}
		result = m.runStage(ctx, step.Integrity, step.Name, opIntegrity) && result
	}
	if !result {
		return domain.FatalError{Phase: domain.PhaseIntegrity}
	}
	return nil
}

func (m *Data) setupDeltaLog(ctx context.Context) error {
	if !m.runStage(ctx, m.SetupDeltaLog, setupStepName, opSetupTriggers) {
		return domain.FatalError{Phase: domain.PhaseSetupTriggers}
	}
	return nil
}

func (m *Data) runData(ctx context.Context, step domain.Step) error {
	if !m.runStage(ctx, step.Data, step.Name, opData) {
		m.rollback(ctx, step.Data, step.Name)
		return domain.FatalError{Phase: domain.PhaseData, Step: step.Name}
	}
	return nil
}

// runVolume verifies the transfer of a step. A failed check undoes the data
// stage since the check itself changes nothing.
func (m *Data) runVolume(ctx context.Context, step domain.Step) error {
	if step.Volume == nil {
		return nil
	}
	if !m.runStage(ctx, step.Volume, step.Name, opVolume) {
		m.rollback(ctx, step.Data, step.Name)
		return domain.FatalError{Phase: domain.PhaseVolume, Step: step.Name}
	}
	return nil
}

func (m *Data) runStage(ctx context.Context, stage domain.Stage, stepName string, operation string) bool {
	logger := m.LogFn(ctx)
	stat := m.StatFn(ctx)
	tags := []string{"step:" + stepName, "operation:" + operation}

	logger.Info(logs.StageStarted{Step: stepName, Operation: operation})
	start := time.Now()
	ok := stage.Perform(ctx)
	stat.Timing("stage.duration", time.Since(start), tags...)
	if !ok {
		stat.Count("stage.failure", 1, tags...)
		logger.Error(logs.StageFailed{Step: stepName, Operation: operation})
		return false
	}
	logger.Info(logs.StageCompleted{Step: stepName, Operation: operation})
	return true
}

func (m *Data) fail(ctx context.Context, err error) error {
	step := ""
	if fatal, ok := err.(domain.FatalError); ok {
		step = fatal.Step
	}
	m.LogFn(ctx).Error(logs.MigrationFailed{Step: step, Reason: err.Error()})
	return err
}
