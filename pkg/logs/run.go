package logs

// MigrationStarted is logged at the beginning of a run
type MigrationStarted struct {
	Message string `logevent:"message,default=migration-started"`
	Mode    string `logevent:"mode"`
	Steps   int    `logevent:"steps"`
}

// MigrationCompleted is logged when every phase of a run succeeded
type MigrationCompleted struct {
	Message string `logevent:"message,default=Migration completed"`
}

// MigrationFailed is logged with the fatal error that halted a run
type MigrationFailed struct {
	Message string `logevent:"message,default=migration-failed"`
	Step    string `logevent:"step"`
	Reason  string `logevent:"reason"`
}

// RollbackStarted announces a rollback of a failed step
type RollbackStarted struct {
	Message string `logevent:"message,default=Error occurred. Rollback."`
	Step    string `logevent:"step"`
}

// RollbackError is logged when a rollback itself fails. The run still reports the original failure.
type RollbackError struct {
	Message string `logevent:"message,default=rollback-error"`
	Step    string `logevent:"step"`
	Reason  string `logevent:"reason"`
}

// ProgressResetError is logged when progress could not be cleared after a rollback
type ProgressResetError struct {
	Message string `logevent:"message,default=progress-reset-error"`
	Step    string `logevent:"step"`
	Reason  string `logevent:"reason"`
}

// RerunAdvice tells the operator what to do after a rollback
type RerunAdvice struct {
	Message string `logevent:"message,default=Please fix errors and run the migration again"`
	Step    string `logevent:"step"`
}

// SchemaPrepared is logged once the bookkeeping schema is up to date
type SchemaPrepared struct {
	Message string `logevent:"message,default=schema-prepared"`
	Version uint   `logevent:"version"`
}

// InvalidInput is logged when the provided input is malformed
type InvalidInput struct {
	Message string `logevent:"message,default=invalid-input"`
	Reason  string `logevent:"reason"`
}

// StepRollback is logged right before the failed stage of a step is rolled back
type StepRollback struct {
	Message string `logevent:"message,default=rollback"`
	Step    string `logevent:"step"`
}
