package logs

// StageStarted is logged before a stage is performed
type StageStarted struct {
	Message   string `logevent:"message,default=stage-started"`
	Step      string `logevent:"step"`
	Operation string `logevent:"operation"`
}

// StageCompleted is logged when a stage reports success
type StageCompleted struct {
	Message   string `logevent:"message,default=stage-completed"`
	Step      string `logevent:"step"`
	Operation string `logevent:"operation"`
}

// StageFailed is logged when a stage reports failure
type StageFailed struct {
	Message   string `logevent:"message,default=stage-failed"`
	Step      string `logevent:"step"`
	Operation string `logevent:"operation"`
}

// IntegrityError is logged for every structural mismatch found by an integrity check
type IntegrityError struct {
	Message string `logevent:"message,default=integrity-error"`
	Table   string `logevent:"table"`
	Reason  string `logevent:"reason"`
}

// VolumeMismatch is logged when source and destination disagree after a transfer
type VolumeMismatch struct {
	Message     string `logevent:"message,default=volume-mismatch"`
	Table       string `logevent:"table"`
	Source      int64  `logevent:"source"`
	Destination int64  `logevent:"destination"`
}

// TableMigrated is logged when all rows of a table are transferred
type TableMigrated struct {
	Message string `logevent:"message,default=table-migrated"`
	Table   string `logevent:"table"`
	Rows    int64  `logevent:"rows"`
}

// TableSkipped is logged when progress shows a table was already transferred
type TableSkipped struct {
	Message string `logevent:"message,default=table-skipped"`
	Table   string `logevent:"table"`
}

// DeltaLogInstalled is logged once change tracking is in place for a source table
type DeltaLogInstalled struct {
	Message string `logevent:"message,default=delta-log-installed"`
	Table   string `logevent:"table"`
}

// StageSkipped is logged by stages that have nothing to do
type StageSkipped struct {
	Message string `logevent:"message,default=stage-skipped"`
	Reason  string `logevent:"reason"`
}
