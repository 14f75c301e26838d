package stages

import (
	"context"

	"github.com/asecurityteam/data-migration-tool/pkg/domain"
	"github.com/asecurityteam/data-migration-tool/pkg/logs"
)

// Nop is a stage that does nothing and always succeeds
type Nop struct {
	LogFn  domain.LogFn
	Reason string
}

// Perform logs and reports success
func (s *Nop) Perform(ctx context.Context) bool {
	s.LogFn(ctx).Info(logs.StageSkipped{Reason: s.Reason})
	return true
}
