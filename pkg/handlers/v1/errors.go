package v1

import (
	"fmt"
)

// Conflict is an error indicating the request cannot be served in the current state.
// serverfull reports it with status 500 and errorType Conflict.
type Conflict struct {
	Reason string
}

func (c Conflict) Error() string {
	return fmt.Sprintf("conflict: %s", c.Reason)
}
