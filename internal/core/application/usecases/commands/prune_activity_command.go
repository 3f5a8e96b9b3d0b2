package commands

import (
	"errors"
	"time"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrPruneActivityCommandIsNotConstructed = errors.New(
	"PruneActivityCommand must be created via NewPruneActivityCommand constructor",
)

// PruneActivityCommand removes activity entries recorded before a cut-off.
type PruneActivityCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPruneActivityCommand builds the command for entries older than cutoff.
// A zero cutoff is rejected.
func NewPruneActivityCommand(cutoff time.Time) (PruneActivityCommand, error) {
	if cutoff.IsZero() {
		return PruneActivityCommand{}, errs.NewValueIsRequiredError("cutoff")
	}
	return PruneActivityCommand{cutoff: cutoff, guard: guard.NewConstructorGuard()}, nil
}

// NewPruneActivityCommandForRetention keeps the last retention of entries as
// seen from now.
func NewPruneActivityCommandForRetention(now time.Time, retention time.Duration) (PruneActivityCommand, error) {
	if retention <= 0 {
		return PruneActivityCommand{}, errs.NewValueIsInvalidError("retention")
	}
	return NewPruneActivityCommand(now.Add(-retention))
}

func (c PruneActivityCommand) Validate() error {
	return c.guard.Validate(ErrPruneActivityCommandIsNotConstructed)
}

func (c PruneActivityCommand) Cutoff() time.Time {
	return c.cutoff
}
