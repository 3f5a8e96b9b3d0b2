package commands

import (
	"context"

	"freight/internal/core/ports"
)

// PruneActivityCommandHandler drops old entries from the activity store.
type PruneActivityCommandHandler struct {
	store ports.ActivityStore
}

func NewPruneActivityCommandHandler(store ports.ActivityStore) PruneActivityCommandHandler {
	return PruneActivityCommandHandler{store: store}
}

// Handle returns the number of removed entries.
func (h PruneActivityCommandHandler) Handle(ctx context.Context, cmd PruneActivityCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return h.store.PruneBefore(ctx, cmd.Cutoff())
}
