// Package journal records the activity log of the quotation pipeline.
//
// Journal implements services.ActivityRecorder over a ports.ActivityStore.
// Each message becomes an activity.Entry stamped with a fresh UUID and the
// current time, and is echoed to the structured logger. A failing store never
// fails a quotation: the error is logged and the pipeline goes on.
package journal

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/activity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"
)

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

type Journal struct {
	store  ports.ActivityStore
	now    Clock
	logger *slog.Logger
}

// Option customises a Journal.
type Option func(*Journal)

// WithClock replaces time.Now as the source of entry timestamps.
func WithClock(clock Clock) Option {
	return func(j *Journal) {
		j.now = clock
	}
}

// New creates a journal writing to store and logging through logger.
func New(store ports.ActivityStore, logger *slog.Logger, opts ...Option) *Journal {
	j := &Journal{
		store:  store,
		now:    time.Now,
		logger: logger.With("component", "journal"),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Record appends message to the activity log.
func (j *Journal) Record(ctx context.Context, message string) {
	entry, err := activity.NewEntry(kernel.NewUUID(), j.now(), message)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build activity entry", "error", err)
		return
	}

	if err = j.store.Append(ctx, entry); err != nil {
		j.logger.ErrorContext(ctx, "Failed to append activity entry",
			"error", err, "message", message)
		return
	}

	j.logger.InfoContext(ctx, message, "entry_id", entry.ID().String())
}
