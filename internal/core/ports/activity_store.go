// Package ports defines the contracts between the quotation core and its
// infrastructure. Adapters under internal/adapters implement them; the core
// never imports an adapter.
package ports

import (
	"context"
	"time"

	"freight/internal/core/domain/model/activity"
)

// ActivityStore persists the activity log.
type ActivityStore interface {
	// Append adds an entry at the end of the log. Appends from concurrent
	// callers are serialised; entries are never reordered.
	Append(ctx context.Context, entry activity.Entry) error

	// Recent returns at most limit entries, the most recent ones, in
	// chronological order (oldest first).
	//
	// Example:
	//   entries, err := store.Recent(ctx, 10)
	//   for _, e := range entries {
	//       fmt.Println(e) // [2024-03-09 14:05:07] Quote started: ...
	//   }
	Recent(ctx context.Context, limit int) ([]activity.Entry, error)

	// PruneBefore removes entries recorded strictly before cutoff and returns
	// how many were removed.
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
