// Package queries contains read operations over the activity log and the
// quotation catalog. Queries return plain read models for the adapters.
package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	// DefaultRecentActivityLimit is the number of entries the log screen shows.
	DefaultRecentActivityLimit = 10
	MinRecentActivityLimit     = 1
	MaxRecentActivityLimit     = 500
)

var ErrGetRecentActivityQueryIsNotConstructed = errors.New(
	"GetRecentActivityQuery must be created via NewGetRecentActivityQuery constructor",
)

// GetRecentActivityQuery retrieves the latest activity log entries.
//
// Example:
//
//	query, err := NewGetRecentActivityQuery(queries.DefaultRecentActivityLimit)
//	if err != nil {
//	    return err
//	}
//	entries, err := handler.Handle(ctx, query)
//	for _, e := range entries {
//	    fmt.Println(e.Line)
//	}
type GetRecentActivityQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentActivityQuery accepts a limit between 1 and 500.
func NewGetRecentActivityQuery(limit int) (GetRecentActivityQuery, error) {
	if limit < MinRecentActivityLimit || limit > MaxRecentActivityLimit {
		return GetRecentActivityQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, MinRecentActivityLimit, MaxRecentActivityLimit)
	}
	return GetRecentActivityQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecentActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentActivityQueryIsNotConstructed)
}

func (q GetRecentActivityQuery) Limit() int {
	return q.limit
}

// GetRecentActivityQueryResponse is one log entry in the read model. Line is
// the entry as the log screen prints it.
type GetRecentActivityQueryResponse struct {
	ID         kernel.UUID
	RecordedAt time.Time
	Message    string
	Line       string
}
