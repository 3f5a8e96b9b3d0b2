package activity

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// TimestampLayout is the layout entries are rendered with.
const TimestampLayout = "2006-01-02 15:04:05"

var ErrEntryIsNotConstructed = errs.NewValueIsRequiredError("entry must be created via NewEntry constructor")

// Entry is one timestamped line of the activity log. Entries are append-only.
type Entry struct {
	id         kernel.UUID
	recordedAt time.Time
	message    string

	guard guard.ConstructorGuard
}

// NewEntry creates an entry. An empty message is allowed; the log records
// whatever the pipeline says.
func NewEntry(id kernel.UUID, recordedAt time.Time, message string) (Entry, error) {
	var idErr, timeErr error
	if err := id.Validate(); err != nil {
		idErr = errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	if recordedAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("recordedAt")
	}
	if err := errors.Join(idErr, timeErr); err != nil {
		return Entry{}, err
	}

	return Entry{
		id:         id,
		recordedAt: recordedAt,
		message:    message,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (e Entry) ID() kernel.UUID {
	return e.id
}

func (e Entry) RecordedAt() time.Time {
	return e.recordedAt
}

func (e Entry) Message() string {
	return e.message
}

func (e Entry) Validate() error {
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// String renders "[2006-01-02 15:04:05] message".
func (e Entry) String() string {
	return fmt.Sprintf("[%s] %s", e.recordedAt.Format(TimestampLayout), e.message)
}
