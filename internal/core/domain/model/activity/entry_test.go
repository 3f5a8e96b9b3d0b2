package activity_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/activity"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	recordedAt := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)

	t.Run("valid entry", func(t *testing.T) {
		id := kernel.NewUUID()

		e, err := activity.NewEntry(id, recordedAt, "Quote started: A -> B")

		require.NoError(t, err)
		assert.NoError(t, e.Validate())
		assert.True(t, e.ID().IsEqual(id))
		assert.Equal(t, recordedAt, e.RecordedAt())
		assert.Equal(t, "Quote started: A -> B", e.Message())
		assert.Equal(t, "[2024-03-09 14:05:07] Quote started: A -> B", e.String())
	})

	t.Run("missing id and time", func(t *testing.T) {
		e, err := activity.NewEntry(kernel.UUID{}, time.Time{}, "x")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "id")
		assert.Contains(t, err.Error(), "recordedAt")
		assert.ErrorIs(t, e.Validate(), activity.ErrEntryIsNotConstructed)
	})
}
