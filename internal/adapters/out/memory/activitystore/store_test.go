package activitystore_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"freight/internal/adapters/out/memory/activitystore"
	"freight/internal/core/domain/model/activity"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 3, 9, 14, 0, 0, 0, time.UTC)

func entry(t *testing.T, offset time.Duration, message string) activity.Entry {
	t.Helper()
	e, err := activity.NewEntry(kernel.NewUUID(), base.Add(offset), message)
	require.NoError(t, err)
	return e
}

func messages(entries []activity.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Message())
	}
	return out
}

func TestStore_AppendAndRecent(t *testing.T) {
	ctx := t.Context()
	store := activitystore.New(0)
	for i := range 12 {
		require.NoError(t, store.Append(ctx, entry(t, time.Duration(i)*time.Second, fmt.Sprintf("m%d", i))))
	}

	t.Run("returns the most recent entries oldest first", func(t *testing.T) {
		recent, err := store.Recent(ctx, 3)

		require.NoError(t, err)
		assert.Equal(t, []string{"m9", "m10", "m11"}, messages(recent))
	})

	t.Run("limit larger than the log returns everything", func(t *testing.T) {
		recent, err := store.Recent(ctx, 100)

		require.NoError(t, err)
		assert.Len(t, recent, 12)
		assert.Equal(t, "m0", recent[0].Message())
	})

	t.Run("non-positive limit returns nothing", func(t *testing.T) {
		recent, err := store.Recent(ctx, 0)

		require.NoError(t, err)
		assert.Empty(t, recent)
	})

	t.Run("result is a copy", func(t *testing.T) {
		recent, _ := store.Recent(ctx, 1)
		recent[0] = activity.Entry{}

		again, _ := store.Recent(ctx, 1)
		assert.Equal(t, "m11", again[0].Message())
	})
}

func TestStore_EmptyLog(t *testing.T) {
	var store activitystore.Store

	recent, err := store.Recent(t.Context(), 10)

	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestStore_RejectsUnconstructedEntry(t *testing.T) {
	store := activitystore.New(0)

	err := store.Append(t.Context(), activity.Entry{})

	require.ErrorIs(t, err, activity.ErrEntryIsNotConstructed)
	assert.Equal(t, 0, store.Len())
}

func TestStore_Capacity(t *testing.T) {
	ctx := t.Context()
	store := activitystore.New(3)

	for i := range 5 {
		require.NoError(t, store.Append(ctx, entry(t, time.Duration(i)*time.Second, fmt.Sprintf("m%d", i))))
	}

	recent, err := store.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, store.Len())
	assert.Equal(t, []string{"m2", "m3", "m4"}, messages(recent))
}

func TestStore_PruneBefore(t *testing.T) {
	ctx := t.Context()
	store := activitystore.New(0)
	require.NoError(t, store.Append(ctx, entry(t, 0, "old")))
	require.NoError(t, store.Append(ctx, entry(t, time.Hour, "edge")))
	require.NoError(t, store.Append(ctx, entry(t, 2*time.Hour, "new")))

	removed, err := store.PruneBefore(ctx, base.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	recent, _ := store.Recent(ctx, 10)
	assert.Equal(t, []string{"edge", "new"}, messages(recent))
}

func TestStore_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	store := activitystore.New(0)

	entries := make([]activity.Entry, 50)
	for i := range entries {
		entries[i] = entry(t, time.Duration(i)*time.Millisecond, "parallel")
	}

	var wg sync.WaitGroup
	for _, e := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Append(ctx, e)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, store.Len())
}
