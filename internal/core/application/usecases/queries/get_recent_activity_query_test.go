package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetRecentActivityQuery(t *testing.T) {
	for _, limit := range []int{1, queries.DefaultRecentActivityLimit, 500} {
		q, err := queries.NewGetRecentActivityQuery(limit)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, limit, q.Limit())
	}
}

func TestNewGetRecentActivityQuery_OutOfRange(t *testing.T) {
	for _, limit := range []int{0, -1, 501} {
		_, err := queries.NewGetRecentActivityQuery(limit)

		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "limit", rangeErr.ParamName)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	}
}

func TestGetRecentActivityQuery_ZeroValue(t *testing.T) {
	var q queries.GetRecentActivityQuery

	assert.ErrorIs(t, q.Validate(), queries.ErrGetRecentActivityQueryIsNotConstructed)
}
