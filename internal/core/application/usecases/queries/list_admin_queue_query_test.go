package queries_test

import (
	"math"
	"testing"

	"shasanseva/internal/core/application/usecases/queries"
	"shasanseva/internal/core/domain/model/order"
	"shasanseva/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

func TestNewListAdminQueueQuery_Defaults(t *testing.T) {
	query, err := queries.NewListAdminQueueQuery(nil, nil, nil)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Empty(t, query.Statuses())
	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 20, query.Limit())
	assert.Equal(t, 0, query.Offset())
}

func TestNewListAdminQueueQuery_Clamping(t *testing.T) {
	testCases := []struct {
		name          string
		page, limit   *int
		expectedPage  int
		expectedLimit int
	}{
		{"limit below minimum", nil, intPtr(1), 1, 10},
		{"zero limit", nil, intPtr(0), 1, 10},
		{"negative limit", nil, intPtr(-5), 1, 10},
		{"limit above maximum", nil, intPtr(500), 1, 100},
		{"limit at bounds", nil, intPtr(100), 1, 100},
		{"limit in range", nil, intPtr(35), 1, 35},
		{"zero page", intPtr(0), nil, 1, 20},
		{"negative page", intPtr(-3), nil, 1, 20},
		{"later page", intPtr(4), intPtr(10), 4, 10},
		{"page above maximum", intPtr(math.MaxInt), intPtr(100), queries.MaxQueuePage, 100},
		{"page at maximum", intPtr(queries.MaxQueuePage), intPtr(100), queries.MaxQueuePage, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewListAdminQueueQuery(nil, tc.page, tc.limit)

			require.NoError(t, err)
			assert.Equal(t, tc.expectedPage, query.Page())
			assert.Equal(t, tc.expectedLimit, query.Limit())
			assert.Equal(t, (tc.expectedPage-1)*tc.expectedLimit, query.Offset())
		})
	}
}

func TestListAdminQueueQuery_OffsetNeverOverflows(t *testing.T) {
	for _, page := range []int{math.MaxInt, math.MaxInt / 50, math.MaxInt / 100, math.MaxInt/100 + 1} {
		for _, limit := range []int{queries.MinQueueLimit, queries.DefaultQueueLimit, queries.MaxQueueLimit} {
			query, err := queries.NewListAdminQueueQuery(nil, intPtr(page), intPtr(limit))

			require.NoError(t, err)
			assert.LessOrEqual(t, query.Page(), queries.MaxQueuePage)
			assert.GreaterOrEqual(t, query.Offset(), 0, "page %d limit %d", page, limit)
		}
	}
}

func TestNewListAdminQueueQuery_Statuses(t *testing.T) {
	t.Run("duplicates are collapsed", func(t *testing.T) {
		query, err := queries.NewListAdminQueueQuery(
			[]order.Status{order.Paid, order.InProgress, order.Paid}, nil, nil)

		require.NoError(t, err)
		assert.Equal(t, []order.Status{order.Paid, order.InProgress}, query.Statuses())
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := queries.NewListAdminQueueQuery([]order.Status{order.Paid, order.Unknown}, nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestListAdminQueueQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.ListAdminQueueQuery{}

	require.ErrorIs(t, query.Validate(), queries.ErrListAdminQueueQueryIsNotConstructed)
}

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		total    int64
		limit    int
		expected int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 10, 10},
		{101, 10, 11},
		{5, 0, 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, queries.TotalPages(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}
