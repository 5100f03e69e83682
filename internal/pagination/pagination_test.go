package pagination_test

import (
	"testing"

	"github.com/phrazzld/taskmgr-api/internal/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{
			name:         "in-range values pass through",
			page:         2,
			pageSize:     25,
			wantPage:     2,
			wantPageSize: 25,
		},
		{
			name:         "zero values become defaults",
			page:         0,
			pageSize:     0,
			wantPage:     1,
			wantPageSize: 10,
		},
		{
			name:         "negative values become defaults",
			page:         -1,
			pageSize:     -5,
			wantPage:     1,
			wantPageSize: 10,
		},
		{
			name:         "oversized page size clamps to maximum",
			page:         1,
			pageSize:     101,
			wantPage:     1,
			wantPageSize: 100,
		},
		{
			name:         "page size at maximum passes through",
			page:         1,
			pageSize:     100,
			wantPage:     1,
			wantPageSize: 100,
		},
		{
			name:         "large page number passes through",
			page:         9999,
			pageSize:     10,
			wantPage:     9999,
			wantPageSize: 10,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := pagination.Normalize(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := [][2]int{{-3, -3}, {0, 0}, {1, 10}, {5, 500}, {2, 100}}
	for _, in := range inputs {
		once := pagination.Normalize(in[0], in[1])
		twice := pagination.Normalize(once.Page, once.PageSize)
		assert.Equal(t, once, twice, "normalizing %v twice changed the result", in)
	}
}

func TestParamsOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pagination.Normalize(1, 10).Offset())
	assert.Equal(t, 10, pagination.Normalize(2, 10).Offset())
	assert.Equal(t, 90, pagination.Normalize(10, 10).Offset())
	assert.Equal(t, 25, pagination.Normalize(2, 25).Offset())
}

func TestNewEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		page            int
		pageSize        int
		totalCount      int64
		wantTotalPages  int
		wantHasNext     bool
		wantHasPrevious bool
	}{
		{
			name:           "empty collection has zero pages",
			page:           1,
			pageSize:       10,
			totalCount:     0,
			wantTotalPages: 0,
		},
		{
			name:           "exact multiple of page size",
			page:           1,
			pageSize:       10,
			totalCount:     20,
			wantTotalPages: 2,
			wantHasNext:    true,
		},
		{
			name:           "partial last page rounds up",
			page:           1,
			pageSize:       10,
			totalCount:     21,
			wantTotalPages: 3,
			wantHasNext:    true,
		},
		{
			name:            "middle page has both neighbours",
			page:            2,
			pageSize:        1,
			totalCount:      3,
			wantTotalPages:  3,
			wantHasNext:     true,
			wantHasPrevious: true,
		},
		{
			name:            "last page has no next",
			page:            3,
			pageSize:        1,
			totalCount:      3,
			wantTotalPages:  3,
			wantHasPrevious: true,
		},
		{
			name:            "page past the end has no next",
			page:            99,
			pageSize:        10,
			totalCount:      21,
			wantTotalPages:  3,
			wantHasPrevious: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := pagination.Normalize(tt.page, tt.pageSize)
			env := pagination.NewEnvelope([]string{}, params, tt.totalCount)

			assert.Equal(t, tt.page, env.Page)
			assert.Equal(t, tt.pageSize, env.PageSize)
			assert.Equal(t, tt.totalCount, env.TotalCount)
			assert.Equal(t, tt.wantTotalPages, env.TotalPages)
			assert.Equal(t, tt.wantHasNext, env.HasNextPage)
			assert.Equal(t, tt.wantHasPrevious, env.HasPreviousPage)
		})
	}
}
