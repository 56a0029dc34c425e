package dashboard

import (
	"testing"

	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	t.Parallel()

	t.Run("빈 목록", func(t *testing.T) {
		t.Parallel()

		s := computeStats(nil, 0)
		assert.Zero(t, s.TotalProducts)
		assert.Zero(t, s.LowStock)
		assert.True(t, s.TotalValue.IsZero())
		assert.Zero(t, s.RoundedTotalValue())
	})

	t.Run("재고 부족 기준은 10 미만", func(t *testing.T) {
		t.Parallel()

		items := []catalog.Product{
			{Price: 1, Stock: 9},
			{Price: 1, Stock: 10},
			{Price: 1, Stock: 0},
		}

		s := computeStats(items, 194)
		assert.Equal(t, 194, s.TotalProducts)
		assert.Equal(t, 2, s.LowStock)
		assert.Equal(t, 192, s.InStock)
		assert.Equal(t, "19", s.TotalValue.String())
	})

	t.Run("소수 가격 합계", func(t *testing.T) {
		t.Parallel()

		items := []catalog.Product{
			{Price: 0.1, Stock: 3},
			{Price: 0.2, Stock: 3},
		}

		s := computeStats(items, 2)
		assert.Equal(t, "0.9", s.TotalValue.String())
		assert.EqualValues(t, 1, s.RoundedTotalValue())
	})
}

func TestPagination(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, totalPages(0))
	assert.Equal(t, 1, totalPages(5))
	assert.Equal(t, 1, totalPages(10))
	assert.Equal(t, 2, totalPages(11))
	assert.Equal(t, 20, totalPages(194))

	tests := []struct {
		page, total      int
		wantFrom, wantTo int
	}{
		{1, 0, 0, 0},
		{1, 5, 1, 5},
		{1, 194, 1, 10},
		{20, 194, 191, 194},
		{3, 25, 21, 25},
	}
	for _, tt := range tests {
		from, to := showingRange(tt.page, tt.total)
		assert.Equal(t, tt.wantFrom, from, "page=%d total=%d", tt.page, tt.total)
		assert.Equal(t, tt.wantTo, to, "page=%d total=%d", tt.page, tt.total)
	}
}
