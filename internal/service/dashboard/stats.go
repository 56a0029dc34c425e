package dashboard

import (
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/shopspring/decimal"
)

// lowStockThreshold 재고 부족으로 분류하는 재고 수량 기준 (미만)
const lowStockThreshold = 10

// Stats 대시보드 상단의 요약 지표입니다.
//
// LowStock과 TotalValue는 현재 페이지의 상품만으로 계산하므로 전체 카탈로그 기준 값이 아닙니다.
type Stats struct {
	TotalProducts int `json:"total_products"`
	InStock       int `json:"in_stock"`
	LowStock      int `json:"low_stock"`

	// TotalValue 현재 페이지 상품의 가격 × 재고 합계
	TotalValue decimal.Decimal `json:"total_value"`
}

func computeStats(items []catalog.Product, totalCount int) Stats {
	lowStock := 0
	totalValue := decimal.Zero
	for _, p := range items {
		if p.Stock < lowStockThreshold {
			lowStock++
		}
		totalValue = totalValue.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(p.Stock))))
	}

	return Stats{
		TotalProducts: totalCount,
		InStock:       totalCount - lowStock,
		LowStock:      lowStock,
		TotalValue:    totalValue,
	}
}

// RoundedTotalValue 화면 표시용으로 정수 단위로 반올림한 TotalValue입니다.
func (s Stats) RoundedTotalValue() int64 {
	return s.TotalValue.Round(0).IntPart()
}
