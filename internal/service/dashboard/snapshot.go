package dashboard

import (
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/darkkaiser/inventory-dashboard/internal/service/notification"
)

// PageSize 한 페이지에 표시하는 상품 수
const PageSize = 10

// QueryState 사용자가 지정한 조회 조건입니다.
//
// SearchTerm과 SelectedCategory는 동시에 값을 가질 수 없습니다.
type QueryState struct {
	SearchTerm       string `json:"search_term"`
	SelectedCategory string `json:"selected_category"`
	CurrentPage      int    `json:"current_page"`
}

// Snapshot 화면 표시 계층에 전달하는 컨트롤러 상태의 읽기 전용 복사본입니다.
type Snapshot struct {
	Items      []catalog.Product `json:"items"`
	TotalCount int               `json:"total_count"`
	PageSize   int               `json:"page_size"`

	QueryState

	TotalPages  int  `json:"total_pages"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
	ShowingFrom int  `json:"showing_from"`
	ShowingTo   int  `json:"showing_to"`

	Categories []string `json:"categories"`
	Loading    bool     `json:"loading"`

	Notification *notification.Notification `json:"notification"`

	Stats Stats `json:"stats"`
}

// totalPages ceil(totalCount / PageSize)
func totalPages(totalCount int) int {
	if totalCount <= 0 {
		return 0
	}
	return (totalCount + PageSize - 1) / PageSize
}

// showingRange "Showing a-b of N" 표시용 범위를 계산합니다. 결과가 없으면 (0, 0)입니다.
func showingRange(currentPage, totalCount int) (from, to int) {
	if totalCount <= 0 {
		return 0, 0
	}
	from = (currentPage-1)*PageSize + 1
	to = min(currentPage*PageSize, totalCount)
	return from, to
}
