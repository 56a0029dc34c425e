// Package response v1 API의 응답 본문을 정의합니다.
package response

import (
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
)

// PageChangeResponse 페이지 이동 요청 결과
type PageChangeResponse struct {
	// 요청한 페이지로 이동했는지 여부
	Accepted bool `json:"accepted" example:"true"`
}

// DeleteProductResponse 상품 삭제 요청 결과
type DeleteProductResponse struct {
	// 목록에서 제거했는지 여부 (확인하지 않았으면 false)
	Deleted bool `json:"deleted" example:"true"`
}

// CategoriesResponse 카테고리 목록
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// SectionsResponse 사이드바 메뉴 목록
type SectionsResponse struct {
	Sections []dashboard.Section `json:"sections"`
}
