package request

// SearchRequest 검색어 변경 요청 (onSearchChange)
type SearchRequest struct {
	// 검색어 (빈 문자열이면 전체 목록)
	Term string `json:"term" form:"term" validate:"max=100" korean:"검색어" example:"phone"`
}

// CategoryRequest 카테고리 변경 요청 (onCategoryChange)
type CategoryRequest struct {
	// 카테고리 슬러그 (빈 문자열이면 전체 목록)
	Category string `json:"category" form:"category" validate:"max=100" korean:"카테고리" example:"smartphones"`
}

// PageRequest 페이지 이동 요청 (onPageChange)
//
// 범위를 벗어난 페이지는 400이 아니라 accepted=false로 응답합니다.
type PageRequest struct {
	// 이동할 페이지 번호 (1부터 시작)
	Page int `json:"page" form:"page" korean:"페이지" example:"2"`
}
