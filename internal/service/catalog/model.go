package catalog

// Product 원격 카탈로그 API가 반환하는 상품 정보입니다. JSON 필드명은 원격 API를 따릅니다.
type Product struct {
	ID                 int     `json:"id"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand"`
	AvailabilityStatus string  `json:"availabilityStatus"`
	Thumbnail          string  `json:"thumbnail"`
}

// NewProduct 상품 생성 요청 본문입니다.
type NewProduct struct {
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	Category           string  `json:"category"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Brand              string  `json:"brand"`
	AvailabilityStatus string  `json:"availabilityStatus"`
	Thumbnail          string  `json:"thumbnail"`
}

// Query 상품 페이지 조회 조건입니다.
//
// SearchTerm과 Category가 모두 지정되면 SearchTerm이 우선합니다.
type Query struct {
	SearchTerm string
	Category   string
	Limit      int
	Skip       int
}

// Page 조회된 상품 목록과 조건에 맞는 전체 상품 수입니다.
type Page struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}
