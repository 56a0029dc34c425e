// Package v1 대시보드 API의 v1 버전 라우트를 정의합니다.
//
// 주요 엔드포인트:
//   - GET    /api/v1/dashboard           - 대시보드 상태 조회
//   - PUT    /api/v1/dashboard/search    - 검색어 변경
//   - PUT    /api/v1/dashboard/category  - 카테고리 변경
//   - PUT    /api/v1/dashboard/page      - 페이지 이동
//   - POST   /api/v1/products            - 상품 등록
//   - PUT    /api/v1/products/:id        - 상품 수정 (미구현)
//   - DELETE /api/v1/products/:id        - 상품 삭제 (현재 목록에서만)
//   - DELETE /api/v1/notification/:id    - 알림 닫기
//   - GET    /api/v1/categories          - 카테고리 목록
//   - GET    /api/v1/sections            - 사이드바 메뉴 목록
package v1

import (
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/middleware"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 등록합니다.
//
// 본문이 있는 요청은 JSON만 허용하며, 상품 등록은 썸네일 업로드를 위해 multipart/form-data도 허용합니다.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	if h == nil {
		panic("v1 Handler는 필수입니다")
	}

	jsonOnly := middleware.ValidateContentType(echo.MIMEApplicationJSON)

	v1Group := e.Group("/api/v1")

	v1Group.GET("/dashboard", h.GetDashboardHandler)
	v1Group.PUT("/dashboard/search", h.SetSearchTermHandler, jsonOnly)
	v1Group.PUT("/dashboard/category", h.SetCategoryHandler, jsonOnly)
	v1Group.PUT("/dashboard/page", h.SetPageHandler, jsonOnly)

	v1Group.GET("/categories", h.CategoriesHandler)
	v1Group.GET("/sections", h.SectionsHandler)

	v1Group.POST("/products", h.CreateProductHandler,
		middleware.ValidateContentType(echo.MIMEApplicationJSON, echo.MIMEMultipartForm),
	)
	v1Group.PUT("/products/:id", h.EditProductHandler, jsonOnly)
	v1Group.DELETE("/products/:id", h.DeleteProductHandler)

	v1Group.DELETE("/notification/:id", h.DismissNotificationHandler)
}
