package web

import "github.com/labstack/echo/v4"

// RegisterRoutes 상품 관리 화면과 사이드바 메뉴 화면의 라우트를 등록합니다.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", h.ProductsPage)
	e.GET("/sections/:slug", h.SectionPage)

	e.POST("/search", h.Search)
	e.POST("/category", h.Category)
	e.POST("/page", h.Page)

	e.POST("/products", h.CreateProduct)
	e.POST("/products/:id/delete", h.DeleteProduct)
	e.POST("/products/:id/edit", h.EditProduct)

	e.POST("/notification/:id/dismiss", h.DismissNotification)
}
