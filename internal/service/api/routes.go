package api

import (
	"net/http"

	"github.com/darkkaiser/inventory-dashboard/internal/service/api/handler/system"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	swaggerIndexPath = "/swagger/index.html"
	swaggerDocPath   = "/swagger/doc.json"
)

// RegisterRoutes 대시보드 API와 화면 라우트 외의 운영용 라우트를 등록합니다.
//
//   - GET, HEAD /health: 카탈로그 API 연결 상태를 포함한 서비스 상태
//   - GET /version: 빌드 정보
//   - GET /swagger/*: API 문서 (/swagger는 문서 화면으로 이동)
func RegisterRoutes(e *echo.Echo, h *system.Handler) {
	if h == nil {
		panic("system Handler는 필수입니다")
	}

	e.Match([]string{http.MethodGet, http.MethodHead}, "/health", h.HealthCheckHandler)
	e.GET("/version", h.VersionHandler)

	e.GET("/swagger", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, swaggerIndexPath)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL(swaggerDocPath),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
	))
}
