// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 각 핸들러는 요청을 바인딩하고 검증한 뒤 대시보드 컨트롤러를 호출하여 결과를 JSON으로 반환합니다.
package handler

import (
	"context"

	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
)

// Dashboard 핸들러가 호출하는 대시보드 컨트롤러의 기능입니다.
type Dashboard interface {
	Snapshot() dashboard.Snapshot
	Categories() []string

	SetSearchTerm(term string)
	SetCategory(category string)
	SetPage(n int) bool

	CreateProduct(ctx context.Context, draft dashboard.Draft) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int) bool
	EditProduct(product catalog.Product)
}

// Notifications 표시 중인 알림을 닫는 기능입니다.
type Notifications interface {
	Dismiss(id string) bool
}

// Handler v1 API 요청을 대시보드 컨트롤러로 연결하는 핸들러입니다.
type Handler struct {
	dashboard     Dashboard
	notifications Notifications
	imageReader   dashboard.ImageReader
}

// New Handler 인스턴스를 생성합니다. imageReader가 nil이면 dashboard.DataURLImageReader를 사용합니다.
func New(d Dashboard, notifications Notifications, imageReader dashboard.ImageReader) *Handler {
	if d == nil {
		panic(constants.PanicMsgControllerRequired)
	}
	if notifications == nil {
		panic(constants.PanicMsgNotificationsRequired)
	}
	if imageReader == nil {
		imageReader = dashboard.DataURLImageReader{}
	}

	return &Handler{
		dashboard:     d,
		notifications: notifications,
		imageReader:   imageReader,
	}
}

// log 공통 로깅 필드가 설정된 로거 엔트리를 반환합니다.
func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
