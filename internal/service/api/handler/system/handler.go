// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 대시보드 상태와 무관한 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/inventory-dashboard/internal/pkg/version"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/model/system"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthChecker 원격 카탈로그 API의 상태를 보고하는 협력자 (dashboard.Controller)
type HealthChecker interface {
	Health() dashboard.Health
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	healthChecker HealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// New Handler 인스턴스를 생성합니다.
func New(healthChecker HealthChecker, buildInfo version.Info) *Handler {
	if healthChecker == nil {
		panic(constants.PanicMsgControllerRequired)
	}

	return &Handler{
		healthChecker: healthChecker,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버 가동 시간과 원격 카탈로그 API의 상태를 반환합니다.
// @Description 카탈로그 API 상태는 마지막 상품 조회 결과를 기준으로 판단하며, 헬스체크 자체는 원격 API를 호출하지 않습니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	health := h.healthChecker.Health()

	dep := system.DependencyStatus{
		Status:  constants.HealthStatusHealthy,
		Message: constants.MsgDepStatusHealthy,
	}
	if !health.Reachable {
		dep.Status = constants.HealthStatusUnhealthy
		dep.Message = health.LastError
	}
	if health.LastFetchAt.IsZero() {
		dep.Message = constants.MsgDepStatusNotQueried
	} else {
		dep.LastCheckedAt = health.LastFetchAt.Format(time.RFC3339)
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status: dep.Status,
		Uptime: int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: map[string]system.DependencyStatus{
			constants.DependencyCatalogAPI: dep,
		},
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 버전, Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
