package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/darkkaiser/inventory-dashboard/docs"
	"github.com/darkkaiser/inventory-dashboard/internal/config"
	"github.com/darkkaiser/inventory-dashboard/internal/pkg/version"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/inventory-dashboard/internal/service/api/v1"
	v1handler "github.com/darkkaiser/inventory-dashboard/internal/service/api/v1/handler"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/web"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	"github.com/darkkaiser/inventory-dashboard/internal/service/notification"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service 대시보드 웹 서버(JSON API, HTML 화면)의 생명주기를 관리하는 서비스입니다.
//
// Start로 시작하면 별도의 고루틴에서 HTTP 서버를 실행하고, serviceStopCtx가 취소되면
// ShutdownTimeout 안에서 Graceful Shutdown을 수행합니다.
type Service struct {
	appConfig *config.AppConfig

	controller    *dashboard.Controller
	notifications *notification.Center
	imageReader   dashboard.ImageReader

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, controller *dashboard.Controller, notifications *notification.Center, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if controller == nil {
		panic(constants.PanicMsgControllerRequired)
	}
	if notifications == nil {
		panic(constants.PanicMsgNotificationsRequired)
	}

	return &Service{
		appConfig: appConfig,

		controller:    controller,
		notifications: notifications,
		imageReader:   dashboard.DataURLImageReader{},

		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 실제 서버는 고루틴에서 실행됩니다.
// 이미 실행 중이면 serviceStopWG.Done()을 호출하고 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer Echo 서버를 생성하고 핸들러와 라우트를 등록합니다.
func (s *Service) setupServer() *echo.Echo {
	systemHandler := system.New(s.controller, s.buildInfo)
	v1Handler := v1handler.New(s.controller, s.notifications, s.imageReader)
	webHandler := web.New(s.controller, s.notifications, s.imageReader)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:              s.appConfig.Debug,
		EnableHSTS:         s.appConfig.HTTP.TLSServer,
		AllowOrigins:       s.appConfig.HTTP.CORS.AllowOrigins,
		RateLimitPerSecond: s.appConfig.HTTP.RateLimit.RequestsPerSecond,
		RateLimitBurst:     s.appConfig.HTTP.RateLimit.Burst,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)
	web.RegisterRoutes(e, webHandler)

	return e
}

// startHTTPServer HTTP/HTTPS 서버를 시작합니다. 서버가 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	port := s.appConfig.HTTP.ListenPort
	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": port,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	address := fmt.Sprintf(":%d", port)

	var err error
	if s.appConfig.HTTP.TLSServer {
		err = e.StartTLS(address, s.appConfig.HTTP.TLSCertFile, s.appConfig.HTTP.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError HTTP 서버 실행 중 발생한 에러를 처리합니다.
//
//   - nil, http.ErrServerClosed: 정상 종료
//   - 그 외: Error 레벨로 기록 (포트 충돌 등)
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

// waitForShutdown 종료 신호를 대기하고 Graceful Shutdown을 수행합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)
	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)

		s.cleanup()

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
