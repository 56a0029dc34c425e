package dashboard

import (
	"context"
	"sync"

	"github.com/darkkaiser/inventory-dashboard/internal/service/notification"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
)

const serviceComponent = "dashboard.service"

// Service 컨트롤러와 알림 저장소의 생명주기를 애플리케이션 서비스 규약에 맞춰 관리합니다.
type Service struct {
	controller    *Controller
	notifications *notification.Center

	running   bool
	runningMu sync.Mutex
}

func NewService(controller *Controller, notifications *notification.Center) *Service {
	return &Service{
		controller:    controller,
		notifications: notifications,
	}
}

// Start 카테고리를 불러오고 첫 조회를 예약합니다. serviceStopCtx가 취소되면 예약된 조회와 알림 타이머를 정리합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(serviceComponent).Info("Dashboard 서비스 시작중...")

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(serviceComponent).Warn("Dashboard 서비스가 이미 시작됨!!!")
		return nil
	}

	s.controller.Start(serviceStopCtx)

	go s.waitForShutdown(serviceStopCtx, serviceStopWG)

	s.running = true

	applog.WithComponent(serviceComponent).Info("Dashboard 서비스 시작됨")

	return nil
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	<-serviceStopCtx.Done()

	applog.WithComponent(serviceComponent).Info("Dashboard 서비스 중지중...")

	s.controller.Close()
	s.notifications.Close()

	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(serviceComponent).Info("Dashboard 서비스 중지됨")
}
