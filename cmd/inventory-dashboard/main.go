package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/inventory-dashboard/internal/config"
	"github.com/darkkaiser/inventory-dashboard/internal/pkg/version"
	"github.com/darkkaiser/inventory-dashboard/internal/service"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog/fetcher"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	"github.com/darkkaiser/inventory-dashboard/internal/service/notification"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Inventory Dashboard API
// @version 1.0.0
// @description 상품 재고 관리 대시보드의 조회 상태를 제어하는 API입니다.
// @description
// @description 상품 목록은 원격 카탈로그 API(DummyJSON)에서 페이지 단위(10개)로 조회합니다.
// @description 검색어와 카테고리는 동시에 적용되지 않으며, 조회는 입력이 멈춘 뒤 실행됩니다.
// @description
// @description ## 주요 기능
// @description - 검색어, 카테고리, 페이지 변경
// @description - 상품 등록 (목록 맨 앞에 즉시 추가)
// @description - 상품 삭제 (현재 목록에서만 제거)

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

const (
	banner = `
  ___                      _                      ____            _     _                         _
 |_ _| _ __  __   __  ___ | |_  ___   _ __  _   _|  _ \  __ _ ___| |__ | |__   ___   __ _ _ __ __| |
  | | | '_ \ \ \ / / / _ \| __|/ _ \ | '__|| | | | | | |/ _' / __| '_ \| '_ \ / _ \ / _' | '__/ _' |
  | | | | | | \ V / |  __/| |_| (_) || |   | |_| | |_| | (_| \__ \ | | | |_) | (_) | (_| | | | (_| |
 |___||_| |_|  \_/   \___| \__|\___/ |_|    \__, |____/ \__,_|___/_| |_|_.__/ \___/ \__,_|_|  \__,_|
                                            |___/                                        %s
                                                                          developed by DarkKaiser
----------------------------------------------------------------------------------------------------
`
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	configFile := config.DefaultFilename
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	} else {
		logOpts = applog.NewProductionOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	serviceStopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	run(serviceStopCtx, appConfig, buildInfo)
}

// run 서비스를 구성하여 시작하고, ctx가 취소되면 모든 서비스가 종료될 때까지 기다립니다.
func run(ctx context.Context, appConfig *config.AppConfig, buildInfo version.Info) {
	catalogClient := newCatalogClient(appConfig, buildInfo)
	defer catalogClient.Close()

	notifications := notification.NewCenter(appConfig.Dashboard.NotificationDuration)
	controller := dashboard.NewController(catalogClient, notifications, nil, dashboard.Options{
		DebounceDelay:         appConfig.Dashboard.DebounceDelay,
		DiscardStaleResponses: appConfig.Dashboard.DiscardStaleResponses,
	})

	services := []service.Service{
		dashboard.NewService(controller, notifications),
		api.NewService(appConfig, controller, notifications, buildInfo),
	}

	serviceStopCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	serviceStopWG := &sync.WaitGroup{}

	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			return
		}
	}

	applog.WithComponent("main").Info("서버 가동 완료")

	<-serviceStopCtx.Done()

	applog.WithComponent("main").Info("Shutdown signal received")
	serviceStopWG.Wait()
}

// newCatalogClient 설정에 따라 Fetcher 체인을 조립하고 카탈로그 API 클라이언트를 생성합니다.
func newCatalogClient(appConfig *config.AppConfig, buildInfo version.Info) *catalog.Client {
	f := fetcher.NewFromConfig(fetcher.Config{
		Timeout:       appConfig.Catalog.Timeout,
		MaxRetries:    appConfig.Catalog.MaxRetries,
		MinRetryDelay: appConfig.Catalog.RetryDelay,
		MaxRetryDelay: 10 * appConfig.Catalog.RetryDelay,
		MaxBytes:      appConfig.Catalog.MaxResponseBytes,
		UserAgent:     config.AppName + "/" + buildInfo.Version,
	})

	return catalog.New(appConfig.Catalog.BaseURL, f)
}
