package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/inventory-dashboard/internal/service/api/middleware"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS TLS로 서비스하는 경우 Strict-Transport-Security 헤더를 추가합니다.
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration

	// RateLimitPerSecond IP별 초당 허용 요청 수. 0 이하이면 속도 제한을 적용하지 않습니다.
	RateLimitPerSecond int

	// RateLimitBurst 순간적으로 허용하는 요청 수. 0 이하이면 RateLimitPerSecond와 같은 값을 사용합니다.
	RateLimitBurst int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 핸들러와 다른 미들웨어에서 발생한 panic을 복구하고 로깅
//  2. RequestID - 요청마다 X-Request-ID 헤더 부여
//  3. Server 헤더 제거
//  4. HTTPLogger - 요청/응답 로깅 (민감한 쿼리 파라미터는 마스킹)
//  5. RateLimit - IP 기반 요청 제한 (설정된 경우에만)
//  6. BodyLimit - 요청 본문 크기 제한 (6MB, 썸네일 업로드 허용)
//  7. Timeout - 요청 처리 시간 제한
//  8. CORS
//  9. Secure - 보안 헤더
//
// 라우트 설정은 포함되지 않으며, 반환된 Echo 인스턴스에 별도로 설정해야 합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 프레임워크의 내부 로그를 애플리케이션 로거로 통합합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}

	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// RateLimit/Timeout 이전에 위치하여 429/503 에러도 기록합니다.
	e.Use(appmiddleware.HTTPLogger())
	if cfg.RateLimitPerSecond > 0 {
		burst := cfg.RateLimitBurst
		if burst <= 0 {
			burst = cfg.RateLimitPerSecond
		}
		e.Use(appmiddleware.RateLimit(cfg.RateLimitPerSecond, burst))
	}
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete},
	}))

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = 31536000
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
