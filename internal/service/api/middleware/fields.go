package middleware

import (
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
)

// requestFields 미들웨어 로그에 공통으로 남기는 요청 정보입니다. request_id는 값이 있을 때만 포함합니다.
func requestFields(c echo.Context) applog.Fields {
	req := c.Request()

	fields := applog.Fields{
		"method":    req.Method,
		"path":      req.URL.Path,
		"remote_ip": c.RealIP(),
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		fields["request_id"] = id
	}

	return fields
}
