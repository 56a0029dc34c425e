package middleware

import (
	"mime"
	"slices"

	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
)

// ValidateContentType 요청 본문의 Content-Type이 허용 목록에 있는지 검증하는 미들웨어를 반환합니다.
//
// 본문이 없는 요청은 검증하지 않습니다. MIME 파라미터(charset, boundary 등)는 비교에서 제외합니다.
//
// Returns:
//   - 415 Unsupported Media Type: Content-Type이 허용 목록에 없는 경우
func ValidateContentType(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err != nil || !slices.Contains(allowed, mediaType) {
				applog.WithComponentAndFields(constants.ComponentMiddlewareContentType, applog.Fields{
					"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
					"method":     req.Method,
					"path":       req.URL.Path,
					"expected":   allowed,
					"actual":     contentType,
					"remote_ip":  c.RealIP(),
				}).Warn(constants.LogMsgUnsupportedContentType)

				return ErrUnsupportedMediaType
			}

			return next(c)
		}
	}
}
