package middleware

import (
	"errors"
	"net/http"
	"runtime"

	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
)

// maxStackTraceSize 로그에 남기는 스택 트레이스의 최대 크기 (4KB)
const maxStackTraceSize = 4 << 10

// PanicRecovery 핸들러 실행 중 발생한 panic을 에러 핸들러의 500 응답으로 바꾸는 미들웨어를 반환합니다.
//
// 복구한 값은 요청 정보, 스택 트레이스와 함께 Error 레벨로 기록합니다.
// http.ErrAbortHandler는 응답을 중단하라는 신호이므로 복구하지 않고 다시 panic을 일으킵니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if err, ok := r.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(r)
				}

				err := recoveredError(r)

				fields := requestFields(c)
				fields["error"] = err
				fields["stack"] = stackTrace()
				applog.WithComponentAndFields(constants.ComponentMiddlewarePanicRecovery, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(err)
			}()

			return next(c)
		}
	}
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return NewErrPanicRecovered(r)
}

func stackTrace() string {
	buf := make([]byte, maxStackTraceSize)
	return string(buf[:runtime.Stack(buf, false)])
}
