package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"민감 정보 없음", "/api/v1/dashboard?page=2", "/api/v1/dashboard?page=2"},
		{"검색어는 그대로", "/?q=phone", "/?q=phone"},
		{"token 마스킹", "/api/v1/dashboard?token=secret123&page=2", "/api/v1/dashboard?page=2&token=secr%2A%2A%2A"},
		{"짧은 password", "/login?password=abc", "/login?password=%2A%2A%2A"},
		{"파싱 실패 시 원본", "/%zz?token=x", "/%zz?token=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger(t *testing.T) {
	hook := test.NewGlobal()
	t.Cleanup(hook.Reset)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories?token=secret123", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := HTTPLogger()(func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "teapot")
	})

	require.NoError(t, h(c), "에러는 Echo 에러 핸들러로 전달되고 nil이 반환되어야 합니다")
	assert.Equal(t, http.StatusTeapot, rec.Code)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "HTTP 요청", entry.Message)
	assert.Equal(t, constants.ComponentMiddlewareHTTPLogger, entry.Data["component"])
	assert.Equal(t, http.MethodGet, entry.Data["method"])
	assert.Equal(t, "/api/v1/categories", entry.Data["path"])
	assert.Equal(t, http.StatusTeapot, entry.Data["status"])
	assert.Equal(t, "0", entry.Data["bytes_in"])
	assert.NotContains(t, entry.Data["uri"], "secret123")
}
