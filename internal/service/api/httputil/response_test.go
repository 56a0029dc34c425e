package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorResponses 모든 에러 응답 헬퍼 함수를 검증합니다.
func TestErrorResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		createError    func(string) error
		message        string
		expectedStatus int
	}{
		{"BadRequest", NewBadRequestError, constants.ErrMsgBadRequest, http.StatusBadRequest},
		{"BadRequest_빈 메시지", NewBadRequestError, "", http.StatusBadRequest},
		{"NotFound", NewNotFoundError, constants.ErrMsgNotFound, http.StatusNotFound},
		{"TooManyRequests", NewTooManyRequestsError, constants.ErrMsgTooManyRequests, http.StatusTooManyRequests},
		{"InternalServerError", NewInternalServerError, constants.ErrMsgInternalServer, http.StatusInternalServerError},
		{"BadGateway", NewBadGatewayError, constants.ErrMsgCatalogRequestFailed, http.StatusBadGateway},
		{"ServiceUnavailable", NewServiceUnavailableError, constants.ErrMsgServiceUnavailable, http.StatusServiceUnavailable},
		{"특수문자", NewBadRequestError, "특수문자: <>&\"'\n\t", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.createError(tt.message)

			he, ok := err.(*echo.HTTPError)
			require.True(t, ok, "echo.HTTPError 타입이어야 합니다")
			assert.Equal(t, tt.expectedStatus, he.Code)

			body, ok := he.Message.(response.ErrorResponse)
			require.True(t, ok, "메시지는 ErrorResponse 타입이어야 합니다")
			assert.Equal(t, tt.expectedStatus, body.ResultCode)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestNewSuccessResponse(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewSuccessResponse(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp response.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.ResultCode)
	assert.Equal(t, "성공", resp.Message)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON))
}
