package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/v1/model/response"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// newMultipartContext 폼 필드와 썸네일 파일을 가진 multipart 요청 Context를 생성합니다.
func newMultipartContext(t *testing.T, fields map[string]string, file []byte) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		fw, err := w.CreateFormFile(thumbnailFileField, "thumb.png")
		require.NoError(t, err)
		_, err = fw.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())

	rec := httptest.NewRecorder()
	return rec, echo.New().NewContext(req, rec)
}

func TestCreateProductHandler_JSON(t *testing.T) {
	t.Parallel()

	t.Run("성공: 생성된 상품 반환", func(t *testing.T) {
		t.Parallel()

		h, d, _ := setupTestHandler(t)

		want := dashboard.Draft{Title: "Widget", Price: "19.99", Stock: "0"}
		created := catalog.Product{
			ID:                 195,
			Title:              "Widget",
			Price:              19.99,
			Stock:              10,
			Brand:              dashboard.DefaultBrand,
			AvailabilityStatus: dashboard.DefaultAvailabilityStatus,
			Thumbnail:          dashboard.PlaceholderThumbnail,
		}
		d.On("CreateProduct", mock.Anything, want).Return(created, nil).Once()

		rec, c := newContext(http.MethodPost, "/api/v1/products", `{"title":"Widget","price":"19.99","stock":"0"}`)
		require.NoError(t, h.CreateProductHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got catalog.Product
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, created, got)
	})

	t.Run("실패: 카탈로그 API 오류는 502", func(t *testing.T) {
		t.Parallel()

		h, d, _ := setupTestHandler(t)
		d.On("CreateProduct", mock.Anything, mock.Anything).
			Return(catalog.Product{}, apperrors.New(apperrors.Unavailable, "connection refused")).Once()

		_, c := newContext(http.MethodPost, "/api/v1/products", `{"title":"Widget"}`)
		requireHTTPError(t, h.CreateProductHandler(c), http.StatusBadGateway, "카탈로그 API 요청이 실패했습니다")
	})

	t.Run("성공: 숫자 항목을 숫자 타입으로 전송", func(t *testing.T) {
		t.Parallel()

		h, d, _ := setupTestHandler(t)
		d.On("CreateProduct", mock.Anything, dashboard.Draft{Title: "Widget", Price: "19.99", Stock: "5"}).
			Return(catalog.Product{ID: 195, Title: "Widget", Price: 19.99, Stock: 5}, nil).Once()

		rec, c := newContext(http.MethodPost, "/api/v1/products", `{"title":"Widget","price":19.99,"stock":5}`)
		require.NoError(t, h.CreateProductHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		d.AssertExpectations(t)
	})

	t.Run("실패: 잘못된 JSON 본문", func(t *testing.T) {
		t.Parallel()

		h, d, _ := setupTestHandler(t)

		_, c := newContext(http.MethodPost, "/api/v1/products", `{"title":`)
		requireHTTPError(t, h.CreateProductHandler(c), http.StatusBadRequest, "요청 본문을 파싱할 수 없습니다")
		d.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})
}

func TestCreateProductHandler_Multipart(t *testing.T) {
	t.Parallel()

	pngHeader := []byte("\x89PNG\r\n\x1a\n0000")

	t.Run("성공: 썸네일 파일을 data URL로 변환", func(t *testing.T) {
		t.Parallel()

		d := &mockDashboard{}
		reader := &stubImageReader{dataURL: "data:image/png;base64,AAAA"}
		h := New(d, &stubNotifications{}, reader)

		d.On("CreateProduct", mock.Anything, dashboard.Draft{
			Title:     "Lamp",
			Category:  "home-decoration",
			Thumbnail: "data:image/png;base64,AAAA",
		}).Return(catalog.Product{ID: 195, Title: "Lamp"}, nil).Once()

		rec, c := newMultipartContext(t, map[string]string{"title": "Lamp", "category": "home-decoration"}, pngHeader)
		require.NoError(t, h.CreateProductHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, pngHeader, reader.read)
		d.AssertExpectations(t)
	})

	t.Run("성공: 파일이 없으면 폼의 thumbnail 값 사용", func(t *testing.T) {
		t.Parallel()

		h, d, _ := setupTestHandler(t)
		d.On("CreateProduct", mock.Anything, dashboard.Draft{Title: "Lamp", Thumbnail: "https://example.com/a.png"}).
			Return(catalog.Product{ID: 195}, nil).Once()

		rec, c := newMultipartContext(t, map[string]string{"title": "Lamp", "thumbnail": "https://example.com/a.png"}, nil)
		require.NoError(t, h.CreateProductHandler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("실패: 이미지가 아닌 파일", func(t *testing.T) {
		t.Parallel()

		h, d, _ := setupTestHandler(t)

		_, c := newMultipartContext(t, map[string]string{"title": "Lamp"}, []byte("just some text"))
		requireHTTPError(t, h.CreateProductHandler(c), http.StatusBadRequest, "이미지 파일만 업로드할 수 있습니다")
		d.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	t.Parallel()

	confirmedCtx := mock.MatchedBy(func(ctx context.Context) bool {
		return dashboard.ContextConfirmer{}.Confirm(ctx, "")
	})
	unconfirmedCtx := mock.MatchedBy(func(ctx context.Context) bool {
		return !dashboard.ContextConfirmer{}.Confirm(ctx, "")
	})

	tests := []struct {
		name    string
		target  string
		id      string
		setup   func(*mockDashboard)
		deleted bool
	}{
		{
			name:    "성공: 확인 후 삭제",
			target:  "/api/v1/products/7?confirm=true",
			id:      "7",
			setup:   func(d *mockDashboard) { d.On("DeleteProduct", confirmedCtx, 7).Return(true).Once() },
			deleted: true,
		},
		{
			name:    "취소: confirm 없음",
			target:  "/api/v1/products/7",
			id:      "7",
			setup:   func(d *mockDashboard) { d.On("DeleteProduct", unconfirmedCtx, 7).Return(false).Once() },
			deleted: false,
		},
		{
			name:    "취소: confirm=false",
			target:  "/api/v1/products/7?confirm=false",
			id:      "7",
			setup:   func(d *mockDashboard) { d.On("DeleteProduct", unconfirmedCtx, 7).Return(false).Once() },
			deleted: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h, d, _ := setupTestHandler(t)
			tt.setup(d)

			rec, c := newContext(http.MethodDelete, tt.target, "")
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, h.DeleteProductHandler(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp response.DeleteProductResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.deleted, resp.Deleted)
		})
	}

	t.Run("실패: 정수가 아닌 ID", func(t *testing.T) {
		t.Parallel()

		h, _, _ := setupTestHandler(t)

		_, c := newContext(http.MethodDelete, "/api/v1/products/abc?confirm=true", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		requireHTTPError(t, h.DeleteProductHandler(c), http.StatusBadRequest, "상품 ID가 올바르지 않습니다")
	})
}

func TestEditProductHandler(t *testing.T) {
	t.Parallel()

	t.Run("접수: 본문의 ID 대신 경로의 ID 사용", func(t *testing.T) {
		t.Parallel()

		h, d, _ := setupTestHandler(t)
		d.On("EditProduct", catalog.Product{ID: 3, Title: "Renamed"}).Return().Once()

		rec, c := newContext(http.MethodPut, "/api/v1/products/3", `{"id":99,"title":"Renamed"}`)
		c.SetParamNames("id")
		c.SetParamValues("3")

		require.NoError(t, h.EditProductHandler(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.JSONEq(t, `{"result_code":0,"message":"접수됨"}`, rec.Body.String())
	})

	t.Run("접수: 본문 없음", func(t *testing.T) {
		t.Parallel()

		h, d, _ := setupTestHandler(t)
		d.On("EditProduct", catalog.Product{ID: 3}).Return().Once()

		rec, c := newContext(http.MethodPut, "/api/v1/products/3", "")
		c.SetParamNames("id")
		c.SetParamValues("3")

		require.NoError(t, h.EditProductHandler(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("실패: 정수가 아닌 ID", func(t *testing.T) {
		t.Parallel()

		h, _, _ := setupTestHandler(t)

		_, c := newContext(http.MethodPut, "/api/v1/products/x", `{}`)
		c.SetParamNames("id")
		c.SetParamValues("x")

		requireHTTPError(t, h.EditProductHandler(c), http.StatusBadRequest, "상품 ID가 올바르지 않습니다")
	})
}
