package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/darkkaiser/inventory-dashboard/internal/pkg/version"
	systemhandler "github.com/darkkaiser/inventory-dashboard/internal/service/api/handler/system"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/model/system"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Helper Functions
// =============================================================================

type stubHealthChecker struct {
	health dashboard.Health
}

func (s stubHealthChecker) Health() dashboard.Health {
	return s.health
}

func setupTestHandler(health dashboard.Health) *systemhandler.Handler {
	return systemhandler.New(stubHealthChecker{health: health}, version.Info{
		Version:     "test-version",
		BuildDate:   "2026-10-01",
		BuildNumber: "1",
	})
}

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Path == path && r.Method == method {
			return true
		}
	}
	return false
}

// =============================================================================
// Unit Tests: System / Swagger Routes
// =============================================================================

func TestRegisterRoutes_System(t *testing.T) {
	t.Parallel()

	t.Run("시스템 라우트 등록 확인", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		RegisterRoutes(e, setupTestHandler(dashboard.Health{Reachable: true}))

		assert.True(t, hasRoute(e, http.MethodGet, "/health"))
		assert.True(t, hasRoute(e, http.MethodGet, "/version"))
	})

	t.Run("Health: 카탈로그 API 상태 반영", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name       string
			health     dashboard.Health
			wantStatus string
			wantMsg    string
		}{
			{
				name:       "조회 전",
				health:     dashboard.Health{Reachable: true},
				wantStatus: "healthy",
			},
			{
				name:       "조회 성공",
				health:     dashboard.Health{Reachable: true, LastFetchAt: time.Now()},
				wantStatus: "healthy",
			},
			{
				name:       "조회 실패",
				health:     dashboard.Health{Reachable: false, LastError: "connection refused", LastFetchAt: time.Now()},
				wantStatus: "unhealthy",
				wantMsg:    "connection refused",
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				e := echo.New()
				RegisterRoutes(e, setupTestHandler(tt.health))

				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
				require.Equal(t, http.StatusOK, rec.Code)

				var resp system.HealthResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantStatus, resp.Status)
				require.Contains(t, resp.Dependencies, "catalog_api")
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, resp.Dependencies["catalog_api"].Message)
				}
			})
		}
	})

	t.Run("Version 엔드포인트 동작 확인", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		RegisterRoutes(e, setupTestHandler(dashboard.Health{Reachable: true}))

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp system.VersionResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "test-version", resp.Version)
		assert.Equal(t, "2026-10-01", resp.BuildDate)
		assert.NotEmpty(t, resp.GoVersion)
	})
}

func TestRegisterRoutes_Swagger(t *testing.T) {
	t.Parallel()

	e := echo.New()
	RegisterRoutes(e, setupTestHandler(dashboard.Health{Reachable: true}))

	assert.True(t, hasRoute(e, http.MethodGet, "/swagger/*"))

	t.Run("Swagger UI", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	})

	t.Run("Swagger 문서", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/dashboard/search")
		assert.Contains(t, rec.Body.String(), "/products/{id}")
	})
}

// =============================================================================
// Integration Tests: Complete Route Setup
// =============================================================================

func TestRegisterRoutes(t *testing.T) {
	t.Parallel()

	e := echo.New()
	RegisterRoutes(e, setupTestHandler(dashboard.Health{Reachable: true}))

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/health"},
		{http.MethodHead, "/health"},
		{http.MethodGet, "/version"},
		{http.MethodGet, "/swagger"},
		{http.MethodGet, "/swagger/*"},
	} {
		assert.True(t, hasRoute(e, r.method, r.path), "라우트 %s %s가 등록되어야 합니다", r.method, r.path)
	}

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"Health 체크", http.MethodGet, "/health", http.StatusOK},
		{"Health 체크 (HEAD)", http.MethodHead, "/health", http.StatusOK},
		{"Version 정보", http.MethodGet, "/version", http.StatusOK},
		{"Swagger 문서 화면으로 이동", http.MethodGet, "/swagger", http.StatusMovedPermanently},
		{"잘못된 HTTP 메서드", http.MethodPost, "/health", http.StatusMethodNotAllowed},
		{"존재하지 않는 경로", http.MethodGet, "/nonexistent", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRegisterRoutes_PanicOnNilHandler(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		RegisterRoutes(echo.New(), nil)
	})
}
