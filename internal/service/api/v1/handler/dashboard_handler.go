package handler

import (
	"net/http"

	"github.com/darkkaiser/inventory-dashboard/internal/pkg/validator"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/v1/model/request"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/v1/model/response"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
)

// GetDashboardHandler godoc
// @Summary 대시보드 상태 조회
// @Description 현재 페이지의 상품 목록, 전체 상품 수, 조회 조건, 페이지 정보, 카테고리, 알림, 요약 지표를 반환합니다.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dashboard.Snapshot "대시보드 상태"
// @Router /api/v1/dashboard [get]
func (h *Handler) GetDashboardHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.dashboard.Snapshot())
}

// SetSearchTermHandler godoc
// @Summary 검색어 변경
// @Description 검색어를 변경합니다. 카테고리 선택은 해제되고 1페이지로 이동합니다.
// @Description 조회는 입력이 멈춘 뒤 debounce 시간이 지나면 한 번 실행됩니다.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body request.SearchRequest true "검색어"
// @Success 200 {object} dashboard.Snapshot "변경 직후의 대시보드 상태"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/dashboard/search [put]
func (h *Handler) SetSearchTermHandler(c echo.Context) error {
	req := new(request.SearchRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	h.dashboard.SetSearchTerm(req.Term)

	h.log(c).WithField("search_term", req.Term).Debug("검색어 변경")

	return c.JSON(http.StatusOK, h.dashboard.Snapshot())
}

// SetCategoryHandler godoc
// @Summary 카테고리 변경
// @Description 카테고리를 변경합니다. 검색어는 지워지고 1페이지로 이동합니다.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body request.CategoryRequest true "카테고리"
// @Success 200 {object} dashboard.Snapshot "변경 직후의 대시보드 상태"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/dashboard/category [put]
func (h *Handler) SetCategoryHandler(c echo.Context) error {
	req := new(request.CategoryRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}
	if err := validator.Struct(req); err != nil {
		return NewErrValidationFailed(validator.FormatValidationError(err))
	}

	h.dashboard.SetCategory(req.Category)

	h.log(c).WithField("category", req.Category).Debug("카테고리 변경")

	return c.JSON(http.StatusOK, h.dashboard.Snapshot())
}

// SetPageHandler godoc
// @Summary 페이지 이동
// @Description 1 이상 전체 페이지 수 이하인 경우에만 이동하고 accepted=true를 반환합니다.
// @Description 범위를 벗어나면 상태를 바꾸지 않고 accepted=false를 반환합니다.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param body body request.PageRequest true "페이지 번호"
// @Success 200 {object} response.PageChangeResponse "처리 결과"
// @Failure 400 {object} response.ErrorResponse "잘못된 요청"
// @Router /api/v1/dashboard/page [put]
func (h *Handler) SetPageHandler(c echo.Context) error {
	req := new(request.PageRequest)
	if err := c.Bind(req); err != nil {
		return NewErrInvalidBody()
	}

	accepted := h.dashboard.SetPage(req.Page)

	h.log(c).WithFields(applog.Fields{
		"page":     req.Page,
		"accepted": accepted,
	}).Debug("페이지 이동 요청")

	return c.JSON(http.StatusOK, response.PageChangeResponse{Accepted: accepted})
}

// CategoriesHandler godoc
// @Summary 카테고리 목록
// @Description 시작 시 한 번 불러온 카테고리 목록을 반환합니다. 불러오지 못했으면 빈 목록입니다.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.CategoriesResponse "카테고리 목록"
// @Router /api/v1/categories [get]
func (h *Handler) CategoriesHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.CategoriesResponse{Categories: h.dashboard.Categories()})
}

// SectionsHandler godoc
// @Summary 사이드바 메뉴 목록
// @Description Products 외의 메뉴는 준비 중(implemented=false)입니다.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.SectionsResponse "메뉴 목록"
// @Router /api/v1/sections [get]
func (h *Handler) SectionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SectionsResponse{Sections: dashboard.Sections()})
}

// DismissNotificationHandler godoc
// @Summary 알림 닫기
// @Description 표시 중인 알림을 자동으로 사라지기 전에 닫습니다.
// @Tags Dashboard
// @Param id path string true "알림 ID"
// @Success 204 "닫힘"
// @Failure 404 {object} response.ErrorResponse "표시 중인 알림이 아님"
// @Router /api/v1/notification/{id} [delete]
func (h *Handler) DismissNotificationHandler(c echo.Context) error {
	if !h.notifications.Dismiss(c.Param("id")) {
		return NewErrNotificationNotFound()
	}
	return c.NoContent(http.StatusNoContent)
}
