// Package web 대시보드의 상품 관리 화면을 서버에서 렌더링하는 HTML 핸들러를 제공합니다.
//
// 화면의 모든 동작(검색, 카테고리 선택, 페이지 이동, 상품 등록/삭제, 알림 닫기)은 form POST로 처리하고
// 처리 후 상품 화면(/)으로 리다이렉트합니다.
package web

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed templates/*.html
var templateFS embed.FS

const thumbnailFileField = "thumbnail_file"

// Dashboard 화면이 사용하는 대시보드 컨트롤러의 기능입니다.
type Dashboard interface {
	Snapshot() dashboard.Snapshot

	SetSearchTerm(term string)
	SetCategory(category string)
	SetPage(n int) bool

	CreateProduct(ctx context.Context, draft dashboard.Draft) (catalog.Product, error)
	DeleteProduct(ctx context.Context, id int) bool
	EditProduct(product catalog.Product)
}

// Notifications 표시 중인 알림을 닫는 기능입니다.
type Notifications interface {
	Dismiss(id string) bool
}

// Handler 상품 관리 화면 핸들러
type Handler struct {
	dashboard     Dashboard
	notifications Notifications
	imageReader   dashboard.ImageReader

	templates *template.Template
}

// New Handler 인스턴스를 생성합니다. imageReader가 nil이면 dashboard.DataURLImageReader를 사용합니다.
func New(d Dashboard, notifications Notifications, imageReader dashboard.ImageReader) *Handler {
	if d == nil {
		panic(constants.PanicMsgControllerRequired)
	}
	if notifications == nil {
		panic(constants.PanicMsgNotificationsRequired)
	}
	if imageReader == nil {
		imageReader = dashboard.DataURLImageReader{}
	}

	return &Handler{
		dashboard:     d,
		notifications: notifications,
		imageReader:   imageReader,

		templates: template.Must(template.New("").Funcs(newFuncMap(message.NewPrinter(language.English))).ParseFS(templateFS, "templates/*.html")),
	}
}

func newFuncMap(p *message.Printer) template.FuncMap {
	return template.FuncMap{
		"money": func(v float64) string {
			return p.Sprintf("$%.2f", v)
		},
		"number": func(v any) string {
			return p.Sprintf("%d", v)
		},
		"add": func(a, b int) int {
			return a + b
		},
		"thumbnail": thumbnailURL,
	}
}

// thumbnailURL 업로드된 이미지의 data URL도 img src에 그대로 사용할 수 있도록 허용합니다.
// http(s)와 data:image 이외의 값은 html/template의 기본 처리를 따릅니다.
func thumbnailURL(s string) any {
	if strings.HasPrefix(s, "data:image/") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://") {
		return template.URL(s)
	}
	return s
}

type layoutData struct {
	Title    string
	Sections []dashboard.Section
	Active   string
}

type productsPageData struct {
	layoutData
	dashboard.Snapshot

	RoundedTotalValue int64
	AvailabilityTypes []string
}

type comingSoonPageData struct {
	layoutData
}

func (h *Handler) log(c echo.Context) *applog.Entry {
	return applog.WithComponentAndFields(constants.ComponentWebHandler, applog.Fields{
		"path":       c.Request().URL.Path,
		"method":     c.Request().Method,
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	})
}

// render 템플릿 실행이 끝난 뒤에 응답을 전송합니다.
// 실행 중 오류가 발생하면 아무것도 쓰지 않은 상태로 에러를 반환하므로 에러 핸들러가 500 응답을 만듭니다.
func (h *Handler) render(c echo.Context, code int, name string, data any) error {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return apperrors.Wrapf(err, apperrors.Internal, "%s 템플릿을 렌더링할 수 없습니다", name)
	}

	return c.HTMLBlob(code, buf.Bytes())
}

func redirectHome(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

// ProductsPage 상품 관리 화면 (GET /)
func (h *Handler) ProductsPage(c echo.Context) error {
	snapshot := h.dashboard.Snapshot()

	return h.render(c, http.StatusOK, "products.html", productsPageData{
		layoutData: layoutData{
			Title:    dashboard.ProductsSection,
			Sections: dashboard.Sections(),
			Active:   "products",
		},
		Snapshot:          snapshot,
		RoundedTotalValue: snapshot.Stats.RoundedTotalValue(),
		AvailabilityTypes: []string{"In Stock", "Low Stock", "Out of Stock"},
	})
}

// SectionPage 사이드바 메뉴 화면 (GET /sections/:slug). Products는 상품 화면으로 이동하고 나머지는 준비 중 화면입니다.
func (h *Handler) SectionPage(c echo.Context) error {
	section, ok := dashboard.FindSection(c.Param("slug"))
	if !ok {
		return echo.ErrNotFound
	}
	if section.Implemented {
		return redirectHome(c)
	}

	return h.render(c, http.StatusOK, "coming_soon.html", comingSoonPageData{
		layoutData: layoutData{
			Title:    section.Title,
			Sections: dashboard.Sections(),
			Active:   section.Slug,
		},
	})
}

// Search 검색어 변경 (POST /search)
func (h *Handler) Search(c echo.Context) error {
	h.dashboard.SetSearchTerm(c.FormValue("term"))
	return redirectHome(c)
}

// Category 카테고리 변경 (POST /category)
func (h *Handler) Category(c echo.Context) error {
	h.dashboard.SetCategory(c.FormValue("category"))
	return redirectHome(c)
}

// Page 페이지 이동 (POST /page). 범위를 벗어난 페이지는 무시합니다.
func (h *Handler) Page(c echo.Context) error {
	n, err := strconv.Atoi(c.FormValue("page"))
	if err == nil {
		h.dashboard.SetPage(n)
	}
	return redirectHome(c)
}

// CreateProduct 상품 등록 (POST /products). 실패 시 알림은 컨트롤러가 표시합니다.
func (h *Handler) CreateProduct(c echo.Context) error {
	var draft dashboard.Draft
	if err := c.Bind(&draft); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, constants.ErrMsgBadRequest)
	}

	if thumbnail, err := h.readThumbnail(c); err != nil {
		h.log(c).WithError(err).Warn("썸네일 이미지를 읽을 수 없어 제외합니다")
	} else if thumbnail != "" {
		draft.Thumbnail = thumbnail
	}

	if _, err := h.dashboard.CreateProduct(c.Request().Context(), draft); err != nil {
		h.log(c).WithError(err).Warn("상품 등록 실패")
	}

	return redirectHome(c)
}

func (h *Handler) readThumbnail(c echo.Context) (string, error) {
	fh, err := c.FormFile(thumbnailFileField)
	if err != nil {
		// 파일을 첨부하지 않은 경우
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return h.imageReader.ReadAsDataURL(f)
}

// DeleteProduct 상품 삭제 (POST /products/:id/delete). 브라우저의 확인 대화상자를 통과한 요청만 confirm=true를 보냅니다.
func (h *Handler) DeleteProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, constants.ErrMsgBadRequestInvalidID)
	}

	ctx := dashboard.WithConfirmation(c.Request().Context(), c.FormValue("confirm") == "true")
	h.dashboard.DeleteProduct(ctx, id)

	return redirectHome(c)
}

// EditProduct 상품 수정 (POST /products/:id/edit). 아직 지원하지 않으므로 기록만 합니다.
func (h *Handler) EditProduct(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, constants.ErrMsgBadRequestInvalidID)
	}

	h.dashboard.EditProduct(catalog.Product{ID: id})

	return redirectHome(c)
}

// DismissNotification 알림 닫기 (POST /notification/:id/dismiss)
func (h *Handler) DismissNotification(c echo.Context) error {
	h.notifications.Dismiss(c.Param("id"))
	return redirectHome(c)
}
