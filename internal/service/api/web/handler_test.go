package web

import (
	"bytes"
	"context"
	"html/template"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/httputil"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/darkkaiser/inventory-dashboard/internal/service/dashboard"
	"github.com/darkkaiser/inventory-dashboard/internal/service/notification"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

type stubDashboard struct {
	mu sync.Mutex

	snapshot dashboard.Snapshot

	searchTerms []string
	categories  []string
	pages       []int
	drafts      []dashboard.Draft
	deleted     []int
	confirmed   []bool
	edited      []int
	createErr   error
}

func (s *stubDashboard) Snapshot() dashboard.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

func (s *stubDashboard) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchTerms = append(s.searchTerms, term)
}

func (s *stubDashboard) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append(s.categories, category)
}

func (s *stubDashboard) SetPage(n int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages = append(s.pages, n)
	return true
}

func (s *stubDashboard) CreateProduct(_ context.Context, draft dashboard.Draft) (catalog.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts = append(s.drafts, draft)
	return catalog.Product{ID: 195, Title: draft.Title}, s.createErr
}

func (s *stubDashboard) DeleteProduct(ctx context.Context, id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := dashboard.ContextConfirmer{}.Confirm(ctx, dashboard.DeleteConfirmMessage)
	s.deleted = append(s.deleted, id)
	s.confirmed = append(s.confirmed, ok)
	return ok
}

func (s *stubDashboard) EditProduct(product catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.edited = append(s.edited, product.ID)
}

type stubNotifications struct {
	dismissed []string
}

func (s *stubNotifications) Dismiss(id string) bool {
	s.dismissed = append(s.dismissed, id)
	return true
}

type stubImageReader struct {
	dataURL string
	err     error
}

func (s stubImageReader) ReadAsDataURL(io.Reader) (string, error) {
	return s.dataURL, s.err
}

func setupTestServer(t *testing.T, d *stubDashboard, n *stubNotifications, r dashboard.ImageReader) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	RegisterRoutes(e, New(d, n, r))
	return e
}

func getDocument(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return rec, doc
}

func postForm(e *echo.Echo, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func lastPageSnapshot() dashboard.Snapshot {
	return dashboard.Snapshot{
		Items: []catalog.Product{
			{ID: 21, Title: "MacBook Pro", Category: "laptops", Price: 1299.99, Stock: 5, Brand: "Apple", AvailabilityStatus: "Low Stock"},
			{ID: 22, Title: "Mouse", Category: "laptops", Price: 19.5, Stock: 40, AvailabilityStatus: "In Stock"},
		},
		TotalCount:  22,
		PageSize:    dashboard.PageSize,
		QueryState:  dashboard.QueryState{SelectedCategory: "laptops", CurrentPage: 3},
		TotalPages:  3,
		HasPrev:     true,
		HasNext:     false,
		ShowingFrom: 21,
		ShowingTo:   22,
		Categories:  []string{"beauty", "laptops"},
		Notification: &notification.Notification{
			ID:      "n-1",
			Kind:    notification.Success,
			Message: "Product added successfully!",
		},
		Stats: dashboard.Stats{
			TotalProducts: 22,
			InStock:       21,
			LowStock:      1,
			TotalValue:    decimal.RequireFromString("7279.95"),
		},
	}
}

// =============================================================================
// Page Rendering Tests
// =============================================================================

func TestProductsPage(t *testing.T) {
	t.Parallel()

	e := setupTestServer(t, &stubDashboard{snapshot: lastPageSnapshot()}, &stubNotifications{}, nil)
	rec, doc := getDocument(t, e, "/")

	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	t.Run("KPI 카드", func(t *testing.T) {
		assert.Equal(t, "22", doc.Find("#kpi-total .value").Text())
		assert.Equal(t, "21", doc.Find("#kpi-in-stock .value").Text())
		assert.Equal(t, "1", doc.Find("#kpi-low-stock .value").Text())
		assert.Equal(t, "$7,280", doc.Find("#kpi-value .value").Text())
	})

	t.Run("상품 목록", func(t *testing.T) {
		rows := doc.Find("#products tbody tr")
		require.Equal(t, 2, rows.Length())

		first := rows.First()
		assert.Equal(t, "21", first.AttrOr("data-id", ""))
		assert.Contains(t, first.Find(".title").Text(), "MacBook Pro")
		assert.Equal(t, "$1,299.99", first.Find(".price").Text())
		assert.Equal(t, "5", first.Find(".stock").Text())
	})

	t.Run("페이지 정보와 버튼 상태", func(t *testing.T) {
		assert.Equal(t, "Showing 21-22 of 22", doc.Find("#showing").Text())
		assert.Equal(t, "Page 3 of 3", doc.Find("#page-indicator").Text())

		_, nextDisabled := doc.Find("#next").Attr("disabled")
		assert.True(t, nextDisabled, "마지막 페이지에서는 Next 버튼이 비활성화되어야 합니다")
		_, prevDisabled := doc.Find("#prev").Attr("disabled")
		assert.False(t, prevDisabled)
		assert.Equal(t, "2", doc.Find("#prev").Parent().Find("input[name=page]").AttrOr("value", ""))
	})

	t.Run("필터 상태", func(t *testing.T) {
		assert.Equal(t, "laptops", doc.Find("#category-form option[selected]").AttrOr("value", ""))
		assert.Equal(t, "", doc.Find("#search-form input[name=term]").AttrOr("value", "x"))
	})

	t.Run("알림", func(t *testing.T) {
		toast := doc.Find("#toast")
		require.Equal(t, 1, toast.Length())
		assert.True(t, toast.HasClass("success"))
		assert.Contains(t, toast.Text(), "Product added successfully!")
		assert.Equal(t, "/notification/n-1/dismiss", toast.Find("form").AttrOr("action", ""))
	})

	t.Run("사이드바", func(t *testing.T) {
		links := doc.Find("nav.sidebar a")
		assert.Equal(t, 6, links.Length())
		assert.Equal(t, "products", doc.Find("nav.sidebar a.active").AttrOr("data-slug", ""))
	})
}

func TestProductsPage_Empty(t *testing.T) {
	t.Parallel()

	snapshot := dashboard.Snapshot{
		Items:      []catalog.Product{},
		PageSize:   dashboard.PageSize,
		QueryState: dashboard.QueryState{SearchTerm: "zzz", CurrentPage: 1},
		Categories: []string{},
		Loading:    true,
	}
	e := setupTestServer(t, &stubDashboard{snapshot: snapshot}, &stubNotifications{}, nil)
	_, doc := getDocument(t, e, "/")

	assert.Equal(t, "No products found", doc.Find("#products tr.empty").Text())
	assert.Equal(t, "Showing 0-0 of 0", doc.Find("#showing").Text())
	assert.Equal(t, "zzz", doc.Find("#search-form input[name=term]").AttrOr("value", ""))
	assert.Equal(t, 1, doc.Find("#loading").Length())
	assert.Equal(t, 0, doc.Find("#toast").Length())

	_, prevDisabled := doc.Find("#prev").Attr("disabled")
	_, nextDisabled := doc.Find("#next").Attr("disabled")
	assert.True(t, prevDisabled)
	assert.True(t, nextDisabled)
}

func TestSectionPage(t *testing.T) {
	t.Parallel()

	e := setupTestServer(t, &stubDashboard{}, &stubNotifications{}, nil)

	t.Run("준비 중 화면", func(t *testing.T) {
		_, doc := getDocument(t, e, "/sections/help-center")
		assert.Contains(t, doc.Find("#coming-soon").Text(), "Coming soon")
		assert.Equal(t, "Help Center", doc.Find("h2").Text())
		assert.Equal(t, "help-center", doc.Find("nav.sidebar a.active").AttrOr("data-slug", ""))
	})

	t.Run("Products는 상품 화면으로 이동", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sections/products", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("알 수 없는 메뉴", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sections/reports", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestProductsPage_RenderError(t *testing.T) {
	t.Parallel()

	h := New(&stubDashboard{snapshot: lastPageSnapshot()}, &stubNotifications{}, nil)
	h.templates = template.Must(template.New("").Parse(`{{define "products.html"}}<html><body>{{.NoSuchField}}</body></html>{{end}}`))

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler
	RegisterRoutes(e, h)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Body.String(), constants.ErrMsgInternalServer)
	assert.NotContains(t, rec.Body.String(), "<html>", "실행이 실패한 템플릿의 일부가 응답에 섞이면 안 됩니다")
}

// =============================================================================
// Form Action Tests
// =============================================================================

func TestFormActions(t *testing.T) {
	t.Parallel()

	d := &stubDashboard{}
	n := &stubNotifications{}
	e := setupTestServer(t, d, n, nil)

	tests := []struct {
		name   string
		target string
		form   url.Values
	}{
		{"검색", "/search", url.Values{"term": {"phone"}}},
		{"카테고리", "/category", url.Values{"category": {"beauty"}}},
		{"페이지", "/page", url.Values{"page": {"2"}}},
		{"잘못된 페이지는 무시", "/page", url.Values{"page": {"abc"}}},
		{"삭제 취소", "/products/3/delete", url.Values{"confirm": {"false"}}},
		{"삭제 확인", "/products/4/delete", url.Values{"confirm": {"true"}}},
		{"수정", "/products/5/edit", nil},
		{"알림 닫기", "/notification/n-9/dismiss", nil},
	}

	for _, tt := range tests {
		rec := postForm(e, tt.target, tt.form)
		assert.Equal(t, http.StatusSeeOther, rec.Code, tt.name)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation), tt.name)
	}

	assert.Equal(t, []string{"phone"}, d.searchTerms)
	assert.Equal(t, []string{"beauty"}, d.categories)
	assert.Equal(t, []int{2}, d.pages)
	assert.Equal(t, []int{3, 4}, d.deleted)
	assert.Equal(t, []bool{false, true}, d.confirmed)
	assert.Equal(t, []int{5}, d.edited)
	assert.Equal(t, []string{"n-9"}, n.dismissed)

	rec := postForm(e, "/products/x/delete", url.Values{"confirm": {"true"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	t.Parallel()

	newRequest := func(t *testing.T, withFile bool) *http.Request {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		require.NoError(t, w.WriteField("title", "Lamp"))
		require.NoError(t, w.WriteField("price", "12.5"))
		require.NoError(t, w.WriteField("stock", "0"))
		if withFile {
			fw, err := w.CreateFormFile(thumbnailFileField, "lamp.png")
			require.NoError(t, err)
			_, _ = fw.Write([]byte("\x89PNG\r\n\x1a\n"))
		}
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/products", &buf)
		req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
		return req
	}

	t.Run("썸네일 파일 포함", func(t *testing.T) {
		t.Parallel()

		d := &stubDashboard{}
		e := setupTestServer(t, d, &stubNotifications{}, stubImageReader{dataURL: "data:image/png;base64,iVBO"})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newRequest(t, true))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		require.Len(t, d.drafts, 1)
		assert.Equal(t, dashboard.Draft{Title: "Lamp", Price: "12.5", Stock: "0", Thumbnail: "data:image/png;base64,iVBO"}, d.drafts[0])
	})

	t.Run("썸네일을 읽을 수 없으면 제외하고 등록", func(t *testing.T) {
		t.Parallel()

		d := &stubDashboard{}
		e := setupTestServer(t, d, &stubNotifications{}, stubImageReader{err: assert.AnError})

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newRequest(t, true))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		require.Len(t, d.drafts, 1)
		assert.Empty(t, d.drafts[0].Thumbnail)
	})

	t.Run("등록 실패해도 화면으로 이동", func(t *testing.T) {
		t.Parallel()

		d := &stubDashboard{createErr: assert.AnError}
		e := setupTestServer(t, d, &stubNotifications{}, nil)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, newRequest(t, false))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Len(t, d.drafts, 1)
	})
}

func TestNew_PanicOnNilDeps(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { New(nil, &stubNotifications{}, nil) })
	assert.Panics(t, func() { New(&stubDashboard{}, nil, nil) })
}

func TestThumbnailURL(t *testing.T) {
	t.Parallel()

	d := &stubDashboard{snapshot: dashboard.Snapshot{
		Items: []catalog.Product{
			{ID: 1, Thumbnail: "data:image/png;base64,iVBO"},
			{ID: 2, Thumbnail: dashboard.PlaceholderThumbnail},
			{ID: 3, Thumbnail: "javascript:alert(1)"},
		},
		QueryState: dashboard.QueryState{CurrentPage: 1},
	}}
	e := setupTestServer(t, d, &stubNotifications{}, nil)
	_, doc := getDocument(t, e, "/")

	srcs := doc.Find("#products tbody img").Map(func(_ int, s *goquery.Selection) string {
		return s.AttrOr("src", "")
	})
	require.Len(t, srcs, 3)
	assert.Equal(t, "data:image/png;base64,iVBO", srcs[0])
	assert.Equal(t, dashboard.PlaceholderThumbnail, srcs[1])
	assert.NotContains(t, srcs[2], "javascript")
}
