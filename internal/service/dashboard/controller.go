// Package dashboard 상품 관리 대시보드의 조회 상태를 관리하는 컨트롤러를 제공합니다.
//
// 컨트롤러는 검색어, 카테고리, 페이지 번호를 보관하고, 변경이 멈춘 뒤 일정 시간(debounce)이 지나면
// 원격 카탈로그 API에 한 번 조회합니다. 상품 생성은 원격 API에 요청한 뒤 목록 맨 앞에 바로 추가하고,
// 상품 삭제는 사용자 확인 후 현재 목록에서만 제거합니다.
package dashboard

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/darkkaiser/inventory-dashboard/internal/service/notification"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
)

const component = "dashboard.controller"

// DefaultDebounceDelay 조회 조건이 바뀐 뒤 조회 요청을 보내기까지 기다리는 기본 시간
const DefaultDebounceDelay = 500 * time.Millisecond

// 사용자에게 표시하는 알림 문구
const (
	MsgLoadFailed    = "Failed to load products"
	MsgAddSucceeded  = "Product added successfully!"
	MsgAddFailed     = "Error adding product. Please try again."
	MsgDeleteSucceed = "Product deleted successfully"
)

// Catalog 컨트롤러가 사용하는 원격 카탈로그 API
type Catalog interface {
	FetchPage(ctx context.Context, q catalog.Query) (*catalog.Page, error)
	Categories(ctx context.Context) ([]string, error)
	AddProduct(ctx context.Context, p catalog.NewProduct) (int, error)
}

// Notifier 사용자 알림을 표시하는 협력자
type Notifier interface {
	Show(kind notification.Kind, message string) notification.Notification
	Current() (notification.Notification, bool)
}

// Options 컨트롤러 동작 설정
type Options struct {
	// DebounceDelay 0 이하이면 DefaultDebounceDelay를 사용합니다.
	DebounceDelay time.Duration

	// DiscardStaleResponses true이면 가장 최근에 보낸 조회 요청의 응답만 반영합니다.
	// false(기본값)이면 도착한 응답을 모두 반영하므로, 먼저 보낸 요청이 늦게 도착하면 그 결과가 최종 상태가 됩니다.
	DiscardStaleResponses bool
}

// Health 마지막 상품 조회 결과로 판단한 원격 카탈로그 API 상태
type Health struct {
	Reachable   bool      `json:"reachable"`
	LastError   string    `json:"last_error,omitempty"`
	LastFetchAt time.Time `json:"last_fetch_at,omitzero"`
}

// Controller 상품 조회 상태를 관리합니다. 모든 메서드는 여러 고루틴에서 동시에 호출할 수 있습니다.
type Controller struct {
	catalog   Catalog
	notifier  Notifier
	confirmer Confirmer
	opts      Options

	debouncer *Debouncer

	// ctx 조회 요청에 사용하는 Context. 조회 조건이 바뀌어도 취소되지 않으며 Close에서만 취소됩니다.
	ctx    context.Context
	cancel context.CancelFunc

	// inflight 진행 중인 조회 요청
	inflight sync.WaitGroup

	mu sync.Mutex

	query      QueryState
	items      []catalog.Product
	totalCount int
	categories []string
	loading    bool

	// seq 마지막으로 보낸 조회 요청의 일련번호
	seq uint64

	health Health

	started bool
	closed  bool
}

// NewController 컨트롤러를 생성합니다. 조회는 Start 이후에 시작됩니다.
func NewController(cat Catalog, notifier Notifier, confirmer Confirmer, opts Options) *Controller {
	if opts.DebounceDelay <= 0 {
		opts.DebounceDelay = DefaultDebounceDelay
	}
	if confirmer == nil {
		confirmer = ContextConfirmer{}
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Controller{
		catalog:   cat,
		notifier:  notifier,
		confirmer: confirmer,
		opts:      opts,

		ctx:    ctx,
		cancel: cancel,

		query:      QueryState{CurrentPage: 1},
		items:      []catalog.Product{},
		categories: []string{},
		loading:    true,
		health:     Health{Reachable: true},
	}
	c.debouncer = NewDebouncer(opts.DebounceDelay, c.refetch)

	return c
}

// Start 카테고리 목록을 한 번 불러오고 첫 조회를 예약합니다.
//
// 카테고리 조회에 실패해도 에러를 반환하지 않으며, 빈 카테고리 목록으로 동작을 계속합니다.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	if c.started || c.closed {
		c.mu.Unlock()
		applog.WithComponent(component).Warn("컨트롤러가 이미 시작되었거나 종료되었습니다")
		return
	}
	c.started = true
	c.mu.Unlock()

	categories, err := c.catalog.Categories(ctx)
	if err != nil {
		applog.WithComponent(component).WithError(err).Error("카테고리 목록 조회에 실패했습니다. 빈 목록으로 계속합니다")
	} else {
		c.mu.Lock()
		c.categories = append([]string(nil), categories...)
		c.mu.Unlock()

		applog.WithComponentAndFields(component, applog.Fields{"count": len(categories)}).Info("카테고리 목록 조회 완료")
	}

	c.debouncer.Trigger()
}

// SetSearchTerm 검색어를 변경합니다. 카테고리 선택은 해제되고 1페이지로 이동합니다.
func (c *Controller) SetSearchTerm(term string) {
	c.mu.Lock()
	c.query = QueryState{SearchTerm: term, CurrentPage: 1}
	c.mu.Unlock()

	c.debouncer.Trigger()
}

// SetCategory 카테고리를 변경합니다. 검색어는 지워지고 1페이지로 이동합니다.
func (c *Controller) SetCategory(category string) {
	c.mu.Lock()
	c.query = QueryState{SelectedCategory: category, CurrentPage: 1}
	c.mu.Unlock()

	c.debouncer.Trigger()
}

// SetPage 페이지를 이동합니다.
//
// n이 1 이상 전체 페이지 수 이하일 때만 반영하고 true를 반환합니다.
// 범위를 벗어나면 상태를 바꾸지 않고 조회도 하지 않으며 false를 반환합니다.
func (c *Controller) SetPage(n int) bool {
	c.mu.Lock()
	if n < 1 || n > totalPages(c.totalCount) {
		c.mu.Unlock()
		return false
	}
	c.query.CurrentPage = n
	c.mu.Unlock()

	c.debouncer.Trigger()
	return true
}

// refetch 디바운스 대기가 끝났을 때 현재 조회 조건으로 상품 페이지를 한 번 조회합니다.
func (c *Controller) refetch() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}

	query := c.query
	c.seq++
	seq := c.seq
	c.loading = true
	c.inflight.Add(1)
	c.mu.Unlock()

	defer c.inflight.Done()

	page, err := c.catalog.FetchPage(c.ctx, catalog.Query{
		SearchTerm: query.SearchTerm,
		Category:   query.SelectedCategory,
		Limit:      PageSize,
		Skip:       (query.CurrentPage - 1) * PageSize,
	})

	fields := applog.Fields{
		"seq":         seq,
		"search_term": query.SearchTerm,
		"category":    query.SelectedCategory,
		"page":        query.CurrentPage,
	}

	c.mu.Lock()

	if c.opts.DiscardStaleResponses && seq != c.seq {
		c.mu.Unlock()
		applog.WithComponentAndFields(component, fields).Debug("최신 요청이 아니므로 응답을 무시합니다")
		return
	}

	c.loading = false
	c.health.LastFetchAt = time.Now()

	if err != nil {
		if errors.Is(err, context.Canceled) && c.ctx.Err() != nil {
			// 종료 중 취소된 요청
			c.mu.Unlock()
			return
		}

		c.health.Reachable = false
		c.health.LastError = err.Error()
		c.mu.Unlock()

		applog.WithComponentAndFields(component, fields).WithError(err).Error("상품 목록 조회에 실패했습니다. 이전 목록을 유지합니다")
		c.notifier.Show(notification.Error, MsgLoadFailed)
		return
	}

	c.items = page.Products
	c.totalCount = page.Total
	c.health.Reachable = true
	c.health.LastError = ""
	c.mu.Unlock()

	fields["count"] = len(page.Products)
	fields["total"] = page.Total
	applog.WithComponentAndFields(component, fields).Debug("상품 목록 갱신")
}

// CreateProduct 상품 생성을 요청하고, 성공하면 생성된 상품을 목록 맨 앞에 추가합니다.
//
// 원격 API는 생성된 상품을 저장하지 않으므로 다시 조회하지 않으며, 전체 상품 수도 바꾸지 않습니다.
// 다음 조회(페이지 이동 등)에서 추가한 상품은 목록에서 사라집니다.
func (c *Controller) CreateProduct(ctx context.Context, draft Draft) (catalog.Product, error) {
	payload := draft.toNewProduct()

	id, err := c.catalog.AddProduct(ctx, payload)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{"title": payload.Title}).WithError(err).Error("상품 생성에 실패했습니다")
		c.notifier.Show(notification.Error, MsgAddFailed)
		return catalog.Product{}, apperrors.Wrap(err, apperrors.UnderlyingType(err), "상품 생성 요청이 실패했습니다")
	}

	product := optimisticProduct(payload, id)

	c.mu.Lock()
	c.items = append([]catalog.Product{product}, c.items...)
	c.mu.Unlock()

	applog.WithComponentAndFields(component, applog.Fields{
		"id":    product.ID,
		"title": product.Title,
	}).Info("상품이 생성되어 목록에 추가되었습니다")
	c.notifier.Show(notification.Success, MsgAddSucceeded)

	return product, nil
}

// DeleteProduct 사용자 확인을 받은 뒤 현재 목록에서 id가 일치하는 상품을 제거합니다.
//
// 원격 API에는 요청하지 않으며 전체 상품 수도 바꾸지 않습니다. 확인을 받았으면 true를 반환합니다.
func (c *Controller) DeleteProduct(ctx context.Context, id int) bool {
	if !c.confirmer.Confirm(ctx, DeleteConfirmMessage) {
		applog.WithComponentAndFields(component, applog.Fields{"id": id}).Debug("상품 삭제가 취소되었습니다")
		return false
	}

	c.mu.Lock()
	kept := make([]catalog.Product, 0, len(c.items))
	removed := 0
	for _, p := range c.items {
		if p.ID == id {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	c.items = kept
	c.mu.Unlock()

	applog.WithComponentAndFields(component, applog.Fields{
		"id":      id,
		"removed": removed,
	}).Info("상품이 목록에서 제거되었습니다")
	c.notifier.Show(notification.Success, MsgDeleteSucceed)

	return true
}

// EditProduct 상품 수정 요청을 기록만 합니다. 상태는 바뀌지 않습니다.
func (c *Controller) EditProduct(product catalog.Product) {
	applog.WithComponentAndFields(component, applog.Fields{
		"id":    product.ID,
		"title": product.Title,
	}).Info("상품 수정 요청 (미구현)")
}

// Categories 시작 시 불러온 카테고리 목록의 복사본을 반환합니다.
func (c *Controller) Categories() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string{}, c.categories...)
}

// Health 마지막 상품 조회 결과를 기준으로 원격 카탈로그 API 상태를 반환합니다.
func (c *Controller) Health() Health {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.health
}

// Snapshot 현재 상태의 복사본을 반환합니다.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	pages := totalPages(c.totalCount)
	from, to := showingRange(c.query.CurrentPage, c.totalCount)

	s := Snapshot{
		Items:       append([]catalog.Product{}, c.items...),
		TotalCount:  c.totalCount,
		PageSize:    PageSize,
		QueryState:  c.query,
		TotalPages:  pages,
		HasPrev:     c.query.CurrentPage > 1,
		HasNext:     c.query.CurrentPage < pages,
		ShowingFrom: from,
		ShowingTo:   to,
		Categories:  append([]string{}, c.categories...),
		Loading:     c.loading,
	}
	s.Stats = computeStats(s.Items, c.totalCount)
	c.mu.Unlock()

	if n, ok := c.notifier.Current(); ok {
		s.Notification = &n
	}

	return s
}

// Close 예약된 조회를 취소하고, 진행 중인 조회가 끝날 때까지 기다립니다.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.mu.Unlock()

	c.debouncer.Stop()
	c.cancel()
	c.inflight.Wait()
}
