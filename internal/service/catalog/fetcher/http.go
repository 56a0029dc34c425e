package fetcher

import (
	"net/http"
	"time"
)

const (
	defaultUserAgent = "inventory-dashboard/1.0"
	defaultTimeout   = 30 * time.Second
)

// Option HTTPFetcher 생성 옵션
type Option func(*HTTPFetcher)

// WithTimeout 요청 전체 제한 시간을 설정합니다. 0이면 제한하지 않습니다.
func WithTimeout(timeout time.Duration) Option {
	return func(h *HTTPFetcher) {
		if timeout >= 0 {
			h.client.Timeout = timeout
		}
	}
}

// WithUserAgent 기본 User-Agent를 설정합니다.
func WithUserAgent(ua string) Option {
	return func(h *HTTPFetcher) {
		h.userAgent = ua
	}
}

// WithTransport 사용할 RoundTripper를 지정합니다. (테스트에서 주로 사용)
func WithTransport(transport http.RoundTripper) Option {
	return func(h *HTTPFetcher) {
		h.client.Transport = transport
	}
}

// HTTPFetcher 체인의 가장 안쪽에서 실제 네트워크 요청을 수행하는 Fetcher입니다.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

var _ Fetcher = (*HTTPFetcher)(nil)

func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	h := &HTTPFetcher{
		client: &http.Client{
			Timeout:   defaultTimeout,
			Transport: http.DefaultTransport.(*http.Transport).Clone(),
		},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	return h.client.Do(req)
}

func (h *HTTPFetcher) Close() error {
	h.client.CloseIdleConnections()
	return nil
}
