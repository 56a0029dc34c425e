package middleware

import (
	"container/list"
	"fmt"
	"sync"

	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	// maxTrackedClients 토큰 버킷을 유지하는 최대 클라이언트 IP 수
	maxTrackedClients = 10000

	retryAfterSeconds = "1"
)

// clientBucket 클라이언트 IP 하나의 토큰 버킷
type clientBucket struct {
	ip      string
	limiter *rate.Limiter
}

// clientBuckets 클라이언트 IP별 토큰 버킷을 최근 요청 순서로 보관합니다.
//
// capacity개를 넘으면 가장 오랫동안 요청이 없었던 IP의 버킷부터 제거합니다.
type clientBuckets struct {
	mu sync.Mutex

	limit    rate.Limit
	burst    int
	capacity int

	recent *list.List // 앞쪽일수록 최근에 요청한 IP
	byIP   map[string]*list.Element
}

func newClientBuckets(requestsPerSecond, burst, capacity int) *clientBuckets {
	return &clientBuckets{
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
		capacity: capacity,
		recent:   list.New(),
		byIP:     make(map[string]*list.Element, min(capacity, 1024)),
	}
}

// allow ip의 버킷에서 토큰 하나를 꺼냅니다. 남은 토큰이 없으면 false를 반환합니다.
func (b *clientBuckets) allow(ip string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.bucket(ip).limiter.Allow()
}

// bucket 호출자가 mu를 잡고 있어야 합니다.
func (b *clientBuckets) bucket(ip string) *clientBucket {
	if el, ok := b.byIP[ip]; ok {
		b.recent.MoveToFront(el)
		return el.Value.(*clientBucket)
	}

	for b.recent.Len() >= b.capacity {
		oldest := b.recent.Back()
		b.recent.Remove(oldest)
		delete(b.byIP, oldest.Value.(*clientBucket).ip)
	}

	cb := &clientBucket{ip: ip, limiter: rate.NewLimiter(b.limit, b.burst)}
	b.byIP[ip] = b.recent.PushFront(cb)

	return cb
}

func (b *clientBuckets) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.recent.Len()
}

// RateLimit 클라이언트 IP마다 초당 requestsPerSecond개, 순간 최대 burst개까지 요청을 허용하는 미들웨어를 반환합니다.
//
// 한도를 넘은 요청은 Retry-After 헤더와 함께 429로 거부합니다. 버킷은 프로세스 메모리에만 있습니다.
//
// Panics:
//   - requestsPerSecond 또는 burst가 0 이하인 경우
func RateLimit(requestsPerSecond int, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	buckets := newClientBuckets(requestsPerSecond, burst, maxTrackedClients)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if buckets.allow(c.RealIP()) {
				return next(c)
			}

			applog.WithComponentAndFields(constants.ComponentMiddlewareRateLimit, requestFields(c)).Warn(constants.LogMsgRateLimitExceeded)

			c.Response().Header().Set(echo.HeaderRetryAfter, retryAfterSeconds)
			return ErrRateLimitExceeded
		}
	}
}
