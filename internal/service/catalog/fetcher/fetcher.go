// Package fetcher 원격 카탈로그 API 호출에 사용하는 HTTP 요청 파이프라인을 제공합니다.
//
// 각 기능(로깅, 재시도, 상태 코드 검사, 응답 크기 제한)은 Fetcher를 감싸는 데코레이터로 구현되며,
// NewFromConfig가 다음 순서로 조립합니다.
//
//	Logging → Retry → StatusCode → MaxBytes → HTTP
package fetcher

import (
	"context"
	"io"
	"net/http"
	"time"
)

// component 로깅용 컴포넌트 이름
const component = "catalog.fetcher"

// Fetcher HTTP 요청을 수행하는 인터페이스입니다.
//
// 반환된 응답의 Body는 호출자가 닫아야 합니다.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)

	// Close 유휴 커넥션 등 Fetcher가 보유한 자원을 해제합니다.
	Close() error
}

// Config Fetcher 체인 구성 설정
type Config struct {
	// Timeout HTTP 클라이언트 전체 요청 제한 시간 (0이면 제한 없음)
	Timeout time.Duration

	// MaxRetries 일시적 오류 발생 시 최대 재시도 횟수 (0이면 재시도하지 않음)
	MaxRetries int

	// MinRetryDelay, MaxRetryDelay 지수 백오프 대기 시간의 하한/상한
	MinRetryDelay time.Duration
	MaxRetryDelay time.Duration

	// MaxBytes 응답 본문 최대 크기 (0이면 기본값, NoLimit이면 제한 없음)
	MaxBytes int64

	// UserAgent 요청에 User-Agent 헤더가 없을 때 사용할 값
	UserAgent string

	DisableLogging bool
}

// NewFromConfig 설정에 따라 Fetcher 체인을 조립합니다.
func NewFromConfig(cfg Config, opts ...Option) Fetcher {
	httpOpts := []Option{WithTimeout(cfg.Timeout)}
	if cfg.UserAgent != "" {
		httpOpts = append(httpOpts, WithUserAgent(cfg.UserAgent))
	}
	httpOpts = append(httpOpts, opts...)

	var f Fetcher = NewHTTPFetcher(httpOpts...)
	f = NewMaxBytesFetcher(f, cfg.MaxBytes)
	f = NewStatusCodeFetcher(f, http.StatusOK, http.StatusCreated)
	f = NewRetryFetcher(f, cfg.MaxRetries, cfg.MinRetryDelay, cfg.MaxRetryDelay)
	if !cfg.DisableLogging {
		f = NewLoggingFetcher(f)
	}

	return f
}

// Get 지정된 URL로 HTTP GET 요청을 전송합니다.
func Get(ctx context.Context, f Fetcher, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return do(f, req)
}

// Post 지정된 URL로 HTTP POST 요청을 전송합니다.
func Post(ctx context.Context, f Fetcher, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return do(f, req)
}

func do(f Fetcher, req *http.Request) (*http.Response, error) {
	resp, err := f.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}
	return resp, nil
}
