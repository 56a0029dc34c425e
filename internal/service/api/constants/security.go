package constants

import "time"

// HTTP 서버 기본값 상수입니다.
const (
	// DefaultRequestTimeout HTTP 요청 처리의 기본 타임아웃 시간 (60초)
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문의 최대 크기 (6MB)
	// 썸네일 이미지(최대 5MB)를 multipart로 업로드할 수 있어야 합니다.
	DefaultMaxBodySize = "6M"

	// DefaultReadHeaderTimeout Slowloris 공격 방어를 위한 HTTP 헤더 읽기 최대 대기 시간
	DefaultReadHeaderTimeout = 10 * time.Second

	DefaultReadTimeout  = 30 * time.Second
	DefaultWriteTimeout = 75 * time.Second
	DefaultIdleTimeout  = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"password",
	"token",
	"secret",
}
