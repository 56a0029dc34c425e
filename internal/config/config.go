package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "inventory-dashboard"

	// DefaultFilename 실행 인자로 설정 파일 경로가 주어지지 않았을 때 탐색하는 기본 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 설정값을 덮어쓰는 환경 변수의 접두사입니다.
	envPrefix = "DASHBOARD_"

	// PageSize 한 페이지에 표시하는 상품 수입니다. 설정으로 변경할 수 없습니다.
	PageSize = 10
)

// ------------------------------------------------------------------------------------------------
// 기본값
// ------------------------------------------------------------------------------------------------

const (
	DefaultCatalogBaseURL          = "https://dummyjson.com"
	DefaultCatalogTimeout          = 10 * time.Second
	DefaultCatalogMaxRetries       = 0
	DefaultCatalogRetryDelay       = 1 * time.Second
	DefaultCatalogMaxResponseBytes = 10 * 1024 * 1024

	DefaultDebounceDelay        = 500 * time.Millisecond
	DefaultNotificationDuration = 3 * time.Second

	DefaultListenPort         = 8080
	DefaultRateLimitPerSecond = 20
	DefaultRateLimitBurst     = 40
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug     bool            `json:"debug"`
	Catalog   CatalogConfig   `json:"catalog"`
	Dashboard DashboardConfig `json:"dashboard"`
	HTTP      HTTPConfig      `json:"http"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.Catalog.validate(); err != nil {
		return err
	}
	if err := c.Dashboard.validate(); err != nil {
		return err
	}
	if err := c.HTTP.validate(); err != nil {
		return err
	}
	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string
	warnings = append(warnings, c.Catalog.VerifyRecommendations()...)
	warnings = append(warnings, c.HTTP.VerifyRecommendations()...)
	return warnings
}

// CatalogConfig 원격 상품 카탈로그 API 접속 설정
type CatalogConfig struct {
	BaseURL          string        `json:"base_url" validate:"required,base_url"`
	Timeout          time.Duration `json:"timeout"`
	MaxRetries       int           `json:"max_retries" validate:"min=0,max=10"`
	RetryDelay       time.Duration `json:"retry_delay"`
	MaxResponseBytes int64         `json:"max_response_bytes" validate:"min=0"`
}

func (c *CatalogConfig) validate() error {
	if err := checkStruct(c, "카탈로그 API(catalog)"); err != nil {
		return err
	}

	if c.Timeout < 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("카탈로그 API 요청 제한 시간(timeout)은 0 이상이어야 합니다: '%v'", c.Timeout))
	}
	if c.MaxRetries > 0 && c.RetryDelay <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("재시도가 활성화된 경우 재시도 대기 시간(retry_delay)은 0보다 커야 합니다: '%v'", c.RetryDelay))
	}

	return nil
}

func (c *CatalogConfig) VerifyRecommendations() []string {
	if c.Timeout == 0 {
		return []string{"카탈로그 API 요청 제한 시간(timeout)이 0으로 설정되었습니다. 응답하지 않는 요청이 있으면 로딩 상태가 해제되지 않습니다"}
	}
	return nil
}

// DashboardConfig 상품 조회 컨트롤러의 동작 설정
type DashboardConfig struct {
	// DebounceDelay 검색어/카테고리/페이지 변경 후 조회 요청을 보내기까지 기다리는 시간
	DebounceDelay time.Duration `json:"debounce_delay"`

	// NotificationDuration 알림이 자동으로 사라지기까지의 시간
	NotificationDuration time.Duration `json:"notification_duration"`

	// DiscardStaleResponses true이면 가장 최근에 보낸 요청의 응답만 반영합니다.
	// 기본값(false)은 도착 순서대로 반영하며, 먼저 보낸 요청이 늦게 도착하면 그 결과가 남습니다.
	DiscardStaleResponses bool `json:"discard_stale_responses"`
}

func (c *DashboardConfig) validate() error {
	if c.DebounceDelay <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("조회 지연 시간(debounce_delay)은 0보다 커야 합니다: '%v'", c.DebounceDelay))
	}
	if c.NotificationDuration <= 0 {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("알림 표시 시간(notification_duration)은 0보다 커야 합니다: '%v'", c.NotificationDuration))
	}
	return nil
}

// HTTPConfig 대시보드 웹 서버의 포트, TLS, CORS, 요청 제한 설정
type HTTPConfig struct {
	ListenPort  int             `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool            `json:"tls_server"`
	TLSCertFile string          `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string          `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	CORS        CORSConfig      `json:"cors"`
	RateLimit   RateLimitConfig `json:"rate_limit"`
}

func (c *HTTPConfig) validate() error {
	if err := checkStruct(c, "웹 서버(http)"); err != nil {
		return err
	}
	if err := c.CORS.validate(); err != nil {
		return err
	}
	return nil
}

func (c *HTTPConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}
	if c.RateLimit.RequestsPerSecond == 0 {
		warnings = append(warnings, "요청 속도 제한(rate_limit)이 비활성화되었습니다")
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책 설정
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	for _, origin := range c.AllowOrigins {
		if origin == "*" && len(c.AllowOrigins) > 1 {
			return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
		}
	}
	return checkStruct(c, "CORS(http.cors)")
}

// RateLimitConfig 클라이언트 IP별 요청 속도 제한 설정. RequestsPerSecond가 0이면 제한하지 않습니다.
type RateLimitConfig struct {
	RequestsPerSecond int `json:"requests_per_second" validate:"min=0"`
	Burst             int `json:"burst" validate:"min=0"`
}

// newDefaultConfig 설정 파일에 값이 없을 때 적용되는 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		Catalog: CatalogConfig{
			BaseURL:          DefaultCatalogBaseURL,
			Timeout:          DefaultCatalogTimeout,
			MaxRetries:       DefaultCatalogMaxRetries,
			RetryDelay:       DefaultCatalogRetryDelay,
			MaxResponseBytes: DefaultCatalogMaxResponseBytes,
		},
		Dashboard: DashboardConfig{
			DebounceDelay:        DefaultDebounceDelay,
			NotificationDuration: DefaultNotificationDuration,
		},
		HTTP: HTTPConfig{
			ListenPort: DefaultListenPort,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				RequestsPerSecond: DefaultRateLimitPerSecond,
				Burst:             DefaultRateLimitBurst,
			},
		},
	}
}

// normalizeEnvKey 환경 변수 이름을 설정 키 경로로 변환합니다.
//
//	DASHBOARD_CATALOG__BASE_URL -> catalog.base_url
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
//
// 우선순위(낮음 → 높음): 기본값 → JSON 설정 파일 → 환경 변수(DASHBOARD_ 접두사)
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드
	// 예: DASHBOARD_DASHBOARD__DEBOUNCE_DELAY=300ms -> dashboard.debounce_delay
	if err := k.Load(env.Provider(envPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링
	var appConfig AppConfig
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			ErrorUnused:      true, // 구조체에 없는 키가 설정 파일에 있으면 에러
			WeaklyTypedInput: true,
			Result:           &appConfig,
		},
	}
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
