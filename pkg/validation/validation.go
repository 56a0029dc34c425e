// Package validation 설정값 검증에 사용하는 순수 함수들을 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// ValidateCORSOrigin 문자열이 'Scheme://Host[:Port]' 형식의 CORS Origin인지 검증합니다.
// 와일드카드('*')는 허용하며, 경로/쿼리/Fragment/사용자 정보가 포함되면 거부합니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return nil
	}
	if origin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(origin, "/") {
		return fmt.Errorf("CORS Origin은 '/'로 끝날 수 없습니다 (input=%q)", origin)
	}

	u, err := parseHTTPURL(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 형식 오류: %w", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("CORS Origin에는 경로, 쿼리, Fragment를 포함할 수 없습니다 (input=%q)", origin)
	}

	return nil
}

// ValidateBaseURL 원격 API의 기준 URL을 검증합니다.
// 경로는 허용하지만 쿼리와 Fragment는 허용하지 않습니다.
func ValidateBaseURL(raw string) error {
	u, err := parseHTTPURL(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("기준 URL 형식 오류: %w", err)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("기준 URL에는 쿼리나 Fragment를 포함할 수 없습니다 (input=%q)", raw)
	}

	return nil
}

// parseHTTPURL http/https 스키마와 유효한 호스트(및 포트)를 가진 URL만 통과시킵니다.
func parseHTTPURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("URL이 비어있습니다")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("유효한 URL이 아닙니다 (input=%q): %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("'http' 또는 'https' 스키마만 허용됩니다 (input=%q)", raw)
	}
	if u.User != nil {
		return nil, fmt.Errorf("사용자 자격 증명을 포함할 수 없습니다 (input=%q)", raw)
	}

	if portStr := u.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("포트 번호가 유효하지 않습니다 (input=%q, port=%s)", raw, portStr)
		}
		if err := ValidatePort(port); err != nil {
			return nil, err
		}
	}

	host := u.Hostname()
	if host == "" {
		return nil, fmt.Errorf("호스트 정보가 누락되었습니다 (input=%q)", raw)
	}
	if err := ValidateHostname(host); err != nil {
		return nil, err
	}

	return u, nil
}

// ValidatePort 포트 번호가 1-65535 범위인지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname localhost, IP 주소, 또는 RFC 1123 형식의 호스트명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명은 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 {
			return fmt.Errorf("호스트명 레이블의 길이가 올바르지 않습니다 (host=%q)", host)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}
		for _, r := range label {
			if !isHostnameRune(r) {
				return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (host=%q)", host)
			}
		}
	}

	// TLD는 숫자로만 구성될 수 없습니다.
	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}

func isHostnameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}
