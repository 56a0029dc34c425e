package errors

import "strconv"

// ErrorType 에러의 성격을 분류하는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그, 예상하지 못한 상태)
	Internal

	// System 디스크, 환경 변수 등 실행 환경 수준의 오류
	System

	// InvalidInput 잘못된 입력값
	InvalidInput

	// NotFound 요청한 리소스가 존재하지 않음
	NotFound

	// ExecutionFailed 외부 API 호출이 거부되었거나 실패함 (4xx 응답 등)
	ExecutionFailed

	// ParsingFailed 응답 본문 디코딩, 형식 변환 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 원격 서비스에 도달할 수 없거나 일시적으로 사용 불가 (네트워크 오류, 5xx)
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
