package handler

import (
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/constants"
	"github.com/darkkaiser/inventory-dashboard/internal/service/api/httputil"
)

// NewErrInvalidBody 요청 본문의 형식이 올바르지 않아 파싱에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidBody() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidBody)
}

// NewErrValidationFailed 요청 데이터의 유효성 검증에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrInvalidProductID 경로의 상품 ID가 정수가 아닐 때 발생하는 에러를 생성합니다.
func NewErrInvalidProductID() error {
	return httputil.NewBadRequestError(constants.ErrMsgBadRequestInvalidID)
}

// NewErrInvalidThumbnail 업로드된 썸네일 파일을 읽을 수 없거나 이미지가 아닐 때 발생하는 에러를 생성합니다.
func NewErrInvalidThumbnail(detail string) error {
	if detail == "" {
		detail = constants.ErrMsgBadRequestInvalidFile
	}
	return httputil.NewBadRequestError(detail)
}

// NewErrCatalogRequestFailed 원격 카탈로그 API 요청이 실패했을 때 발생하는 에러를 생성합니다.
func NewErrCatalogRequestFailed() error {
	return httputil.NewBadGatewayError(constants.ErrMsgCatalogRequestFailed)
}

// NewErrNotificationNotFound 닫으려는 알림이 이미 사라졌거나 존재하지 않을 때 발생하는 에러를 생성합니다.
func NewErrNotificationNotFound() error {
	return httputil.NewNotFoundError("표시 중인 알림이 아닙니다")
}
