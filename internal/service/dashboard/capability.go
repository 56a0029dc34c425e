package dashboard

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
)

// DeleteConfirmMessage 상품 삭제 전에 사용자에게 확인받는 문구
const DeleteConfirmMessage = "Are you sure you want to delete this product?"

// Confirmer 되돌릴 수 없는 작업 전에 사용자 확인을 받는 외부 협력자입니다.
type Confirmer interface {
	Confirm(ctx context.Context, message string) bool
}

// ConfirmerFunc 일반 함수를 Confirmer로 사용하기 위한 어댑터
type ConfirmerFunc func(ctx context.Context, message string) bool

func (f ConfirmerFunc) Confirm(ctx context.Context, message string) bool {
	return f(ctx, message)
}

// AlwaysConfirm 항상 승인하는 Confirmer (스크립트, 테스트용)
var AlwaysConfirm Confirmer = ConfirmerFunc(func(context.Context, string) bool { return true })

type confirmedKey struct{}

// WithConfirmation 요청 처리 계층에서 사용자의 확인 여부를 Context에 담습니다.
func WithConfirmation(ctx context.Context, confirmed bool) context.Context {
	return context.WithValue(ctx, confirmedKey{}, confirmed)
}

// ContextConfirmer WithConfirmation으로 Context에 담긴 확인 여부를 따르는 Confirmer입니다.
// 값이 없으면 승인하지 않은 것으로 봅니다.
type ContextConfirmer struct{}

func (ContextConfirmer) Confirm(ctx context.Context, _ string) bool {
	confirmed, _ := ctx.Value(confirmedKey{}).(bool)
	return confirmed
}

// maxImageBytes 썸네일로 업로드할 수 있는 이미지의 최대 크기 (5MB)
const maxImageBytes = 5 * 1024 * 1024

// ImageReader 업로드된 이미지를 data URL로 변환하는 외부 협력자입니다.
type ImageReader interface {
	ReadAsDataURL(r io.Reader) (string, error)
}

// DataURLImageReader 내용을 검사하여 이미지인 경우에만 base64 data URL로 변환합니다.
type DataURLImageReader struct {
	// MaxBytes 허용하는 최대 크기 (0이면 5MB)
	MaxBytes int64
}

func (r DataURLImageReader) ReadAsDataURL(src io.Reader) (string, error) {
	limit := r.MaxBytes
	if limit <= 0 {
		limit = maxImageBytes
	}

	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.InvalidInput, "업로드된 이미지를 읽는 중 오류가 발생했습니다")
	}
	if len(data) == 0 {
		return "", apperrors.New(apperrors.InvalidInput, "업로드된 이미지가 비어있습니다")
	}
	if int64(len(data)) > limit {
		return "", apperrors.Newf(apperrors.InvalidInput, "업로드된 이미지가 허용 크기(%d bytes)를 초과합니다", limit)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", apperrors.Newf(apperrors.InvalidInput, "이미지 파일만 업로드할 수 있습니다 (감지된 형식: %s)", mimeType)
	}

	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
