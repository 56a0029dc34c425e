package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/darkkaiser/inventory-dashboard/pkg/strutil"
	"golang.org/x/net/html/charset"
)

// readBody 응답 본문을 UTF-8로 변환하여 읽습니다.
//
// HTML 응답(프록시 에러 페이지, 점검 페이지 등)은 JSON이 아니므로 ParsingFailed 에러를 반환합니다.
func readBody(resp *http.Response, endpoint string) ([]byte, error) {
	contentType := resp.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil && mediaType == "text/html" {
		return nil, apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("JSON 대신 HTML 응답을 받았습니다 (endpoint=%s)", endpoint))
	}

	utf8Reader, err := charset.NewReader(resp.Body, contentType)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("응답 본문의 인코딩 변환에 실패했습니다 (endpoint=%s)", endpoint))
	}

	body, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, apperrors.Wrap(err, errorTypeOf(err, apperrors.Unavailable), fmt.Sprintf("응답 본문을 읽는 중 오류가 발생했습니다 (endpoint=%s)", endpoint))
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("응답 본문이 비어있습니다 (endpoint=%s)", endpoint))
	}
	if trimmed[0] == '<' {
		return nil, apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("JSON 대신 HTML 응답을 받았습니다 (endpoint=%s)", endpoint))
	}

	return trimmed, nil
}

// decodeJSON 응답 본문을 v로 디코딩합니다.
func decodeJSON(resp *http.Response, endpoint string, v any) error {
	body, err := readBody(resp, endpoint)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("응답 JSON 디코딩에 실패했습니다 (endpoint=%s, body=%s)", endpoint, strutil.Truncate(string(body), 100)))
	}

	return nil
}
