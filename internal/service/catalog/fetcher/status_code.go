package fetcher

import (
	"fmt"
	"io"
	"net/http"
	"slices"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/darkkaiser/inventory-dashboard/pkg/strutil"
)

const (
	// maxBodySnippetBytes 에러 메시지에 포함하기 위해 읽는 응답 본문의 최대 크기
	maxBodySnippetBytes = 4096

	// maxBodySnippetRunes 에러 메시지에 남기는 본문 요약의 최대 글자 수
	maxBodySnippetRunes = 200
)

// StatusCodeFetcher 허용되지 않은 HTTP 상태 코드를 에러로 변환하는 Fetcher입니다.
// 허용 목록이 비어있으면 200 OK만 허용합니다.
type StatusCodeFetcher struct {
	delegate Fetcher

	allowedStatusCodes []int
}

var _ Fetcher = (*StatusCodeFetcher)(nil)

func NewStatusCodeFetcher(delegate Fetcher, allowedStatusCodes ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		delegate:           delegate,
		allowedStatusCodes: allowedStatusCodes,
	}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.delegate.Do(req)
	if err != nil {
		if resp != nil {
			drainAndCloseBody(resp.Body)
		}
		return nil, err
	}

	if statusErr := checkResponseStatus(req, resp, f.allowedStatusCodes...); statusErr != nil {
		drainAndCloseBody(resp.Body)
		return nil, statusErr
	}

	return resp, nil
}

func (f *StatusCodeFetcher) Close() error {
	return f.delegate.Close()
}

// checkResponseStatus 응답 상태 코드를 검사하고, 허용되지 않으면 HTTPStatusError를 원인으로 갖는 AppError를 반환합니다.
//
// 상태 코드별 에러 타입:
//   - 404: NotFound
//   - 400: InvalidInput
//   - 408, 429, 5xx: Unavailable
//   - 그 외: ExecutionFailed
func checkResponseStatus(req *http.Request, resp *http.Response, allowedStatusCodes ...int) error {
	if len(allowedStatusCodes) == 0 {
		if resp.StatusCode == http.StatusOK {
			return nil
		}
	} else if slices.Contains(allowedStatusCodes, resp.StatusCode) {
		return nil
	}

	errType := apperrors.ExecutionFailed
	switch resp.StatusCode {
	case http.StatusNotFound:
		errType = apperrors.NotFound
	case http.StatusBadRequest:
		errType = apperrors.InvalidInput
	case http.StatusTooManyRequests, http.StatusRequestTimeout:
		errType = apperrors.Unavailable
	default:
		if resp.StatusCode >= 500 {
			errType = apperrors.Unavailable
		}
	}

	var bodySnippet string
	if resp.Body != nil {
		bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySnippetBytes))
		if err == nil && len(bodyBytes) > 0 {
			bodySnippet = strutil.Truncate(strutil.NormalizeSpaces(strutil.StripHTMLTags(string(bodyBytes))), maxBodySnippetRunes)
		}
	}

	statusErr := &HTTPStatusError{
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		URL:         redactURL(req.URL),
		Header:      redactHeaders(resp.Header),
		BodySnippet: bodySnippet,
	}

	return apperrors.Wrap(statusErr, errType, fmt.Sprintf("HTTP 요청이 실패했습니다. 상태 코드: %d", resp.StatusCode))
}
