// Package catalog 원격 상품 카탈로그 API(DummyJSON 호환) 클라이언트를 제공합니다.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog/fetcher"
	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/tidwall/gjson"
)

const component = "catalog.client"

// Client 원격 카탈로그 API 클라이언트
type Client struct {
	baseURL string
	fetcher fetcher.Fetcher
}

// New 기준 URL과 Fetcher로 클라이언트를 생성합니다. 기준 URL 끝의 '/'는 제거됩니다.
func New(baseURL string, f fetcher.Fetcher) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		fetcher: f,
	}
}

// PageURL 조회 조건에 해당하는 엔드포인트 URL을 반환합니다.
//
// 검색어가 있으면 검색, 카테고리가 있으면 카테고리별 목록, 둘 다 없으면 전체 목록을 조회합니다.
//
//	/products/search?q={term}&limit={n}&skip={m}
//	/products/category/{category}?limit={n}&skip={m}
//	/products?limit={n}&skip={m}
func (c *Client) PageURL(q Query) string {
	paging := fmt.Sprintf("limit=%d&skip=%d", q.Limit, q.Skip)

	switch {
	case q.SearchTerm != "":
		return fmt.Sprintf("%s/products/search?q=%s&%s", c.baseURL, url.QueryEscape(q.SearchTerm), paging)
	case q.Category != "":
		return fmt.Sprintf("%s/products/category/%s?%s", c.baseURL, url.PathEscape(q.Category), paging)
	default:
		return fmt.Sprintf("%s/products?%s", c.baseURL, paging)
	}
}

// FetchPage 조회 조건에 맞는 상품 한 페이지를 가져옵니다. 요청은 정확히 한 번 전송됩니다.
func (c *Client) FetchPage(ctx context.Context, q Query) (*Page, error) {
	endpoint := c.PageURL(q)

	resp, err := fetcher.Get(ctx, c.fetcher, endpoint)
	if err != nil {
		return nil, apperrors.Wrap(err, errorTypeOf(err, apperrors.Unavailable), "상품 목록 조회 요청이 실패했습니다")
	}
	defer resp.Body.Close()

	var page Page
	if err := decodeJSON(resp, endpoint, &page); err != nil {
		return nil, err
	}
	if page.Products == nil {
		page.Products = []Product{}
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"search_term": q.SearchTerm,
		"category":    q.Category,
		"skip":        q.Skip,
		"count":       len(page.Products),
		"total":       page.Total,
	}).Debug("상품 목록 조회 완료")

	return &page, nil
}

// Categories 카테고리 식별자 목록을 가져옵니다.
func (c *Client) Categories(ctx context.Context) ([]string, error) {
	endpoint := c.baseURL + "/products/category-list"

	resp, err := fetcher.Get(ctx, c.fetcher, endpoint)
	if err != nil {
		return nil, apperrors.Wrap(err, errorTypeOf(err, apperrors.Unavailable), "카테고리 목록 조회 요청이 실패했습니다")
	}
	defer resp.Body.Close()

	var categories []string
	if err := decodeJSON(resp, endpoint, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// AddProduct 상품 생성 요청을 보내고, 원격 API가 부여한 식별자를 반환합니다.
//
// 응답에서는 id 필드만 사용하므로 나머지 필드의 형식은 검사하지 않습니다.
func (c *Client) AddProduct(ctx context.Context, p NewProduct) (int, error) {
	endpoint := c.baseURL + "/products/add"

	payload, err := json.Marshal(p)
	if err != nil {
		return 0, apperrors.Wrap(err, apperrors.Internal, "상품 생성 요청 본문 생성에 실패했습니다")
	}

	resp, err := fetcher.Post(ctx, c.fetcher, endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, apperrors.Wrap(err, errorTypeOf(err, apperrors.Unavailable), "상품 생성 요청이 실패했습니다")
	}
	defer resp.Body.Close()

	body, err := readBody(resp, endpoint)
	if err != nil {
		return 0, err
	}
	if !gjson.ValidBytes(body) {
		return 0, apperrors.New(apperrors.ParsingFailed, "상품 생성 응답이 올바른 JSON 형식이 아닙니다")
	}

	id := gjson.GetBytes(body, "id")
	if !id.Exists() || id.Type != gjson.Number {
		return 0, apperrors.New(apperrors.ParsingFailed, "상품 생성 응답에 식별자(id)가 없습니다")
	}

	return int(id.Int()), nil
}

// Close 클라이언트가 사용하는 Fetcher의 자원을 해제합니다.
func (c *Client) Close() error {
	return c.fetcher.Close()
}

// errorTypeOf 에러 체인에서 에러 타입을 결정합니다. 분류되지 않은 에러는 fallback을 사용합니다.
func errorTypeOf(err error, fallback apperrors.ErrorType) apperrors.ErrorType {
	if errors.Is(err, context.DeadlineExceeded) {
		return apperrors.Timeout
	}
	if t := apperrors.UnderlyingType(err); t != apperrors.Unknown {
		return t
	}
	return fallback
}
