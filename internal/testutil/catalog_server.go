package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// CatalogServer 원격 카탈로그 API(DummyJSON)를 흉내 내는 테스트 서버입니다.
//
// 상품은 id, title, category, price, stock 필드만 가지며 생성 요청은 저장하지 않습니다.
type CatalogServer struct {
	*httptest.Server

	mu       sync.Mutex
	products []map[string]any
	requests []string
	nextID   int
}

// NewCatalogServer n개의 상품을 가진 CatalogServer를 시작합니다. 카테고리는 "beauty"와 "laptops"가 번갈아 배정됩니다.
func NewCatalogServer(t testing.TB, n int) *CatalogServer {
	t.Helper()

	s := &CatalogServer{nextID: n + 1}
	for i := 1; i <= n; i++ {
		category := "beauty"
		if i%2 == 0 {
			category = "laptops"
		}
		s.products = append(s.products, map[string]any{
			"id":       i,
			"title":    fmt.Sprintf("product-%d", i),
			"category": category,
			"price":    9.99,
			"stock":    i,
		})
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", s.handleList(func(map[string]any) bool { return true }))
	mux.HandleFunc("GET /products/search", func(w http.ResponseWriter, r *http.Request) {
		q := strings.ToLower(r.URL.Query().Get("q"))
		s.handleList(func(p map[string]any) bool {
			return strings.Contains(strings.ToLower(p["title"].(string)), q)
		})(w, r)
	})
	mux.HandleFunc("GET /products/category/{category}", func(w http.ResponseWriter, r *http.Request) {
		category := r.PathValue("category")
		s.handleList(func(p map[string]any) bool { return p["category"] == category })(w, r)
	})
	mux.HandleFunc("GET /products/category-list", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		writeJSON(w, []string{"beauty", "laptops"})
	})
	mux.HandleFunc("POST /products/add", func(w http.ResponseWriter, r *http.Request) {
		s.record(r)

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		body["id"] = s.nextID
		s.mu.Unlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusCreated)
		writeJSON(w, body)
	})

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)

	return s
}

// Requests 지금까지 받은 요청의 "METHOD URI" 목록을 반환합니다.
func (s *CatalogServer) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.requests...)
}

func (s *CatalogServer) record(r *http.Request) {
	s.mu.Lock()
	s.requests = append(s.requests, r.Method+" "+r.URL.RequestURI())
	s.mu.Unlock()
}

func (s *CatalogServer) handleList(match func(map[string]any) bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.record(r)

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))

		s.mu.Lock()
		matched := make([]map[string]any, 0, len(s.products))
		for _, p := range s.products {
			if match(p) {
				matched = append(matched, p)
			}
		}
		s.mu.Unlock()

		page := []map[string]any{}
		if skip < len(matched) {
			end := len(matched)
			if limit > 0 {
				end = min(skip+limit, len(matched))
			}
			page = matched[skip:end]
		}

		writeJSON(w, map[string]any{
			"products": page,
			"total":    len(matched),
			"skip":     skip,
			"limit":    limit,
		})
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	_ = json.NewEncoder(w).Encode(v)
}
