// Package mocks dashboard 패키지의 테스트용 Mock 구현체를 제공합니다.
package mocks

import (
	"context"

	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog"
	"github.com/stretchr/testify/mock"
)

// MockCatalog dashboard.Catalog 인터페이스의 testify 기반 Mock 구현체
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) FetchPage(ctx context.Context, q catalog.Query) (*catalog.Page, error) {
	args := m.Called(ctx, q)

	var page *catalog.Page
	if v := args.Get(0); v != nil {
		page = v.(*catalog.Page)
	}
	return page, args.Error(1)
}

func (m *MockCatalog) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)

	var categories []string
	if v := args.Get(0); v != nil {
		categories = v.([]string)
	}
	return categories, args.Error(1)
}

func (m *MockCatalog) AddProduct(ctx context.Context, p catalog.NewProduct) (int, error) {
	args := m.Called(ctx, p)
	return args.Int(0), args.Error(1)
}
