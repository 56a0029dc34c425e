package fetcher_test

import (
	"io"
	"net/http"
	"strings"
	"testing"

	apperrors "github.com/darkkaiser/inventory-dashboard/internal/pkg/errors"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog/fetcher"
	"github.com/darkkaiser/inventory-dashboard/internal/service/catalog/fetcher/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMaxBytesFetcher(t *testing.T) {
	t.Parallel()

	t.Run("성공: 한도 이내", func(t *testing.T) {
		t.Parallel()

		mockFetcher := mocks.NewMockFetcher()
		mockFetcher.On("Do", mock.Anything).Return(mocks.NewResponse(http.StatusOK, "12345"), nil)

		resp, err := fetcher.NewMaxBytesFetcher(mockFetcher, 5).Do(newRequest(t, http.MethodGet))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "12345", string(body))
	})

	t.Run("실패: Content-Length 초과", func(t *testing.T) {
		t.Parallel()

		mockFetcher := mocks.NewMockFetcher()
		mockFetcher.On("Do", mock.Anything).Return(mocks.NewResponse(http.StatusOK, "123456"), nil)

		_, err := fetcher.NewMaxBytesFetcher(mockFetcher, 5).Do(newRequest(t, http.MethodGet))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		assert.Contains(t, err.Error(), "Content-Length")
	})

	t.Run("실패: 길이를 모르는 본문이 읽는 도중 초과", func(t *testing.T) {
		t.Parallel()

		resp := mocks.NewResponse(http.StatusOK, "")
		resp.ContentLength = -1
		resp.Body = io.NopCloser(strings.NewReader(strings.Repeat("a", 100)))

		mockFetcher := mocks.NewMockFetcher()
		mockFetcher.On("Do", mock.Anything).Return(resp, nil)

		got, err := fetcher.NewMaxBytesFetcher(mockFetcher, 10).Do(newRequest(t, http.MethodGet))
		require.NoError(t, err)
		defer got.Body.Close()

		_, err = io.ReadAll(got.Body)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "허용 한도(10 bytes)")
	})

	t.Run("성공: NoLimit이면 원본 Fetcher 반환", func(t *testing.T) {
		t.Parallel()

		mockFetcher := mocks.NewMockFetcher()
		assert.Same(t, mockFetcher, fetcher.NewMaxBytesFetcher(mockFetcher, fetcher.NoLimit))
	})
}
