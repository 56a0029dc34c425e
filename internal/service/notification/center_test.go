package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenter_Show(t *testing.T) {
	t.Parallel()

	c := NewCenter(time.Minute)
	t.Cleanup(c.Close)

	_, ok := c.Current()
	assert.False(t, ok, "초기 상태에는 알림이 없어야 합니다")

	n := c.Show(Success, "Product added successfully!")
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, time.Minute, n.ExpiresAt.Sub(n.CreatedAt))

	got, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, n, got)
}

func TestCenter_ReplaceKeepsSingleSlot(t *testing.T) {
	t.Parallel()

	c := NewCenter(time.Minute)
	t.Cleanup(c.Close)

	first := c.Show(Success, "Product deleted successfully")
	second := c.Show(Error, "Failed to load products")
	assert.NotEqual(t, first.ID, second.ID)

	got, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, Error, got.Kind)
	assert.Equal(t, "Failed to load products", got.Message)

	assert.False(t, c.Dismiss(first.ID), "대체된 알림의 id로는 닫을 수 없습니다")
	_, ok = c.Current()
	assert.True(t, ok)
}

func TestCenter_AutoDismiss(t *testing.T) {
	t.Parallel()

	c := NewCenter(30 * time.Millisecond)
	t.Cleanup(c.Close)

	c.Show(Success, "saved")

	assert.Eventually(t, func() bool {
		_, ok := c.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestCenter_StaleTimerDoesNotDismissNewer(t *testing.T) {
	t.Parallel()

	c := NewCenter(200 * time.Millisecond)
	t.Cleanup(c.Close)

	c.Show(Success, "first")
	time.Sleep(120 * time.Millisecond)
	second := c.Show(Error, "second")

	// 첫 번째 알림의 만료 시점이 지났지만 두 번째 알림은 남아있어야 합니다.
	time.Sleep(120 * time.Millisecond)
	got, ok := c.Current()
	require.True(t, ok)
	assert.Equal(t, second.ID, got.ID)

	assert.Eventually(t, func() bool {
		_, ok := c.Current()
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestCenter_Dismiss(t *testing.T) {
	t.Parallel()

	c := NewCenter(time.Minute)
	t.Cleanup(c.Close)

	n := c.Show(Success, "saved")
	assert.False(t, c.Dismiss("unknown"))
	assert.True(t, c.Dismiss(n.ID))
	assert.False(t, c.Dismiss(n.ID), "이미 닫힌 알림")

	_, ok := c.Current()
	assert.False(t, ok)
}

func TestCenter_Close(t *testing.T) {
	t.Parallel()

	c := NewCenter(10 * time.Millisecond)
	c.Show(Success, "saved")
	c.Close()

	time.Sleep(30 * time.Millisecond)
	_, ok := c.Current()
	assert.True(t, ok, "Close 이후에는 자동 해제되지 않습니다")
}

func TestNewCenter_DefaultDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultDuration, NewCenter(0).duration)
}
