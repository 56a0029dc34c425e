package notification

import (
	"sync"
	"time"

	applog "github.com/darkkaiser/inventory-dashboard/pkg/log"
	"github.com/google/uuid"
)

// Center 한 번에 하나의 알림만 보관하는 저장소입니다.
//
// 새 알림은 기존 알림을 즉시 대체하며, 알림마다 자동 해제 타이머가 하나씩 걸립니다.
// 대체된 알림의 타이머는 새 알림을 해제하지 않습니다.
type Center struct {
	duration time.Duration

	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	closed  bool
}

// NewCenter 자동 해제 시간이 duration인 Center를 생성합니다. 0 이하이면 DefaultDuration을 사용합니다.
func NewCenter(duration time.Duration) *Center {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Center{duration: duration}
}

// Show 알림을 표시합니다. 이미 표시 중인 알림이 있으면 대체합니다.
func (c *Center) Show(kind Kind, message string) Notification {
	now := time.Now()
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(c.duration),
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}

	c.current = &n
	if !c.closed {
		id := n.ID
		c.timer = time.AfterFunc(c.duration, func() { c.expire(id) })
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"id":      n.ID,
		"kind":    n.Kind,
		"message": n.Message,
	}).Debug("알림 표시")

	return n
}

// Dismiss 사용자가 알림을 닫습니다. id가 현재 알림이 아니면 아무것도 하지 않고 false를 반환합니다.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil || c.current.ID != id {
		return false
	}

	c.clearLocked()
	return true
}

// Current 현재 표시 중인 알림의 복사본을 반환합니다.
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// Close 대기 중인 자동 해제 타이머를 중지합니다. 이후에 표시되는 알림은 자동으로 해제되지 않습니다.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 이미 다른 알림으로 대체된 경우
	if c.current == nil || c.current.ID != id {
		return
	}

	c.clearLocked()

	applog.WithComponentAndFields(component, applog.Fields{"id": id}).Debug("알림 자동 해제")
}

func (c *Center) clearLocked() {
	c.current = nil
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
