// Package notification 화면에 잠시 표시되었다가 사라지는 단일 알림(토스트)을 관리합니다.
package notification

import "time"

const component = "notification.center"

// DefaultDuration 알림이 자동으로 사라지기까지의 기본 시간
const DefaultDuration = 3 * time.Second

// Kind 알림 종류
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

// Notification 현재 표시 중인 알림입니다.
type Notification struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
