package notify

import (
	"context"
	"time"
)

// EventType 预约单事件类型。
type EventType string

const (
	EventCreated    EventType = "created"
	EventSubmitted  EventType = "submitted"
	EventModified   EventType = "modified"
	EventApproved   EventType = "approved"
	EventRejected   EventType = "rejected"
	EventCancelled  EventType = "cancelled"
	EventCheckedIn  EventType = "checked_in"
	EventCheckedOut EventType = "checked_out"
)

// Event 一次“通知用户 X 发生了事件 Y”的载荷。
type Event struct {
	Type            EventType `json:"type"`
	ReservationID   string    `json:"reservation_id"`
	ReferenceNumber string    `json:"reference_number"`
	VehicleID       string    `json:"vehicle_id"`
	RecipientID     string    `json:"recipient_id"` // 通知对象（一般为申请人）
	ActorID         string    `json:"actor_id"`     // 触发事件的操作者
	Detail          string    `json:"detail"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// Notifier 通知出口。实现方失败只能向上返回错误，由编排层记日志后吞掉；
// 通知失败绝不回滚已提交的预约单状态变更。
type Notifier interface {
	Publish(ctx context.Context, e Event) error
}

// Noop 空实现：本地开发 / 单测用。
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
