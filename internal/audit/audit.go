package audit

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Event 合规审计事件：只追加，不修改不删除。
type Event struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	ActorID   string    `gorm:"index;size:36"`
	Action    string    `gorm:"size:64;not null"` // 如 reservation.approved
	Entity    string    `gorm:"size:32;not null"` // 如 reservation / vehicle
	EntityID  string    `gorm:"index;size:36"`
	Detail    string    `gorm:"size:512"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Event) TableName() string { return "audit_events" }

// Sink 审计出口。写入尽力而为：失败由编排层记日志后吞掉，
// 绝不阻塞或回滚主操作。
type Sink interface {
	Record(ctx context.Context, e Event) error
}

// GormSink 落库实现。
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Record(ctx context.Context, e Event) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("sink db is nil")
	}
	return s.db.WithContext(ctx).Create(&e).Error
}

// Noop 空实现。
type Noop struct{}

func (Noop) Record(context.Context, Event) error { return nil }
