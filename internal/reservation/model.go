package reservation

import "time"

// Status 预约单状态枚举（持久化为字符串）。
type Status string

const (
	StatusDraft      Status = "DRAFT"       // 草稿：未提交审批，不占用时间窗
	StatusPending    Status = "PENDING"     // 待审批
	StatusApproved   Status = "APPROVED"    // 已批准，待取车
	StatusRejected   Status = "REJECTED"    // 已驳回（终态）
	StatusInProgress Status = "IN_PROGRESS" // 用车中
	StatusCompleted  Status = "COMPLETED"   // 已完成（终态）
	StatusCancelled  Status = "CANCELLED"   // 已取消（终态）
)

// ActiveStatuses 占用时间窗的状态集合：创建/提交时的冲突检测统计这些状态的预约单。
var ActiveStatuses = []Status{StatusPending, StatusApproved, StatusInProgress}

// ConfirmedStatuses 已确认占用时间窗的状态集合。
// 审批时只统计这些状态：同窗口的其他 PENDING 单是竞争者而不是占用者，
// 先批者胜出，后批者在重查时撞上已批准的单而失败。
var ConfirmedStatuses = []Status{StatusApproved, StatusInProgress}

// Reservation 预约单 GORM 模型。
// 金额单位为分，里程单位为公里。
type Reservation struct {
	ID              string `gorm:"primaryKey;size:36"`
	ReferenceNumber string `gorm:"uniqueIndex;size:32;not null"` // 人类可读单号

	VehicleID   string `gorm:"index;size:36;not null"`
	RequesterID string `gorm:"index;size:36;not null"` // 申请人
	OperatorID  string `gorm:"size:36"`                // 可选：司机
	ApproverID  string `gorm:"size:36"`                // 审批人（批准/驳回后写入）

	Purpose     string `gorm:"size:255"`
	Destination string `gorm:"size:255"`
	Passengers  int    `gorm:"not null;default:1"`
	NeedsDriver bool   `gorm:"not null;default:false"`

	StartTime time.Time `gorm:"index;not null"`
	EndTime   time.Time `gorm:"index;not null"` // 始终晚于 StartTime

	Status Status `gorm:"type:varchar(16);index;not null"`

	// 实际用车信息（取车/还车时写入）
	ActualStartTime  *time.Time
	ActualEndTime    *time.Time
	CheckInDistance  int64 `gorm:"not null;default:0"` // 取车时里程表读数
	CheckOutDistance int64 `gorm:"not null;default:0"` // 还车时里程表读数，不小于取车读数

	EstimatedCost int64 `gorm:"not null;default:0"` // 创建/修改时按计划窗口预估
	ActualCost    int64 `gorm:"not null;default:0"` // 还车时按实际用时与里程结算

	RejectionReason string `gorm:"size:255"`
	CheckInNotes    string `gorm:"size:255"`
	CheckOutNotes   string `gorm:"size:255"`
	Rating          int    `gorm:"not null;default:0"` // 1-5，0 表示未评分
	Feedback        string `gorm:"size:512"`

	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
	ApprovedAt *time.Time
}

// History 预约单状态流转记录：每次流转追加一行，只增不改不删。
type History struct {
	ID            uint      `gorm:"primaryKey;autoIncrement"`
	ReservationID string    `gorm:"index;size:36;not null"`
	FromStatus    Status    `gorm:"type:varchar(16)"` // 创建时为空
	ToStatus      Status    `gorm:"type:varchar(16);not null"`
	ChangedBy     string    `gorm:"size:36;not null"`
	Comment       string    `gorm:"size:255"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (History) TableName() string { return "reservation_histories" }
