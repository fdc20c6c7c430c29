package fleet

import (
	"time"
)

// Status 车辆状态枚举（持久化为字符串）。
// 预约引擎只在预约单状态流转的事务内写 Status / CurrentDistance，
// 其余字段归车辆目录管理。
type Status string

const (
	StatusAvailable    Status = "AVAILABLE"      // 可预约
	StatusReserved     Status = "RESERVED"       // 已被批准的预约占用，待取车
	StatusInUse        Status = "IN_USE"         // 用车中
	StatusMaintenance  Status = "MAINTENANCE"    // 维保中
	StatusOutOfService Status = "OUT_OF_SERVICE" // 停运
)

// ValidStatus 判断是否为已知的车辆状态。
func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusInUse, StatusMaintenance, StatusOutOfService:
		return true
	}
	return false
}

// Vehicle 是 vehicles 表的 GORM 模型。
type Vehicle struct {
	ID          string `gorm:"primaryKey;size:36"`
	PlateNumber string `gorm:"uniqueIndex;size:32;not null"`
	VIN         string `gorm:"size:64"`
	Model       string `gorm:"size:64"`
	Status      Status `gorm:"type:varchar(16);index;not null"`

	// CurrentDistance 里程表读数（公里），只增不减；
	// 还车时由预约引擎写入最新读数。
	CurrentDistance int64 `gorm:"not null;default:0"`

	// 计费参数（单位：分）
	DailyRate    int64 `gorm:"not null;default:0"` // 日租金
	DistanceRate int64 `gorm:"not null;default:0"` // 里程单价（每公里）

	// IsActive 停用标记：停用的车辆保留历史数据但不可再被预约。
	IsActive bool `gorm:"not null;default:true"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
