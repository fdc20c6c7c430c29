package reservation

import (
	"fmt"
	"time"
)

// AllowTransition 定义预约单状态机的允许流转关系。
// 取消只允许发生在取车之前；用车中的预约单必须走还车（check-out）收尾。
var AllowTransition = map[Status][]Status{
	StatusDraft:      {StatusPending, StatusCancelled},
	StatusPending:    {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:   {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted},
	// 终态：不允许再流转
	StatusRejected:  {},
	StatusCompleted: {},
	StatusCancelled: {},
}

// IsTerminal 判断状态是否为终态。
func IsTerminal(s Status) bool {
	allowed, ok := AllowTransition[s]
	return ok && len(allowed) == 0
}

// CanTransition 判断 from -> to 是否是一个允许的状态流转。
// from == to 视为允许（修改预约单内容时状态不变，但仍记一条历史）。
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	allowed, ok := AllowTransition[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ApplyTransition 对预约单应用状态变更，并维护关键时间字段（只写一次）。
// 非法流转返回包装了 ErrConflict 的错误。
func ApplyTransition(r *Reservation, to Status, now time.Time) error {
	if r == nil {
		return fmt.Errorf("reservation is nil")
	}
	from := r.Status
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: invalid reservation status transition: %s -> %s", ErrConflict, from, to)
	}

	r.Status = to

	switch to {
	case StatusApproved:
		if r.ApprovedAt == nil {
			t := now
			r.ApprovedAt = &t
		}
	case StatusInProgress:
		if r.ActualStartTime == nil {
			t := now
			r.ActualStartTime = &t
		}
	case StatusCompleted:
		if r.ActualEndTime == nil {
			t := now
			r.ActualEndTime = &t
		}
	}
	return nil
}
