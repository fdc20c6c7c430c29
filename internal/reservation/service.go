package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FleetBook/FleetBook/internal/audit"
	"github.com/FleetBook/FleetBook/internal/common/logger"
	"github.com/FleetBook/FleetBook/internal/fleet"
	"github.com/FleetBook/FleetBook/internal/notify"
	"github.com/google/uuid"
)

// 角色名与 JWT roles claim 保持一致。
const (
	RoleAdmin    = "admin"
	RoleApprover = "approver"
)

// Actor 发起操作的主体，由身份服务签发的凭证解析而来，引擎直接信任。
type Actor struct {
	ID    string
	Roles []string
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

// PreferenceSource 返回用户的通知偏好；为 nil 时视为全部接收。
type PreferenceSource func(ctx context.Context, userID string) notify.Preferences

// Service 封装预约单领域的核心用例（不依赖 gRPC / HTTP），便于复用和测试。
// 所有“读状态-校验-写状态”都在 store.Transact 的单事务内完成，
// 保证并发审批不会产生同车时间窗的重复占用。
type Service struct {
	store    Store
	notifier notify.Notifier
	sink     audit.Sink
	prefs    PreferenceSource
	log      logger.Logger
	now      func() time.Time
}

// NewService 创建服务。notifier / sink / prefs / log 均可为 nil（降级为不通知/不审计/不记日志）。
func NewService(store Store, notifier notify.Notifier, sink audit.Sink, prefs PreferenceSource, log logger.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		sink:     sink,
		prefs:    prefs,
		log:      log,
		now:      time.Now,
	}
}

// CreateInput 创建预约单的入参。
type CreateInput struct {
	VehicleID   string
	RequesterID string
	OperatorID  string
	Purpose     string
	Destination string
	Passengers  int
	NeedsDriver bool
	StartTime   time.Time
	EndTime     time.Time
	SaveAsDraft bool // true 时存为草稿，不进入审批也不占用时间窗
}

// Create 创建预约单。守卫：时间窗合法、开始时间不在过去、车辆可用、无时间窗冲突。
func (s *Service) Create(ctx context.Context, in CreateInput) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	vehicleID := strings.TrimSpace(in.VehicleID)
	requesterID := strings.TrimSpace(in.RequesterID)
	if vehicleID == "" {
		return nil, fmt.Errorf("%w: vehicle_id required", ErrBadRequest)
	}
	if requesterID == "" {
		return nil, fmt.Errorf("%w: requester_id required", ErrBadRequest)
	}
	now := s.now()
	if err := validateWindow(in.StartTime, in.EndTime, now); err != nil {
		return nil, err
	}
	passengers := in.Passengers
	if passengers <= 0 {
		passengers = 1
	}

	status := StatusPending
	if in.SaveAsDraft {
		status = StatusDraft
	}

	var res *Reservation
	err := s.store.Transact(ctx, func(tx Store) error {
		// 先锁车辆行：同车的“守卫-写入”路径全部在这把行锁上串行化。
		// 冲突统计是普通一致性读，必须发生在拿到锁之后，
		// 否则两个并发事务的读视图都建立在对方提交之前，双双通过守卫。
		v, err := tx.GetVehicleForUpdate(ctx, vehicleID)
		if err != nil {
			return err
		}
		if !v.IsActive {
			return fmt.Errorf("%w: vehicle %s is deactivated", ErrConflict, vehicleID)
		}
		// RESERVED / IN_USE 是预约自己驱动的瞬时状态，不挡未来窗口；
		// 维保和停运则整车不可约
		if v.Status == fleet.StatusMaintenance || v.Status == fleet.StatusOutOfService {
			return fmt.Errorf("%w: vehicle %s is %s", ErrConflict, vehicleID, v.Status)
		}
		n, err := tx.CountOverlapping(ctx, vehicleID, in.StartTime, in.EndTime, "", ActiveStatuses)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: vehicle %s already has a reservation overlapping the requested window", ErrConflict, vehicleID)
		}

		res = &Reservation{
			ID:              uuid.NewString(),
			ReferenceNumber: newReferenceNumber(now),
			VehicleID:       vehicleID,
			RequesterID:     requesterID,
			OperatorID:      strings.TrimSpace(in.OperatorID),
			Purpose:         strings.TrimSpace(in.Purpose),
			Destination:     strings.TrimSpace(in.Destination),
			Passengers:      passengers,
			NeedsDriver:     in.NeedsDriver,
			StartTime:       in.StartTime,
			EndTime:         in.EndTime,
			Status:          status,
			EstimatedCost:   EstimateCost(v.DailyRate, in.StartTime, in.EndTime),
		}
		if err := tx.CreateReservation(ctx, res); err != nil {
			return err
		}
		return tx.AppendHistory(ctx, &History{
			ReservationID: res.ID,
			FromStatus:    "",
			ToStatus:      status,
			ChangedBy:     requesterID,
			Comment:       "created",
		})
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventCreated, res, requesterID, "")
	return res, nil
}

// Submit 把草稿提交审批（DRAFT -> PENDING），重跑全部创建守卫。
func (s *Service) Submit(ctx context.Context, id string, actor Actor) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrBadRequest)
	}

	var res *Reservation
	err := s.store.Transact(ctx, func(tx Store) error {
		r, err := tx.GetReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != StatusDraft {
			return fmt.Errorf("%w: only draft reservations can be submitted (current: %s)", ErrConflict, r.Status)
		}
		if !canManage(actor, r) {
			return fmt.Errorf("%w: actor %s may not submit reservation %s", ErrForbidden, actor.ID, id)
		}
		now := s.now()
		if err := validateWindow(r.StartTime, r.EndTime, now); err != nil {
			return err
		}
		// 与 Create 相同：先锁车辆行，再做冲突统计
		v, err := tx.GetVehicleForUpdate(ctx, r.VehicleID)
		if err != nil {
			return err
		}
		if !v.IsActive || v.Status == fleet.StatusMaintenance || v.Status == fleet.StatusOutOfService {
			return fmt.Errorf("%w: vehicle %s is no longer available", ErrConflict, r.VehicleID)
		}
		n, err := tx.CountOverlapping(ctx, r.VehicleID, r.StartTime, r.EndTime, r.ID, ActiveStatuses)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: vehicle %s already has a reservation overlapping the requested window", ErrConflict, r.VehicleID)
		}
		if err := ApplyTransition(r, StatusPending, now); err != nil {
			return err
		}
		if err := tx.SaveReservation(ctx, r); err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, &History{
			ReservationID: r.ID,
			FromStatus:    StatusDraft,
			ToStatus:      StatusPending,
			ChangedBy:     actor.ID,
			Comment:       "submitted",
		}); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventSubmitted, res, actor.ID, "")
	return res, nil
}

// ModifyInput 修改预约单的入参。零值字段不更新（时间窗除外，必须成对给出）。
type ModifyInput struct {
	StartTime   time.Time
	EndTime     time.Time
	Purpose     string
	Destination string
	Passengers  int
	NeedsDriver *bool
	OperatorID  string
}

// Modify 修改预约单。仅 DRAFT / PENDING 可改；改动时间窗时排除自身重查冲突，
// 并按新窗口重新预估费用。状态保持不变，但记一条历史。
func (s *Service) Modify(ctx context.Context, id string, actor Actor, in ModifyInput) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrBadRequest)
	}

	var res *Reservation
	err := s.store.Transact(ctx, func(tx Store) error {
		r, err := tx.GetReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != StatusDraft && r.Status != StatusPending {
			return fmt.Errorf("%w: only draft or pending reservations can be modified (current: %s)", ErrConflict, r.Status)
		}
		if !canManage(actor, r) {
			return fmt.Errorf("%w: actor %s may not modify reservation %s", ErrForbidden, actor.ID, id)
		}

		if !in.StartTime.IsZero() || !in.EndTime.IsZero() {
			now := s.now()
			if err := validateWindow(in.StartTime, in.EndTime, now); err != nil {
				return err
			}
			// 换窗口等价于重新占位：锁车辆行之后再查冲突
			v, err := tx.GetVehicleForUpdate(ctx, r.VehicleID)
			if err != nil {
				return err
			}
			n, err := tx.CountOverlapping(ctx, r.VehicleID, in.StartTime, in.EndTime, r.ID, ActiveStatuses)
			if err != nil {
				return err
			}
			if n > 0 {
				return fmt.Errorf("%w: vehicle %s already has a reservation overlapping the requested window", ErrConflict, r.VehicleID)
			}
			r.StartTime = in.StartTime
			r.EndTime = in.EndTime
			r.EstimatedCost = EstimateCost(v.DailyRate, r.StartTime, r.EndTime)
		}
		if p := strings.TrimSpace(in.Purpose); p != "" {
			r.Purpose = p
		}
		if d := strings.TrimSpace(in.Destination); d != "" {
			r.Destination = d
		}
		if in.Passengers > 0 {
			r.Passengers = in.Passengers
		}
		if in.NeedsDriver != nil {
			r.NeedsDriver = *in.NeedsDriver
		}
		if op := strings.TrimSpace(in.OperatorID); op != "" {
			r.OperatorID = op
		}

		if err := tx.SaveReservation(ctx, r); err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, &History{
			ReservationID: r.ID,
			FromStatus:    r.Status,
			ToStatus:      r.Status,
			ChangedBy:     actor.ID,
			Comment:       "modified",
		}); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventModified, res, actor.ID, "")
	return res, nil
}

// Approve 批准预约单。要求审批角色；在同一事务内重查冲突：
// 同车另一单可能在本单排队等审批期间已被批准。
func (s *Service) Approve(ctx context.Context, id string, actor Actor, comment string) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrBadRequest)
	}
	if !actor.HasRole(RoleApprover) && !actor.HasRole(RoleAdmin) {
		return nil, fmt.Errorf("%w: actor %s is not an approver", ErrForbidden, actor.ID)
	}

	var res *Reservation
	err := s.store.Transact(ctx, func(tx Store) error {
		r, err := tx.GetReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != StatusPending {
			return fmt.Errorf("%w: only pending reservations can be approved (current: %s)", ErrConflict, r.Status)
		}
		// 冲突统计之前先锁车辆行。两笔同车审批各自锁的是不同的预约行，
		// 车辆行才是公共资源：后到者在这里阻塞到先行事务提交，
		// 随后的统计才能看到对方已提交的占用。
		v, err := tx.GetVehicleForUpdate(ctx, r.VehicleID)
		if err != nil {
			return err
		}
		// 只统计已确认占用的单：同窗口的其他 PENDING 单是竞争者，先批者胜出
		n, err := tx.CountOverlapping(ctx, r.VehicleID, r.StartTime, r.EndTime, r.ID, ConfirmedStatuses)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: vehicle %s already has an overlapping reservation", ErrConflict, r.VehicleID)
		}

		r.ApproverID = actor.ID
		if err := ApplyTransition(r, StatusApproved, s.now()); err != nil {
			return err
		}
		if err := tx.SaveReservation(ctx, r); err != nil {
			return err
		}

		// 目录侧状态同步：批准后车辆标记为 RESERVED（取车前的占位）
		if v.Status == fleet.StatusAvailable {
			v.Status = fleet.StatusReserved
			if err := tx.SaveVehicle(ctx, v); err != nil {
				return err
			}
		}

		if err := tx.AppendHistory(ctx, &History{
			ReservationID: r.ID,
			FromStatus:    StatusPending,
			ToStatus:      StatusApproved,
			ChangedBy:     actor.ID,
			Comment:       strings.TrimSpace(comment),
		}); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventApproved, res, actor.ID, strings.TrimSpace(comment))
	return res, nil
}

// Reject 驳回预约单，必须给出原因。
func (s *Service) Reject(ctx context.Context, id string, actor Actor, reason string) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	reason = strings.TrimSpace(reason)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrBadRequest)
	}
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason required", ErrBadRequest)
	}
	if !actor.HasRole(RoleApprover) && !actor.HasRole(RoleAdmin) {
		return nil, fmt.Errorf("%w: actor %s is not an approver", ErrForbidden, actor.ID)
	}

	var res *Reservation
	err := s.store.Transact(ctx, func(tx Store) error {
		r, err := tx.GetReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != StatusPending {
			return fmt.Errorf("%w: only pending reservations can be rejected (current: %s)", ErrConflict, r.Status)
		}
		r.ApproverID = actor.ID
		r.RejectionReason = reason
		if err := ApplyTransition(r, StatusRejected, s.now()); err != nil {
			return err
		}
		if err := tx.SaveReservation(ctx, r); err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, &History{
			ReservationID: r.ID,
			FromStatus:    StatusPending,
			ToStatus:      StatusRejected,
			ChangedBy:     actor.ID,
			Comment:       reason,
		}); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventRejected, res, actor.ID, reason)
	return res, nil
}

// Cancel 取消预约单。仅 PENDING / APPROVED 可取消；
// 用车中（IN_PROGRESS）必须走还车流程，不提供取消。
func (s *Service) Cancel(ctx context.Context, id string, actor Actor, reason string) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrBadRequest)
	}

	var res *Reservation
	err := s.store.Transact(ctx, func(tx Store) error {
		r, err := tx.GetReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != StatusPending && r.Status != StatusApproved {
			return fmt.Errorf("%w: only pending or approved reservations can be cancelled (current: %s)", ErrConflict, r.Status)
		}
		if !canManage(actor, r) && actor.ID != r.ApproverID {
			return fmt.Errorf("%w: actor %s may not cancel reservation %s", ErrForbidden, actor.ID, id)
		}

		from := r.Status
		if err := ApplyTransition(r, StatusCancelled, s.now()); err != nil {
			return err
		}
		if err := tx.SaveReservation(ctx, r); err != nil {
			return err
		}

		// 已批准的单释放目录侧的 RESERVED 占位；待审批的单从未占位，车辆状态不动
		if from == StatusApproved {
			v, err := tx.GetVehicleForUpdate(ctx, r.VehicleID)
			if err != nil {
				return err
			}
			if v.Status == fleet.StatusReserved {
				v.Status = fleet.StatusAvailable
				if err := tx.SaveVehicle(ctx, v); err != nil {
					return err
				}
			}
		}

		if err := tx.AppendHistory(ctx, &History{
			ReservationID: r.ID,
			FromStatus:    from,
			ToStatus:      StatusCancelled,
			ChangedBy:     actor.ID,
			Comment:       strings.TrimSpace(reason),
		}); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventCancelled, res, actor.ID, strings.TrimSpace(reason))
	return res, nil
}

// CheckIn 取车：记录里程表读数与实际开始时间，车辆转入 IN_USE。
func (s *Service) CheckIn(ctx context.Context, id string, actor Actor, distance int64, notes string) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrBadRequest)
	}
	if distance <= 0 {
		return nil, fmt.Errorf("%w: odometer reading required", ErrBadRequest)
	}

	var res *Reservation
	err := s.store.Transact(ctx, func(tx Store) error {
		r, err := tx.GetReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != StatusApproved {
			return fmt.Errorf("%w: only approved reservations can be checked in (current: %s)", ErrConflict, r.Status)
		}
		if !canOperate(actor, r) {
			return fmt.Errorf("%w: actor %s may not check in reservation %s", ErrForbidden, actor.ID, id)
		}
		v, err := tx.GetVehicleForUpdate(ctx, r.VehicleID)
		if err != nil {
			return err
		}
		if distance < v.CurrentDistance {
			return fmt.Errorf("%w: odometer reading %d is below vehicle's recorded distance %d", ErrBadRequest, distance, v.CurrentDistance)
		}

		r.CheckInDistance = distance
		r.CheckInNotes = strings.TrimSpace(notes)
		if err := ApplyTransition(r, StatusInProgress, s.now()); err != nil {
			return err
		}
		v.Status = fleet.StatusInUse
		if err := tx.SaveVehicle(ctx, v); err != nil {
			return err
		}
		if err := tx.SaveReservation(ctx, r); err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, &History{
			ReservationID: r.ID,
			FromStatus:    StatusApproved,
			ToStatus:      StatusInProgress,
			ChangedBy:     actor.ID,
			Comment:       fmt.Sprintf("checked in at %d km", distance),
		}); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventCheckedIn, res, actor.ID, "")
	return res, nil
}

// CheckOutInput 还车入参。
type CheckOutInput struct {
	Distance int64
	Notes    string
	Rating   int // 0 表示未评分
	Feedback string
}

// CheckOut 还车：校验里程读数、结算实际费用、车辆回到 AVAILABLE 并更新里程表。
// 读数低于取车读数直接报参数错误，绝不静默截断。
func (s *Service) CheckOut(ctx context.Context, id string, actor Actor, in CheckOutInput) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrBadRequest)
	}
	if in.Rating < 0 || in.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be within 1-5", ErrBadRequest)
	}

	var res *Reservation
	err := s.store.Transact(ctx, func(tx Store) error {
		r, err := tx.GetReservationForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r.Status != StatusInProgress {
			return fmt.Errorf("%w: only in-progress reservations can be checked out (current: %s)", ErrConflict, r.Status)
		}
		if !canOperate(actor, r) {
			return fmt.Errorf("%w: actor %s may not check out reservation %s", ErrForbidden, actor.ID, id)
		}
		if in.Distance < r.CheckInDistance {
			return fmt.Errorf("%w: check-out distance %d is below check-in distance %d", ErrBadRequest, in.Distance, r.CheckInDistance)
		}

		v, err := tx.GetVehicleForUpdate(ctx, r.VehicleID)
		if err != nil {
			return err
		}

		travelled := in.Distance - r.CheckInDistance
		r.CheckOutDistance = in.Distance
		r.CheckOutNotes = strings.TrimSpace(in.Notes)
		r.Rating = in.Rating
		r.Feedback = strings.TrimSpace(in.Feedback)
		if err := ApplyTransition(r, StatusCompleted, s.now()); err != nil {
			return err
		}
		r.ActualCost = SettleCost(v.DailyRate, v.DistanceRate, *r.ActualStartTime, *r.ActualEndTime, travelled)

		v.Status = fleet.StatusAvailable
		v.CurrentDistance = in.Distance
		if err := tx.SaveVehicle(ctx, v); err != nil {
			return err
		}
		if err := tx.SaveReservation(ctx, r); err != nil {
			return err
		}
		if err := tx.AppendHistory(ctx, &History{
			ReservationID: r.ID,
			FromStatus:    StatusInProgress,
			ToStatus:      StatusCompleted,
			ChangedBy:     actor.ID,
			Comment:       fmt.Sprintf("checked out at %d km, travelled %d km", in.Distance, travelled),
		}); err != nil {
			return err
		}
		res = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, notify.EventCheckedOut, res, actor.ID, "")
	return res, nil
}

// IsAvailable 查询车辆在给定闭区间内是否无活跃预约占用。
// 只读，无副作用。
func (s *Service) IsAvailable(ctx context.Context, vehicleID string, start, end time.Time) (bool, error) {
	if s == nil || s.store == nil {
		return false, fmt.Errorf("service not initialized")
	}
	vehicleID = strings.TrimSpace(vehicleID)
	if vehicleID == "" {
		return false, fmt.Errorf("%w: vehicle_id required", ErrBadRequest)
	}
	if !end.After(start) {
		return false, fmt.Errorf("%w: end_time must be after start_time", ErrBadRequest)
	}
	n, err := s.store.CountOverlapping(ctx, vehicleID, start, end, "", ActiveStatuses)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Reservation, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id required", ErrBadRequest)
	}
	return s.store.GetReservation(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Reservation, int64, error) {
	if s == nil || s.store == nil {
		return nil, 0, fmt.Errorf("service not initialized")
	}
	return s.store.ListReservations(ctx, f)
}

func (s *Service) ListHistory(ctx context.Context, reservationID string) ([]History, error) {
	if s == nil || s.store == nil {
		return nil, fmt.Errorf("service not initialized")
	}
	reservationID = strings.TrimSpace(reservationID)
	if reservationID == "" {
		return nil, fmt.Errorf("%w: reservation_id required", ErrBadRequest)
	}
	return s.store.ListHistory(ctx, reservationID)
}

// emit 发送审计记录与用户通知。两者都是尽力而为：
// 失败只记日志，绝不影响已提交的预约单状态变更。
func (s *Service) emit(ctx context.Context, t notify.EventType, r *Reservation, actorID, detail string) {
	if r == nil {
		return
	}
	if s.sink != nil {
		e := audit.Event{
			ActorID:  actorID,
			Action:   "reservation." + string(t),
			Entity:   "reservation",
			EntityID: r.ID,
			Detail:   detail,
		}
		if err := s.sink.Record(ctx, e); err != nil && s.log != nil {
			s.log.Warnf("audit record failed: %v", err)
		}
	}

	if s.notifier == nil {
		return
	}
	prefs := notify.Preferences{}
	if s.prefs != nil {
		prefs = s.prefs(ctx, r.RequesterID)
	}
	if !notify.ShouldNotify(prefs, t) {
		return
	}
	e := notify.Event{
		Type:            t,
		ReservationID:   r.ID,
		ReferenceNumber: r.ReferenceNumber,
		VehicleID:       r.VehicleID,
		RecipientID:     r.RequesterID,
		ActorID:         actorID,
		Detail:          detail,
		OccurredAt:      s.now(),
	}
	go func() {
		if err := s.notifier.Publish(context.WithoutCancel(ctx), e); err != nil && s.log != nil {
			s.log.Warnf("publish reservation notification failed: %v", err)
		}
	}()
}

// canManage 申请人本人或管理员可以提交/修改/取消自己的单。
func canManage(a Actor, r *Reservation) bool {
	return a.ID != "" && (a.ID == r.RequesterID || a.HasRole(RoleAdmin))
}

// canOperate 取车/还车允许申请人、司机或管理员操作。
func canOperate(a Actor, r *Reservation) bool {
	if a.ID == "" {
		return false
	}
	return a.ID == r.RequesterID || (r.OperatorID != "" && a.ID == r.OperatorID) || a.HasRole(RoleAdmin)
}

func validateWindow(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("%w: start_time and end_time required", ErrBadRequest)
	}
	if !end.After(start) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrBadRequest)
	}
	if start.Before(now) {
		return fmt.Errorf("%w: start_time is in the past", ErrBadRequest)
	}
	return nil
}

func newReferenceNumber(now time.Time) string {
	return fmt.Sprintf("FB-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.NewString()[:8]))
}
