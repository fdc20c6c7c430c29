package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FleetBook/FleetBook/internal/fleet"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store 预约单与关联车辆的存储接口。
// 守卫检查与写入必须在同一个事务视图里完成：通过 Transact 拿到的 Store
// 共享同一事务，ForUpdate 系列方法在事务内对行加锁并持有到提交。
// 带冲突统计的路径（create / submit / modify / approve）必须先
// GetVehicleForUpdate 再 CountOverlapping：车辆行是同车事务唯一的公共行，
// 不先拿这把锁，REPEATABLE READ 下两个并发事务的普通读互相看不到对方。
type Store interface {
	CreateReservation(ctx context.Context, r *Reservation) error
	SaveReservation(ctx context.Context, r *Reservation) error
	GetReservation(ctx context.Context, id string) (*Reservation, error)
	GetReservationForUpdate(ctx context.Context, id string) (*Reservation, error)
	ListReservations(ctx context.Context, f ListFilter) ([]Reservation, int64, error)

	// CountOverlapping 统计与 [start, end] 闭区间冲突、且状态落在 statuses 内的预约单数量。
	// excludeID 非空时忽略该单（修改/审批时排除自身）。无副作用，可在事务内反复调用。
	// 普通一致性读：串行化依赖调用方先锁车辆行。
	CountOverlapping(ctx context.Context, vehicleID string, start, end time.Time, excludeID string, statuses []Status) (int64, error)

	AppendHistory(ctx context.Context, h *History) error
	ListHistory(ctx context.Context, reservationID string) ([]History, error)

	GetVehicle(ctx context.Context, id string) (*fleet.Vehicle, error)
	GetVehicleForUpdate(ctx context.Context, id string) (*fleet.Vehicle, error)
	SaveVehicle(ctx context.Context, v *fleet.Vehicle) error

	Transact(ctx context.Context, fn func(Store) error) error
}

// ListFilter 查询条件：每个可选字段对应一个明确的查询谓词。
type ListFilter struct {
	VehicleID   string
	RequesterID string
	Status      Status
	From        *time.Time // 只要与 From 之后有交集的单（end_time >= From）
	To          *time.Time // 只要在 To 之前开始的单（start_time <= To）
	Offset      int
	Limit       int
}

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

var _ Store = (*Repo)(nil)

func (r *Repo) withCtx(ctx context.Context) *gorm.DB {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.WithContext(ctx)
}

func (r *Repo) CreateReservation(ctx context.Context, res *Reservation) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(res).Error
}

func (r *Repo) SaveReservation(ctx context.Context, res *Reservation) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(res).Error
}

func (r *Repo) GetReservation(ctx context.Context, id string) (*Reservation, error) {
	return r.getReservation(ctx, id, false)
}

func (r *Repo) GetReservationForUpdate(ctx context.Context, id string) (*Reservation, error) {
	return r.getReservation(ctx, id, true)
}

func (r *Repo) getReservation(ctx context.Context, id string, forUpdate bool) (*Reservation, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var res Reservation
	if err := db.Where("id = ?", id).First(&res).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &res, nil
}

func (r *Repo) CountOverlapping(ctx context.Context, vehicleID string, start, end time.Time, excludeID string, statuses []Status) (int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return 0, fmt.Errorf("repo db is nil")
	}
	// 闭区间冲突条件，与 Overlaps 保持同一定义
	q := db.Model(&Reservation{}).
		Where("vehicle_id = ?", vehicleID).
		Where("status IN ?", statuses).
		Where("start_time <= ? AND end_time >= ?", end, start)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) AppendHistory(ctx context.Context, h *History) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Create(h).Error
}

func (r *Repo) ListHistory(ctx context.Context, reservationID string) ([]History, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	var hs []History
	if err := db.Where("reservation_id = ?", reservationID).
		Order("created_at ASC, id ASC").Find(&hs).Error; err != nil {
		return nil, err
	}
	return hs, nil
}

// ListReservations 支持按车辆 / 申请人 / 状态 / 时间窗过滤 + 分页。
func (r *Repo) ListReservations(ctx context.Context, f ListFilter) ([]Reservation, int64, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, 0, fmt.Errorf("repo db is nil")
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	q := db.Model(&Reservation{})
	if f.VehicleID != "" {
		q = q.Where("vehicle_id = ?", f.VehicleID)
	}
	if f.RequesterID != "" {
		q = q.Where("requester_id = ?", f.RequesterID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != nil {
		q = q.Where("end_time >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("start_time <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []Reservation
	if err := q.Order("start_time DESC").Offset(offset).Limit(limit).Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *Repo) GetVehicle(ctx context.Context, id string) (*fleet.Vehicle, error) {
	return r.getVehicle(ctx, id, false)
}

func (r *Repo) GetVehicleForUpdate(ctx context.Context, id string) (*fleet.Vehicle, error) {
	return r.getVehicle(ctx, id, true)
}

func (r *Repo) getVehicle(ctx context.Context, id string, forUpdate bool) (*fleet.Vehicle, error) {
	db := r.withCtx(ctx)
	if db == nil {
		return nil, fmt.Errorf("repo db is nil")
	}
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var v fleet.Vehicle
	if err := db.Where("id = ?", id).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, id)
		}
		return nil, err
	}
	return &v, nil
}

func (r *Repo) SaveVehicle(ctx context.Context, v *fleet.Vehicle) error {
	db := r.withCtx(ctx)
	if db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return db.Save(v).Error
}

// Transact 在单个数据库事务内执行 fn；fn 返回错误时整体回滚。
func (r *Repo) Transact(ctx context.Context, fn func(Store) error) error {
	if r == nil || r.db == nil {
		return fmt.Errorf("repo db is nil")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repo{db: tx})
	})
}
