package reservation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FleetBook/FleetBook/internal/fleet"
)

// memStore 单测用的内存 Store。Transact 持有互斥锁直到回调返回，
// 模拟数据库事务的串行化效果；读写一律拷贝，守卫失败不会留下半截状态。
type memStore struct {
	mu           sync.Mutex
	reservations map[string]*Reservation
	vehicles     map[string]*fleet.Vehicle
	histories    []History
}

func newMemStore() *memStore {
	return &memStore{
		reservations: make(map[string]*Reservation),
		vehicles:     make(map[string]*fleet.Vehicle),
	}
}

var _ Store = (*memStore)(nil)

func (s *memStore) Transact(ctx context.Context, fn func(Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&memTx{s: s})
}

func (s *memStore) CreateReservation(ctx context.Context, r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).CreateReservation(ctx, r)
}

func (s *memStore) SaveReservation(ctx context.Context, r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).SaveReservation(ctx, r)
}

func (s *memStore) GetReservation(ctx context.Context, id string) (*Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).GetReservation(ctx, id)
}

func (s *memStore) GetReservationForUpdate(ctx context.Context, id string) (*Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).GetReservation(ctx, id)
}

func (s *memStore) ListReservations(ctx context.Context, f ListFilter) ([]Reservation, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).ListReservations(ctx, f)
}

func (s *memStore) CountOverlapping(ctx context.Context, vehicleID string, start, end time.Time, excludeID string, statuses []Status) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).CountOverlapping(ctx, vehicleID, start, end, excludeID, statuses)
}

func (s *memStore) AppendHistory(ctx context.Context, h *History) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).AppendHistory(ctx, h)
}

func (s *memStore) ListHistory(ctx context.Context, reservationID string) ([]History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).ListHistory(ctx, reservationID)
}

func (s *memStore) GetVehicle(ctx context.Context, id string) (*fleet.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).GetVehicle(ctx, id)
}

func (s *memStore) GetVehicleForUpdate(ctx context.Context, id string) (*fleet.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).GetVehicle(ctx, id)
}

func (s *memStore) SaveVehicle(ctx context.Context, v *fleet.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&memTx{s: s}).SaveVehicle(ctx, v)
}

// 测试直接预置数据用（绕过业务守卫）。
func (s *memStore) seedReservation(r Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := r
	s.reservations[r.ID] = &cp
}

func (s *memStore) seedVehicle(v fleet.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := v
	s.vehicles[v.ID] = &cp
}

func (s *memStore) reservation(id string) Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.reservations[id]
}

func (s *memStore) vehicle(id string) fleet.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.vehicles[id]
}

// memTx 是事务视图：调用方已持有 memStore 的锁。
type memTx struct {
	s *memStore
}

var _ Store = (*memTx)(nil)

// 已在事务内，直接执行
func (t *memTx) Transact(ctx context.Context, fn func(Store) error) error {
	return fn(t)
}

func (t *memTx) CreateReservation(_ context.Context, r *Reservation) error {
	if _, ok := t.s.reservations[r.ID]; ok {
		return fmt.Errorf("reservation %s already exists", r.ID)
	}
	cp := *r
	t.s.reservations[r.ID] = &cp
	return nil
}

func (t *memTx) SaveReservation(_ context.Context, r *Reservation) error {
	cp := *r
	t.s.reservations[r.ID] = &cp
	return nil
}

func (t *memTx) GetReservation(_ context.Context, id string) (*Reservation, error) {
	r, ok := t.s.reservations[id]
	if !ok {
		return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	cp := *r
	return &cp, nil
}

func (t *memTx) GetReservationForUpdate(ctx context.Context, id string) (*Reservation, error) {
	return t.GetReservation(ctx, id)
}

func (t *memTx) ListReservations(_ context.Context, f ListFilter) ([]Reservation, int64, error) {
	var out []Reservation
	for _, r := range t.s.reservations {
		if f.VehicleID != "" && r.VehicleID != f.VehicleID {
			continue
		}
		if f.RequesterID != "" && r.RequesterID != f.RequesterID {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.From != nil && r.EndTime.Before(*f.From) {
			continue
		}
		if f.To != nil && r.StartTime.After(*f.To) {
			continue
		}
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

func (t *memTx) CountOverlapping(_ context.Context, vehicleID string, start, end time.Time, excludeID string, statuses []Status) (int64, error) {
	var n int64
	for _, r := range t.s.reservations {
		if r.VehicleID != vehicleID || r.ID == excludeID {
			continue
		}
		matched := false
		for _, st := range statuses {
			if r.Status == st {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if Overlaps(r.StartTime, r.EndTime, start, end) {
			n++
		}
	}
	return n, nil
}

func (t *memTx) AppendHistory(_ context.Context, h *History) error {
	cp := *h
	cp.ID = uint(len(t.s.histories) + 1)
	t.s.histories = append(t.s.histories, cp)
	return nil
}

func (t *memTx) ListHistory(_ context.Context, reservationID string) ([]History, error) {
	var out []History
	for _, h := range t.s.histories {
		if h.ReservationID == reservationID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (t *memTx) GetVehicle(_ context.Context, id string) (*fleet.Vehicle, error) {
	v, ok := t.s.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, id)
	}
	cp := *v
	return &cp, nil
}

func (t *memTx) GetVehicleForUpdate(ctx context.Context, id string) (*fleet.Vehicle, error) {
	return t.GetVehicle(ctx, id)
}

func (t *memTx) SaveVehicle(_ context.Context, v *fleet.Vehicle) error {
	cp := *v
	t.s.vehicles[v.ID] = &cp
	return nil
}
