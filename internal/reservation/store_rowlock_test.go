package reservation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/FleetBook/FleetBook/internal/fleet"
)

// rowLockStore 按 MySQL InnoDB（REPEATABLE READ）的并发语义建模，
// 比 memStore 的整事务互斥严格得多：
//   - ForUpdate 读最新已提交数据，行锁持有到事务提交/回滚；
//   - 普通读走快照，读视图在事务内第一次普通读时建立；
//   - 写入缓冲在事务内，提交后才对其他事务可见。
// 并发用例用它验证守卫的加锁顺序本身正确，
// 而不是靠测试存储把整个事务串行化掩盖问题。
type rowLockStore struct {
	mu           sync.Mutex
	cond         *sync.Cond
	reservations map[string]*Reservation
	vehicles     map[string]*fleet.Vehicle
	histories    []History
	locks        map[string]*rowLockTx

	// 提交前的人为延迟，放大两个并发事务的重叠窗口
	commitDelay time.Duration
}

func newRowLockStore() *rowLockStore {
	s := &rowLockStore{
		reservations: make(map[string]*Reservation),
		vehicles:     make(map[string]*fleet.Vehicle),
		locks:        make(map[string]*rowLockTx),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

var _ Store = (*rowLockStore)(nil)

func (s *rowLockStore) Transact(ctx context.Context, fn func(Store) error) error {
	tx := &rowLockTx{
		s:         s,
		resWrites: make(map[string]*Reservation),
		vehWrites: make(map[string]*fleet.Vehicle),
	}
	err := fn(tx)
	if s.commitDelay > 0 {
		time.Sleep(s.commitDelay)
	}
	s.mu.Lock()
	if err == nil {
		tx.commitLocked()
	}
	tx.releaseLocked()
	s.cond.Broadcast()
	s.mu.Unlock()
	return err
}

// 事务外的单条语句等价于自动提交，直接读写已提交数据。

func (s *rowLockStore) CreateReservation(_ context.Context, r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[r.ID]; ok {
		return fmt.Errorf("reservation %s already exists", r.ID)
	}
	cp := *r
	s.reservations[r.ID] = &cp
	return nil
}

func (s *rowLockStore) SaveReservation(_ context.Context, r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.reservations[r.ID] = &cp
	return nil
}

func (s *rowLockStore) GetReservation(_ context.Context, id string) (*Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	cp := *r
	return &cp, nil
}

func (s *rowLockStore) GetReservationForUpdate(ctx context.Context, id string) (*Reservation, error) {
	return s.GetReservation(ctx, id)
}

func (s *rowLockStore) ListReservations(_ context.Context, f ListFilter) ([]Reservation, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Reservation
	for _, r := range s.reservations {
		if matchesListFilter(r, f) {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (s *rowLockStore) CountOverlapping(_ context.Context, vehicleID string, start, end time.Time, excludeID string, statuses []Status) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countOverlappingIn(s.reservations, vehicleID, start, end, excludeID, statuses), nil
}

func (s *rowLockStore) AppendHistory(_ context.Context, h *History) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *h
	cp.ID = uint(len(s.histories) + 1)
	s.histories = append(s.histories, cp)
	return nil
}

func (s *rowLockStore) ListHistory(_ context.Context, reservationID string) ([]History, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []History
	for _, h := range s.histories {
		if h.ReservationID == reservationID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *rowLockStore) GetVehicle(_ context.Context, id string) (*fleet.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, id)
	}
	cp := *v
	return &cp, nil
}

func (s *rowLockStore) GetVehicleForUpdate(ctx context.Context, id string) (*fleet.Vehicle, error) {
	return s.GetVehicle(ctx, id)
}

func (s *rowLockStore) SaveVehicle(_ context.Context, v *fleet.Vehicle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *v
	s.vehicles[v.ID] = &cp
	return nil
}

// 测试直接预置数据用（绕过业务守卫）。
func (s *rowLockStore) seedReservation(r Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := r
	s.reservations[r.ID] = &cp
}

func (s *rowLockStore) seedVehicle(v fleet.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := v
	s.vehicles[v.ID] = &cp
}

func (s *rowLockStore) reservation(id string) Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.reservations[id]
}

func (s *rowLockStore) vehicle(id string) fleet.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.vehicles[id]
}

// rowLockTx 一个未提交事务的视图：行锁集合 + 读快照 + 写缓冲。
type rowLockTx struct {
	s *rowLockStore

	snapRes   map[string]*Reservation
	snapVeh   map[string]*fleet.Vehicle
	snapHist  []History
	snapReady bool

	resWrites  map[string]*Reservation
	vehWrites  map[string]*fleet.Vehicle
	histWrites []History

	held []string
}

var _ Store = (*rowLockTx)(nil)

// 已在事务内，直接执行
func (t *rowLockTx) Transact(_ context.Context, fn func(Store) error) error {
	return fn(t)
}

// lockRow 拿不到锁就阻塞，直到持有者提交/回滚释放。
func (t *rowLockTx) lockRow(key string) {
	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		owner, taken := s.locks[key]
		if owner == t {
			return
		}
		if !taken {
			s.locks[key] = t
			t.held = append(t.held, key)
			return
		}
		s.cond.Wait()
	}
}

// ensureSnapshotLocked 第一次普通读时建立读视图。调用方必须已持有 s.mu。
func (t *rowLockTx) ensureSnapshotLocked() {
	if t.snapReady {
		return
	}
	t.snapRes = make(map[string]*Reservation, len(t.s.reservations))
	for id, r := range t.s.reservations {
		cp := *r
		t.snapRes[id] = &cp
	}
	t.snapVeh = make(map[string]*fleet.Vehicle, len(t.s.vehicles))
	for id, v := range t.s.vehicles {
		cp := *v
		t.snapVeh[id] = &cp
	}
	t.snapHist = append([]History(nil), t.s.histories...)
	t.snapReady = true
}

func (t *rowLockTx) snapshot() {
	t.s.mu.Lock()
	t.ensureSnapshotLocked()
	t.s.mu.Unlock()
}

func (t *rowLockTx) CreateReservation(_ context.Context, r *Reservation) error {
	if _, ok := t.resWrites[r.ID]; ok {
		return fmt.Errorf("reservation %s already exists", r.ID)
	}
	t.s.mu.Lock()
	_, committed := t.s.reservations[r.ID]
	t.s.mu.Unlock()
	if committed {
		return fmt.Errorf("reservation %s already exists", r.ID)
	}
	cp := *r
	t.resWrites[r.ID] = &cp
	return nil
}

func (t *rowLockTx) SaveReservation(_ context.Context, r *Reservation) error {
	cp := *r
	t.resWrites[r.ID] = &cp
	return nil
}

func (t *rowLockTx) GetReservation(_ context.Context, id string) (*Reservation, error) {
	if r, ok := t.resWrites[id]; ok {
		cp := *r
		return &cp, nil
	}
	t.snapshot()
	r, ok := t.snapRes[id]
	if !ok {
		return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	cp := *r
	return &cp, nil
}

// GetReservationForUpdate 当前读：锁行并读取最新已提交版本。
func (t *rowLockTx) GetReservationForUpdate(_ context.Context, id string) (*Reservation, error) {
	t.lockRow("reservation/" + id)
	if r, ok := t.resWrites[id]; ok {
		cp := *r
		return &cp, nil
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	r, ok := t.s.reservations[id]
	if !ok {
		return nil, fmt.Errorf("%w: reservation %s", ErrNotFound, id)
	}
	cp := *r
	return &cp, nil
}

func (t *rowLockTx) ListReservations(_ context.Context, f ListFilter) ([]Reservation, int64, error) {
	t.snapshot()
	var out []Reservation
	for _, r := range t.visibleReservations() {
		if matchesListFilter(r, f) {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

// CountOverlapping 普通一致性读：只看快照 + 本事务自己的写。
func (t *rowLockTx) CountOverlapping(_ context.Context, vehicleID string, start, end time.Time, excludeID string, statuses []Status) (int64, error) {
	t.snapshot()
	return countOverlappingIn(t.visibleReservations(), vehicleID, start, end, excludeID, statuses), nil
}

func (t *rowLockTx) visibleReservations() map[string]*Reservation {
	visible := make(map[string]*Reservation, len(t.snapRes)+len(t.resWrites))
	for id, r := range t.snapRes {
		visible[id] = r
	}
	for id, r := range t.resWrites {
		visible[id] = r
	}
	return visible
}

func (t *rowLockTx) AppendHistory(_ context.Context, h *History) error {
	cp := *h
	t.histWrites = append(t.histWrites, cp)
	return nil
}

func (t *rowLockTx) ListHistory(_ context.Context, reservationID string) ([]History, error) {
	t.snapshot()
	var out []History
	for _, h := range t.snapHist {
		if h.ReservationID == reservationID {
			out = append(out, h)
		}
	}
	for _, h := range t.histWrites {
		if h.ReservationID == reservationID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (t *rowLockTx) GetVehicle(_ context.Context, id string) (*fleet.Vehicle, error) {
	if v, ok := t.vehWrites[id]; ok {
		cp := *v
		return &cp, nil
	}
	t.snapshot()
	v, ok := t.snapVeh[id]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, id)
	}
	cp := *v
	return &cp, nil
}

// GetVehicleForUpdate 当前读：锁车辆行并读取最新已提交版本。
func (t *rowLockTx) GetVehicleForUpdate(_ context.Context, id string) (*fleet.Vehicle, error) {
	t.lockRow("vehicle/" + id)
	if v, ok := t.vehWrites[id]; ok {
		cp := *v
		return &cp, nil
	}
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	v, ok := t.s.vehicles[id]
	if !ok {
		return nil, fmt.Errorf("%w: vehicle %s", ErrNotFound, id)
	}
	cp := *v
	return &cp, nil
}

func (t *rowLockTx) SaveVehicle(_ context.Context, v *fleet.Vehicle) error {
	cp := *v
	t.vehWrites[v.ID] = &cp
	return nil
}

// commitLocked 把写缓冲落到已提交状态。调用方必须已持有 s.mu。
func (t *rowLockTx) commitLocked() {
	for id, r := range t.resWrites {
		cp := *r
		t.s.reservations[id] = &cp
	}
	for id, v := range t.vehWrites {
		cp := *v
		t.s.vehicles[id] = &cp
	}
	for _, h := range t.histWrites {
		h.ID = uint(len(t.s.histories) + 1)
		t.s.histories = append(t.s.histories, h)
	}
}

// releaseLocked 释放本事务持有的全部行锁。调用方必须已持有 s.mu。
func (t *rowLockTx) releaseLocked() {
	for _, key := range t.held {
		if t.s.locks[key] == t {
			delete(t.s.locks, key)
		}
	}
	t.held = nil
}

func matchesListFilter(r *Reservation, f ListFilter) bool {
	if f.VehicleID != "" && r.VehicleID != f.VehicleID {
		return false
	}
	if f.RequesterID != "" && r.RequesterID != f.RequesterID {
		return false
	}
	if f.Status != "" && r.Status != f.Status {
		return false
	}
	if f.From != nil && r.EndTime.Before(*f.From) {
		return false
	}
	if f.To != nil && r.StartTime.After(*f.To) {
		return false
	}
	return true
}

func countOverlappingIn(rs map[string]*Reservation, vehicleID string, start, end time.Time, excludeID string, statuses []Status) int64 {
	var n int64
	for _, r := range rs {
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
	return n
}
