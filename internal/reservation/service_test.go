package reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/FleetBook/FleetBook/internal/fleet"
	"github.com/FleetBook/FleetBook/internal/notify"
)

var (
	testRequester = Actor{ID: "user-1"}
	testApprover  = Actor{ID: "boss-1", Roles: []string{"approver"}}
	testAdmin     = Actor{ID: "root-1", Roles: []string{"admin"}}
)

func newTestService(store Store, clock *time.Time) *Service {
	svc := NewService(store, notify.Noop{}, nil, nil, nil)
	svc.now = func() time.Time { return *clock }
	return svc
}

// 两种测试 Store 都支持直接预置车辆。
type vehicleSeeder interface {
	seedVehicle(v fleet.Vehicle)
}

func seedAvailableVehicle(store vehicleSeeder, id string) {
	store.seedVehicle(fleet.Vehicle{
		ID:              id,
		PlateNumber:     "FB-" + id,
		Status:          fleet.StatusAvailable,
		CurrentDistance: 900,
		DailyRate:       10000,
		DistanceRate:    50,
		IsActive:        true,
	})
}

func testCreateInput(clock time.Time) CreateInput {
	return CreateInput{
		VehicleID:   "veh-1",
		RequesterID: testRequester.ID,
		Purpose:     "client visit",
		Destination: "airport",
		Passengers:  2,
		StartTime:   clock.Add(time.Hour),
		EndTime:     clock.Add(49 * time.Hour), // 48 小时，计 2 天
	}
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if r.Status != StatusPending {
		t.Fatalf("expected status pending, got %s", r.Status)
	}
	if r.EstimatedCost != 20000 {
		t.Fatalf("expected estimated cost 20000, got %d", r.EstimatedCost)
	}
	if !strings.HasPrefix(r.ReferenceNumber, "FB-20260301-") {
		t.Fatalf("unexpected reference number %q", r.ReferenceNumber)
	}

	hs, err := svc.ListHistory(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	if len(hs) != 1 || hs[0].ToStatus != StatusPending || hs[0].Comment != "created" {
		t.Fatalf("unexpected history %+v", hs)
	}
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	in := testCreateInput(clock)
	in.StartTime = clock.Add(-time.Hour)
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for past start, got %v", err)
	}

	in = testCreateInput(clock)
	in.EndTime = in.StartTime
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for empty window, got %v", err)
	}

	in = testCreateInput(clock)
	in.RequesterID = " "
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for missing requester, got %v", err)
	}

	in = testCreateInput(clock)
	in.VehicleID = "no-such-vehicle"
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found for unknown vehicle, got %v", err)
	}
}

func TestCreateConflicts(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	if _, err := svc.Create(ctx, testCreateInput(clock)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 同车同窗口
	if _, err := svc.Create(ctx, testCreateInput(clock)); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for overlapping window, got %v", err)
	}

	// 闭区间：新单开始时刻恰好等于已有单结束时刻，同样冲突
	in := testCreateInput(clock)
	in.StartTime = clock.Add(49 * time.Hour)
	in.EndTime = clock.Add(72 * time.Hour)
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for touching window, got %v", err)
	}

	// 完全错开则允许
	in.StartTime = clock.Add(50 * time.Hour)
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("expected disjoint window allowed, got %v", err)
	}

	// 停用/维保中的车辆不可预约
	store.seedVehicle(fleet.Vehicle{
		ID: "veh-off", PlateNumber: "FB-veh-off",
		Status: fleet.StatusAvailable, DailyRate: 10000, IsActive: false,
	})
	in = testCreateInput(clock)
	in.VehicleID = "veh-off"
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for deactivated vehicle, got %v", err)
	}
	store.seedVehicle(fleet.Vehicle{
		ID: "veh-mnt", PlateNumber: "FB-veh-mnt",
		Status: fleet.StatusMaintenance, DailyRate: 10000, IsActive: true,
	})
	in.VehicleID = "veh-mnt"
	if _, err := svc.Create(ctx, in); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict for vehicle in maintenance, got %v", err)
	}
}

func TestDraftLifecycle(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	in := testCreateInput(clock)
	in.SaveAsDraft = true
	draft, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create draft: %v", err)
	}
	if draft.Status != StatusDraft {
		t.Fatalf("expected status draft, got %s", draft.Status)
	}

	// 草稿不占用时间窗：同一窗口仍可正常下单
	if _, err := svc.Create(ctx, testCreateInput(clock)); err != nil {
		t.Fatalf("expected draft not to block window, got %v", err)
	}

	// 此时提交草稿要重查冲突，应被拒
	if _, err := svc.Submit(ctx, draft.ID, testRequester); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on submit, got %v", err)
	}

	// 换一辆车的草稿可以正常提交
	seedAvailableVehicle(store, "veh-2")
	in = testCreateInput(clock)
	in.VehicleID = "veh-2"
	in.SaveAsDraft = true
	draft2, err := svc.Create(ctx, in)
	if err != nil {
		t.Fatalf("Create draft: %v", err)
	}
	if _, err := svc.Submit(ctx, draft2.ID, Actor{ID: "intruder"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner submit, got %v", err)
	}
	sub, err := svc.Submit(ctx, draft2.ID, testRequester)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.Status != StatusPending {
		t.Fatalf("expected status pending after submit, got %s", sub.Status)
	}
	// 已提交的单不能重复提交
	if _, err := svc.Submit(ctx, draft2.ID, testRequester); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on double submit, got %v", err)
	}
}

func TestModify(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Modify(ctx, r.ID, Actor{ID: "intruder"}, ModifyInput{Purpose: "x"}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner modify, got %v", err)
	}

	// 缩短到 24 小时内，费用重估为 1 天
	got, err := svc.Modify(ctx, r.ID, testRequester, ModifyInput{
		StartTime: clock.Add(time.Hour),
		EndTime:   clock.Add(20 * time.Hour),
		Purpose:   "site survey",
	})
	if err != nil {
		t.Fatalf("Modify: %v", err)
	}
	if got.EstimatedCost != 10000 {
		t.Fatalf("expected re-estimated cost 10000, got %d", got.EstimatedCost)
	}
	if got.Purpose != "site survey" {
		t.Fatalf("expected purpose updated, got %q", got.Purpose)
	}

	// 改到与他人冲突的窗口要被拒
	in := testCreateInput(clock)
	in.StartTime = clock.Add(72 * time.Hour)
	in.EndTime = clock.Add(96 * time.Hour)
	in.RequesterID = "user-2"
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Modify(ctx, r.ID, testRequester, ModifyInput{
		StartTime: clock.Add(80 * time.Hour),
		EndTime:   clock.Add(90 * time.Hour),
	}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on modify into taken window, got %v", err)
	}

	// 已批准的单不可再改
	if _, err := svc.Approve(ctx, r.ID, testApprover, "ok"); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := svc.Modify(ctx, r.ID, testRequester, ModifyInput{Purpose: "late change"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on modifying approved reservation, got %v", err)
	}
}

func TestApprove(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Approve(ctx, r.ID, testRequester, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for non-approver, got %v", err)
	}

	got, err := svc.Approve(ctx, r.ID, testApprover, "have a safe trip")
	if err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if got.Status != StatusApproved {
		t.Fatalf("expected status approved, got %s", got.Status)
	}
	if got.ApproverID != testApprover.ID {
		t.Fatalf("expected approver recorded, got %q", got.ApproverID)
	}
	if got.ApprovedAt == nil {
		t.Fatalf("expected approved_at set")
	}
	if v := store.vehicle("veh-1"); v.Status != fleet.StatusReserved {
		t.Fatalf("expected vehicle reserved after approval, got %s", v.Status)
	}

	if _, err := svc.Approve(ctx, r.ID, testApprover, ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict on double approve, got %v", err)
	}

	// RESERVED 是瞬时占位，不挡错开的未来窗口
	in := testCreateInput(clock)
	in.StartTime = clock.Add(50 * time.Hour)
	in.EndTime = clock.Add(72 * time.Hour)
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("expected disjoint window allowed while vehicle reserved, got %v", err)
	}
}

// 两张同车同窗口的待审批单并发批准，只能有一张成功。
// 存储按行锁 + 快照读建模：两笔事务各自锁的是不同的预约行，
// 只有先锁公共的车辆行再查冲突，后到者才能看到先行事务已提交的占用；
// 提交前的延迟保证两笔事务确实重叠，而不是前后脚串行执行。
func TestConcurrentApproveSingleWinner(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newRowLockStore()
	store.commitDelay = 50 * time.Millisecond
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	window := testCreateInput(clock)
	for _, id := range []string{"res-a", "res-b"} {
		store.seedReservation(Reservation{
			ID:              id,
			ReferenceNumber: "FB-20260301-" + strings.ToUpper(id),
			VehicleID:       "veh-1",
			RequesterID:     "user-" + id,
			Passengers:      1,
			StartTime:       window.StartTime,
			EndTime:         window.EndTime,
			Status:          StatusPending,
		})
	}

	errs := make(map[string]error, 2)
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, id := range []string{"res-a", "res-b"} {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Approve(ctx, id, testApprover, "")
			mu.Lock()
			errs[id] = err
			mu.Unlock()
		}(id)
	}
	wg.Wait()

	var approved, conflicted int
	for id, err := range errs {
		switch {
		case err == nil:
			approved++
		case errors.Is(err, ErrConflict):
			conflicted++
		default:
			t.Fatalf("approve %s: unexpected error %v", id, err)
		}
	}
	if approved != 1 || conflicted != 1 {
		t.Fatalf("expected exactly one winner, got approved=%d conflicted=%d", approved, conflicted)
	}

	var stored int
	for _, id := range []string{"res-a", "res-b"} {
		if store.reservation(id).Status == StatusApproved {
			stored++
		}
	}
	if stored != 1 {
		t.Fatalf("expected exactly one approved reservation in store, got %d", stored)
	}
	if v := store.vehicle("veh-1"); v.Status != fleet.StatusReserved {
		t.Fatalf("expected vehicle reserved by the winner, got %s", v.Status)
	}
}

// 两个并发 Create 抢同车同窗口，只能插入一张活跃单。
func TestConcurrentCreateSingleWinner(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newRowLockStore()
	store.commitDelay = 50 * time.Millisecond
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := testCreateInput(clock)
			in.RequesterID = fmt.Sprintf("user-%d", i)
			_, errs[i] = svc.Create(ctx, in)
		}(i)
	}
	wg.Wait()

	var created, conflicted int
	for i, err := range errs {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrConflict):
			conflicted++
		default:
			t.Fatalf("create %d: unexpected error %v", i, err)
		}
	}
	if created != 1 || conflicted != 1 {
		t.Fatalf("expected exactly one insert, got created=%d conflicted=%d", created, conflicted)
	}
	if _, total, err := store.ListReservations(ctx, ListFilter{VehicleID: "veh-1"}); err != nil || total != 1 {
		t.Fatalf("expected exactly one stored reservation, got total=%d err=%v", total, err)
	}
}

func TestReject(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Reject(ctx, r.ID, testApprover, "  "); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for empty reason, got %v", err)
	}
	if _, err := svc.Reject(ctx, r.ID, testRequester, "no"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for non-approver, got %v", err)
	}

	got, err := svc.Reject(ctx, r.ID, testApprover, "vehicle needed elsewhere")
	if err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if got.Status != StatusRejected {
		t.Fatalf("expected status rejected, got %s", got.Status)
	}
	if got.RejectionReason != "vehicle needed elsewhere" {
		t.Fatalf("expected rejection reason recorded, got %q", got.RejectionReason)
	}

	// 驳回是终态
	if _, err := svc.Approve(ctx, r.ID, testApprover, ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict approving rejected reservation, got %v", err)
	}
	if _, err := svc.Cancel(ctx, r.ID, testRequester, ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict cancelling rejected reservation, got %v", err)
	}
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	// 待审批的单从未占位，取消后车辆状态不动
	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Cancel(ctx, r.ID, Actor{ID: "intruder"}, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for stranger cancel, got %v", err)
	}
	got, err := svc.Cancel(ctx, r.ID, testRequester, "plans changed")
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if got.Status != StatusCancelled {
		t.Fatalf("expected status cancelled, got %s", got.Status)
	}
	if v := store.vehicle("veh-1"); v.Status != fleet.StatusAvailable {
		t.Fatalf("expected vehicle untouched, got %s", v.Status)
	}

	// 已批准的单取消时释放 RESERVED 占位
	r2, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Approve(ctx, r2.ID, testApprover, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if v := store.vehicle("veh-1"); v.Status != fleet.StatusReserved {
		t.Fatalf("expected vehicle reserved, got %s", v.Status)
	}
	if _, err := svc.Cancel(ctx, r2.ID, testAdmin, "admin override"); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if v := store.vehicle("veh-1"); v.Status != fleet.StatusAvailable {
		t.Fatalf("expected vehicle released, got %s", v.Status)
	}

	// 用车中的单必须走还车流程，不能取消
	r3, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Approve(ctx, r3.ID, testApprover, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := svc.CheckIn(ctx, r3.ID, testRequester, 1000, ""); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if _, err := svc.Cancel(ctx, r3.ID, testAdmin, ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict cancelling in-progress reservation, got %v", err)
	}
}

func TestCheckInCheckOutSettlement(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Approve(ctx, r.ID, testApprover, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}

	got, err := svc.CheckIn(ctx, r.ID, testRequester, 1000, "full tank")
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}
	if got.Status != StatusInProgress {
		t.Fatalf("expected status in_progress, got %s", got.Status)
	}
	if got.ActualStartTime == nil || !got.ActualStartTime.Equal(clock) {
		t.Fatalf("expected actual start %v, got %v", clock, got.ActualStartTime)
	}
	if v := store.vehicle("veh-1"); v.Status != fleet.StatusInUse {
		t.Fatalf("expected vehicle in use, got %s", v.Status)
	}

	// 实际用车 26 小时（计 2 天）、行驶 50 公里
	clock = clock.Add(26 * time.Hour)
	got, err = svc.CheckOut(ctx, r.ID, testRequester, CheckOutInput{
		Distance: 1050,
		Notes:    "returned clean",
		Rating:   5,
		Feedback: "smooth ride",
	})
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Fatalf("expected status completed, got %s", got.Status)
	}
	if want := int64(10000*2 + 50*50); got.ActualCost != want {
		t.Fatalf("expected actual cost %d, got %d", want, got.ActualCost)
	}
	if got.CheckOutDistance != 1050 || got.Rating != 5 {
		t.Fatalf("unexpected check-out record %+v", got)
	}

	v := store.vehicle("veh-1")
	if v.Status != fleet.StatusAvailable {
		t.Fatalf("expected vehicle available after check-out, got %s", v.Status)
	}
	if v.CurrentDistance != 1050 {
		t.Fatalf("expected odometer advanced to 1050, got %d", v.CurrentDistance)
	}

	hs, err := svc.ListHistory(ctx, r.ID)
	if err != nil {
		t.Fatalf("ListHistory: %v", err)
	}
	// created / approved / checked in / checked out
	if len(hs) != 4 || hs[len(hs)-1].ToStatus != StatusCompleted {
		t.Fatalf("unexpected history %+v", hs)
	}
}

func TestCheckInGuards(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// 未批准不可取车
	if _, err := svc.CheckIn(ctx, r.ID, testRequester, 1000, ""); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict checking in pending reservation, got %v", err)
	}

	if _, err := svc.Approve(ctx, r.ID, testApprover, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := svc.CheckIn(ctx, r.ID, testRequester, 0, ""); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for zero odometer, got %v", err)
	}
	// 读数低于车辆当前里程（900）直接报错，状态不变
	if _, err := svc.CheckIn(ctx, r.ID, testRequester, 800, ""); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for odometer rollback, got %v", err)
	}
	if store.reservation(r.ID).Status != StatusApproved {
		t.Fatalf("expected reservation unchanged after failed check-in")
	}
	if v := store.vehicle("veh-1"); v.Status != fleet.StatusReserved {
		t.Fatalf("expected vehicle unchanged after failed check-in, got %s", v.Status)
	}
	if _, err := svc.CheckIn(ctx, r.ID, Actor{ID: "intruder"}, 1000, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected forbidden for stranger check-in, got %v", err)
	}
}

func TestCheckOutGuards(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Approve(ctx, r.ID, testApprover, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if _, err := svc.CheckIn(ctx, r.ID, testRequester, 1000, ""); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	if _, err := svc.CheckOut(ctx, r.ID, testRequester, CheckOutInput{Distance: 1050, Rating: 6}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for out-of-range rating, got %v", err)
	}

	// 还车读数低于取车读数：报错且不留任何半截状态
	if _, err := svc.CheckOut(ctx, r.ID, testRequester, CheckOutInput{Distance: 950}); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for odometer rollback, got %v", err)
	}
	if store.reservation(r.ID).Status != StatusInProgress {
		t.Fatalf("expected reservation still in progress after failed check-out")
	}
	v := store.vehicle("veh-1")
	if v.Status != fleet.StatusInUse || v.CurrentDistance != 900 {
		t.Fatalf("expected vehicle unchanged after failed check-out, got %+v", v)
	}

	// 原地还车（零公里）是合法的
	got, err := svc.CheckOut(ctx, r.ID, testRequester, CheckOutInput{Distance: 1000})
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}
	if got.ActualCost != 10000 {
		t.Fatalf("expected actual cost 10000 for zero distance, got %d", got.ActualCost)
	}
}

type failNotifier struct{}

func (failNotifier) Publish(context.Context, notify.Event) error {
	return errors.New("amqp connection refused")
}

// 通知出口故障只影响通知本身，绝不影响已提交的状态变更。
func TestNotifierFailureDoesNotFailOperations(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := NewService(store, failNotifier{}, nil, nil, nil)
	svc.now = func() time.Time { return clock }

	r, err := svc.Create(ctx, testCreateInput(clock))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.Approve(ctx, r.ID, testApprover, ""); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if store.reservation(r.ID).Status != StatusApproved {
		t.Fatalf("expected reservation approved despite notifier failure")
	}
}

func TestIsAvailable(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	store := newMemStore()
	seedAvailableVehicle(store, "veh-1")
	svc := newTestService(store, &clock)

	in := testCreateInput(clock)
	if _, err := svc.Create(ctx, in); err != nil {
		t.Fatalf("Create: %v", err)
	}

	free, err := svc.IsAvailable(ctx, "veh-1", in.StartTime, in.EndTime)
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if free {
		t.Fatalf("expected window taken")
	}

	// 端点相接也算占用
	free, err = svc.IsAvailable(ctx, "veh-1", in.EndTime, in.EndTime.Add(time.Hour))
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if free {
		t.Fatalf("expected touching window taken")
	}

	free, err = svc.IsAvailable(ctx, "veh-1", in.EndTime.Add(time.Hour), in.EndTime.Add(2*time.Hour))
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if !free {
		t.Fatalf("expected disjoint window free")
	}

	if _, err := svc.IsAvailable(ctx, "veh-1", in.EndTime, in.StartTime); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected bad request for inverted window, got %v", err)
	}
}
