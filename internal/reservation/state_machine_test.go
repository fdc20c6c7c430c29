package reservation

import (
	"errors"
	"testing"
	"time"
)

func TestCanTransitionAndApply(t *testing.T) {
	if !CanTransition(StatusPending, StatusApproved) {
		t.Fatalf("expected pending -> approved allowed")
	}
	if !CanTransition(StatusDraft, StatusPending) {
		t.Fatalf("expected draft -> pending allowed")
	}
	if CanTransition(StatusCompleted, StatusPending) {
		t.Fatalf("expected completed -> pending not allowed")
	}
	if CanTransition(StatusInProgress, StatusCancelled) {
		t.Fatalf("expected in_progress -> cancelled not allowed")
	}
	if !CanTransition(StatusPending, StatusPending) {
		t.Fatalf("expected self transition allowed")
	}

	r := &Reservation{Status: StatusPending}
	now := time.Now()
	if err := ApplyTransition(r, StatusApproved, now); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if r.Status != StatusApproved {
		t.Fatalf("expected status approved, got %s", r.Status)
	}
	if r.ApprovedAt == nil || !r.ApprovedAt.Equal(now) {
		t.Fatalf("expected approved_at set to now, got %v", r.ApprovedAt)
	}

	if err := ApplyTransition(r, StatusCompleted, now); err == nil {
		t.Fatalf("expected invalid shortcut transition to fail")
	} else if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
}

func TestTerminalStatesAreFinal(t *testing.T) {
	terminals := []Status{StatusRejected, StatusCompleted, StatusCancelled}
	all := []Status{
		StatusDraft, StatusPending, StatusApproved, StatusRejected,
		StatusInProgress, StatusCompleted, StatusCancelled,
	}
	for _, from := range terminals {
		if !IsTerminal(from) {
			t.Fatalf("expected %s terminal", from)
		}
		for _, to := range all {
			if from == to {
				continue
			}
			if CanTransition(from, to) {
				t.Fatalf("expected %s -> %s not allowed", from, to)
			}
		}
	}
	if IsTerminal(StatusPending) {
		t.Fatalf("expected pending not terminal")
	}
}

func TestApplyTransitionSetsTimestampsOnce(t *testing.T) {
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(2 * time.Hour)

	r := &Reservation{Status: StatusApproved}
	if err := ApplyTransition(r, StatusInProgress, first); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if r.ActualStartTime == nil || !r.ActualStartTime.Equal(first) {
		t.Fatalf("expected actual_start_time %v, got %v", first, r.ActualStartTime)
	}

	if err := ApplyTransition(r, StatusCompleted, later); err != nil {
		t.Fatalf("ApplyTransition: %v", err)
	}
	if r.ActualEndTime == nil || !r.ActualEndTime.Equal(later) {
		t.Fatalf("expected actual_end_time %v, got %v", later, r.ActualEndTime)
	}
	// 已写入的时间戳不被重复覆盖
	if !r.ActualStartTime.Equal(first) {
		t.Fatalf("actual_start_time changed unexpectedly: %v", r.ActualStartTime)
	}
}
