package reservation

import (
	"testing"
	"time"
)

func TestChargeableDays(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		dur  time.Duration
		want int64
	}{
		{"sub-day rounds up", 3 * time.Hour, 1},
		{"exactly one day", 24 * time.Hour, 1},
		{"one day plus a second", 24*time.Hour + time.Second, 2},
		{"exactly two days", 48 * time.Hour, 2},
		{"two days plus an hour", 49 * time.Hour, 3},
		{"zero duration", 0, 1},
	}
	for _, c := range cases {
		if got := ChargeableDays(base, base.Add(c.dur)); got != c.want {
			t.Fatalf("%s: ChargeableDays = %d, want %d", c.name, got, c.want)
		}
	}
}

func TestEstimateAndSettleCost(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	if got := EstimateCost(10000, start, end); got != 20000 {
		t.Fatalf("EstimateCost = %d, want 20000", got)
	}

	// 实际用车 26 小时，向上取整计 2 天；行驶 50 公里
	actualEnd := start.Add(26 * time.Hour)
	if got := SettleCost(10000, 50, start, actualEnd, 50); got != 10000*2+50*50 {
		t.Fatalf("SettleCost = %d, want %d", got, 10000*2+50*50)
	}

	// 未行驶里程只收日租金
	if got := SettleCost(10000, 50, start, start.Add(time.Hour), 0); got != 10000 {
		t.Fatalf("SettleCost = %d, want 10000", got)
	}
}
