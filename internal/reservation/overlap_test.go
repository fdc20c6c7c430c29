package reservation

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd time.Time
		want                       bool
	}{
		{"disjoint before", at(0), at(2), at(3), at(5), false},
		{"disjoint after", at(3), at(5), at(0), at(2), false},
		{"contained", at(1), at(2), at(0), at(5), true},
		{"containing", at(0), at(5), at(1), at(2), true},
		{"partial overlap", at(0), at(3), at(2), at(5), true},
		// 闭区间：端点相接也算冲突
		{"touching end to start", at(0), at(2), at(2), at(5), true},
		{"touching start to end", at(2), at(5), at(0), at(2), true},
		{"identical", at(0), at(2), at(0), at(2), true},
	}
	for _, c := range cases {
		if got := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd); got != c.want {
			t.Fatalf("%s: Overlaps = %v, want %v", c.name, got, c.want)
		}
	}
}
