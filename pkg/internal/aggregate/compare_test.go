package aggregate_test

import (
	"testing"

	"github.com/ecotrackhq/ecotrack/pkg/internal/aggregate"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// TestPercentChange 整数百分比变化，上一窗口为 0 时恒为 0.
func TestPercentChange(t *testing.T) {
	cases := []struct {
		cur, prev float64
		want      int
	}{
		{150, 100, 50},
		{50, 100, -50},
		{100, 100, 0},
		{10, 0, 0},  // 除零保护
		{0, 0, 0},   // 双零
		{0, 100, -100},
		{104.9, 100, 5}, // 四舍五入
	}

	for _, c := range cases {
		if got := aggregate.PercentChange(c.cur, c.prev); got != c.want {
			t.Errorf("PercentChange(%v, %v) = %d, want %d", c.cur, c.prev, got, c.want)
		}
	}
}

// TestRecyclingRate 回收率为整数百分比，总重为 0 时为 0.
func TestRecyclingRate(t *testing.T) {
	cases := []struct {
		recyclable, total float64
		want              int
	}{
		{3, 4, 75},
		{1, 3, 33},
		{2, 3, 67},
		{0, 5, 0},
		{0, 0, 0}, // 除零保护
		{5, 5, 100},
	}

	for _, c := range cases {
		if got := aggregate.RecyclingRate(c.recyclable, c.total); got != c.want {
			t.Errorf("RecyclingRate(%v, %v) = %d, want %d", c.recyclable, c.total, got, c.want)
		}
	}
}

// TestCompare 四项对比统计的结构与取值.
func TestCompare(t *testing.T) {
	cur := aggregate.Summary{Count: 3, Total: 10.0, Recyclable: 7.5, NonRecyclable: 2.5}
	prev := aggregate.Summary{Count: 2, Total: 8.0, Recyclable: 4.0, NonRecyclable: 4.0}

	stats := aggregate.Compare(cur, prev)

	if len(stats) != 4 {
		t.Fatalf("len = %d, want 4", len(stats))
	}

	byName := make(map[string]types.ComparativeStat, len(stats))
	for _, s := range stats {
		byName[s.Name] = s
	}

	total := byName[aggregate.StatTotalWaste]
	if total.Value != 10.0 || total.Change != 25 || total.ChangeType != types.ChangeIncrease {
		t.Errorf("total = %+v, want value=10.0 change=25 increase", total)
	}

	recyclable := byName[aggregate.StatRecyclable]
	if recyclable.Value != 7.5 || recyclable.Change != 88 || recyclable.ChangeType != types.ChangeIncrease {
		t.Errorf("recyclable = %+v, want value=7.5 change=88 increase", recyclable)
	}

	nonRecyclable := byName[aggregate.StatNonRecyclable]
	if nonRecyclable.Change != -38 || nonRecyclable.ChangeType != types.ChangeDecrease {
		t.Errorf("nonRecyclable = %+v, want change=-38 decrease", nonRecyclable)
	}

	rate := byName[aggregate.StatRecyclingRate]
	// 当前 75%，上一窗口 50%
	if rate.Value != 75 || rate.Change != 50 || rate.ChangeType != types.ChangeIncrease {
		t.Errorf("rate = %+v, want value=75 change=50 increase", rate)
	}
}

// TestCompareEmptyPrevious 上一窗口无数据时变化恒为 0 且方向为上升.
func TestCompareEmptyPrevious(t *testing.T) {
	cur := aggregate.Summary{Count: 1, Total: 5.0, Recyclable: 5.0}

	stats := aggregate.Compare(cur, aggregate.Summary{})

	for _, s := range stats {
		if s.Change != 0 {
			t.Errorf("%s change = %d, want 0 when previous window empty", s.Name, s.Change)
		}

		if s.ChangeType != types.ChangeIncrease {
			t.Errorf("%s changeType = %s, want increase", s.Name, s.ChangeType)
		}
	}
}

// TestCompareBothEmpty 双窗口为空时输出全零统计.
func TestCompareBothEmpty(t *testing.T) {
	stats := aggregate.Compare(aggregate.Summary{}, aggregate.Summary{})

	for _, s := range stats {
		if s.Value != 0 || s.Change != 0 {
			t.Errorf("%s = %+v, want zero values", s.Name, s)
		}
	}
}
