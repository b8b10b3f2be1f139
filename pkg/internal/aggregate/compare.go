package aggregate

import (
	"math"

	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// 对比统计项名称.
const (
	StatTotalWaste    = "Total Waste"
	StatRecyclable    = "Recyclable"
	StatNonRecyclable = "Non-Recyclable"
	StatRecyclingRate = "Recycling Rate"
)

// PercentChange 计算相对上一窗口的整数百分比变化.
// 上一窗口为 0 时返回 0，避免除零与无穷增长的误导.
func PercentChange(cur, prev float64) int {
	if prev == 0 {
		return 0
	}

	return int(math.Round((cur - prev) / prev * 100))
}

// RecyclingRate 回收率（整数百分比），总重为 0 时返回 0.
func RecyclingRate(recyclable, total float64) int {
	if total == 0 {
		return 0
	}

	return int(math.Round(recyclable / total * 100))
}

// changeType 当前值不小于上一窗口值时视为上升.
func changeType(cur, prev float64) string {
	if cur >= prev {
		return types.ChangeIncrease
	}

	return types.ChangeDecrease
}

// Compare 由当前窗口与上一窗口的汇总生成四项对比统计.
func Compare(cur, prev Summary) []types.ComparativeStat {
	curRate := RecyclingRate(cur.Recyclable, cur.Total)
	prevRate := RecyclingRate(prev.Recyclable, prev.Total)

	return []types.ComparativeStat{
		{
			Name:       StatTotalWaste,
			Value:      Round1(cur.Total),
			Unit:       "kg",
			Change:     PercentChange(cur.Total, prev.Total),
			ChangeType: changeType(cur.Total, prev.Total),
		},
		{
			Name:       StatRecyclable,
			Value:      Round1(cur.Recyclable),
			Unit:       "kg",
			Change:     PercentChange(cur.Recyclable, prev.Recyclable),
			ChangeType: changeType(cur.Recyclable, prev.Recyclable),
		},
		{
			Name:       StatNonRecyclable,
			Value:      Round1(cur.NonRecyclable),
			Unit:       "kg",
			Change:     PercentChange(cur.NonRecyclable, prev.NonRecyclable),
			ChangeType: changeType(cur.NonRecyclable, prev.NonRecyclable),
		},
		{
			Name:       StatRecyclingRate,
			Value:      float64(curRate),
			Unit:       "%",
			Change:     PercentChange(float64(curRate), float64(prevRate)),
			ChangeType: changeType(float64(curRate), float64(prevRate)),
		},
	}
}
