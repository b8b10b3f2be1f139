package aggregate

import (
	"time"

	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// DayStart 将时间归一到 UTC 当天零点.
func DayStart(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// BuildSeries 基于按天分桶的汇总构建 [start, end] 的逐日趋势序列.
// 没有记录的天输出零值点，保证序列连续；重量保留一位小数.
func BuildSeries(byDay map[string]Summary, start, end time.Time) []types.TrendPoint {
	start = DayStart(start)
	end = DayStart(end)

	if end.Before(start) {
		return []types.TrendPoint{}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	out := make([]types.TrendPoint, 0, days)

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		s := byDay[key]

		out = append(out, types.TrendPoint{
			Date:          key,
			Recyclable:    Round1(s.Recyclable),
			NonRecyclable: Round1(s.NonRecyclable),
		})
	}

	return out
}
