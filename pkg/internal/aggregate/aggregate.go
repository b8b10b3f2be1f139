// Package aggregate 提供对采集记录快照的纯函数聚合.
//
// 所有函数都只读输入切片，不触达数据库：同一请求内的多个统计面
// 基于同一份快照计算，保证相互一致且便于并发执行.
package aggregate

import (
	"math"
	"sort"
	"time"

	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"
)

// Summary 一组记录的重量汇总.
type Summary struct {
	Count         int64
	Total         float64
	Recyclable    float64
	NonRecyclable float64
}

// Add 累加一条记录.
func (s *Summary) Add(r model.WasteRecord) {
	s.Count++
	s.Total += r.Weight

	switch r.Type {
	case model.WasteTypeRecyclable:
		s.Recyclable += r.Weight
	default:
		s.NonRecyclable += r.Weight
	}
}

// Round1 保留一位小数.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Summarize 汇总一组记录.
func Summarize(records []model.WasteRecord) Summary {
	var s Summary
	for _, r := range records {
		s.Add(r)
	}

	return s
}

// FilterWindow 返回 CreatedAt 落在 [start, end) 内的记录.
func FilterWindow(records []model.WasteRecord, start, end time.Time) []model.WasteRecord {
	out := make([]model.WasteRecord, 0, len(records))

	for _, r := range records {
		if !r.CreatedAt.Before(start) && r.CreatedAt.Before(end) {
			out = append(out, r)
		}
	}

	return out
}

// FilterSince 返回 CreatedAt 不早于 t 的记录.
func FilterSince(records []model.WasteRecord, t time.Time) []model.WasteRecord {
	out := make([]model.WasteRecord, 0, len(records))

	for _, r := range records {
		if !r.CreatedAt.Before(t) {
			out = append(out, r)
		}
	}

	return out
}

// GroupByDay 按 UTC 日期分桶.
func GroupByDay(records []model.WasteRecord) map[string]Summary {
	buckets := make(map[string]Summary)

	for _, r := range records {
		key := r.CreatedAt.UTC().Format(dayLayout)
		s := buckets[key]
		s.Add(r)
		buckets[key] = s
	}

	return buckets
}

// GroupByMonth 按 UTC 月份分桶.
func GroupByMonth(records []model.WasteRecord) map[string]Summary {
	buckets := make(map[string]Summary)

	for _, r := range records {
		key := r.CreatedAt.UTC().Format(monthLayout)
		s := buckets[key]
		s.Add(r)
		buckets[key] = s
	}

	return buckets
}

// SortedBuckets 将分桶结果转为按期间升序的切片，重量保留一位小数.
func SortedBuckets(buckets map[string]Summary) []types.BucketStat {
	out := make([]types.BucketStat, 0, len(buckets))

	for period, s := range buckets {
		out = append(out, types.BucketStat{
			Period:        period,
			Count:         s.Count,
			Total:         Round1(s.Total),
			Recyclable:    Round1(s.Recyclable),
			NonRecyclable: Round1(s.NonRecyclable),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })

	return out
}

// TypeDistribution 按类型的全量分布，按数量降序、类型名升序排列.
func TypeDistribution(records []model.WasteRecord) []types.TypeStat {
	counts := make(map[string]*types.TypeStat)

	for _, r := range records {
		st, ok := counts[r.Type]
		if !ok {
			st = &types.TypeStat{Type: r.Type}
			counts[r.Type] = st
		}

		st.Count++
		st.Weight += r.Weight
	}

	out := make([]types.TypeStat, 0, len(counts))
	for _, st := range counts {
		st.Weight = Round1(st.Weight)
		out = append(out, *st)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}

		return out[i].Type < out[j].Type
	})

	return out
}

// TopLocations 按记录数降序取前 n 个地点，数量相同时按首次出现顺序排列.
func TopLocations(records []model.WasteRecord, n int) []types.LocationStat {
	stats := make(map[string]*types.LocationStat)
	order := make([]string, 0)

	for _, r := range records {
		st, ok := stats[r.Location]
		if !ok {
			st = &types.LocationStat{Location: r.Location}
			stats[r.Location] = st
			order = append(order, r.Location)
		}

		st.Count++
		st.Weight += r.Weight
	}

	out := make([]types.LocationStat, 0, len(order))
	for _, loc := range order {
		st := stats[loc]
		st.Weight = Round1(st.Weight)
		out = append(out, *st)
	}

	// 稳定排序保持首次出现的先后作为并列时的次序
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if n > 0 && len(out) > n {
		out = out[:n]
	}

	return out
}

// Overall 全量汇总：次数、总重、平均重量与首末采集时间.
func Overall(records []model.WasteRecord) types.OverallStats {
	s := Summarize(records)

	out := types.OverallStats{
		TotalCollections: s.Count,
		TotalWeight:      Round1(s.Total),
	}

	if s.Count > 0 {
		out.AvgWeight = Round1(s.Total / float64(s.Count))

		first, last := records[0].CreatedAt, records[0].CreatedAt
		for _, r := range records[1:] {
			if r.CreatedAt.Before(first) {
				first = r.CreatedAt
			}

			if r.CreatedAt.After(last) {
				last = r.CreatedAt
			}
		}

		out.FirstCollection = &first
		out.LastCollection = &last
	}

	return out
}
