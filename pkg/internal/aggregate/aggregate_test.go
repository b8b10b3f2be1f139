package aggregate_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/ecotrackhq/ecotrack/pkg/internal/aggregate"
	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
)

func rec(userID, typ, location string, weight float64, createdAt time.Time) model.WasteRecord {
	return model.WasteRecord{
		UserID:    userID,
		Type:      typ,
		Location:  location,
		Weight:    weight,
		CreatedAt: createdAt,
	}
}

var baseDay = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

// TestSummarize 测试按类型的重量汇总.
func TestSummarize(t *testing.T) {
	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "a", 2.5, baseDay),
		rec("u1", model.WasteTypeNonRecyclable, "a", 1.0, baseDay),
		rec("u2", model.WasteTypeRecyclable, "b", 0.5, baseDay),
	}

	s := aggregate.Summarize(records)

	if s.Count != 3 {
		t.Errorf("Count = %d, want 3", s.Count)
	}

	if s.Total != 4.0 {
		t.Errorf("Total = %v, want 4.0", s.Total)
	}

	if s.Recyclable != 3.0 {
		t.Errorf("Recyclable = %v, want 3.0", s.Recyclable)
	}

	if s.NonRecyclable != 1.0 {
		t.Errorf("NonRecyclable = %v, want 1.0", s.NonRecyclable)
	}
}

// TestSummarizeEmpty 空输入返回零值汇总.
func TestSummarizeEmpty(t *testing.T) {
	s := aggregate.Summarize(nil)
	if s.Count != 0 || s.Total != 0 {
		t.Errorf("empty summary = %+v, want zero", s)
	}
}

// TestFilterWindow 窗口为左闭右开区间.
func TestFilterWindow(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "a", 1, start.Add(-time.Second)), // 之前
		rec("u1", model.WasteTypeRecyclable, "a", 1, start),                   // 左闭
		rec("u1", model.WasteTypeRecyclable, "a", 1, end.Add(-time.Second)),   // 区间内
		rec("u1", model.WasteTypeRecyclable, "a", 1, end),                     // 右开
	}

	got := aggregate.FilterWindow(records, start, end)
	if len(got) != 2 {
		t.Errorf("FilterWindow returned %d records, want 2", len(got))
	}
}

// TestGroupByDay 按 UTC 日期分桶.
func TestGroupByDay(t *testing.T) {
	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "a", 1.0, time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)),
		rec("u1", model.WasteTypeRecyclable, "a", 2.0, time.Date(2025, 6, 11, 0, 1, 0, 0, time.UTC)),
		// 非 UTC 时区应折算到 UTC 日期
		rec("u1", model.WasteTypeNonRecyclable, "a", 3.0, time.Date(2025, 6, 11, 1, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))),
	}

	buckets := aggregate.GroupByDay(records)

	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}

	if s := buckets["2025-06-10"]; s.Total != 4.0 {
		t.Errorf("2025-06-10 total = %v, want 4.0 (UTC fold)", s.Total)
	}

	if s := buckets["2025-06-11"]; s.Total != 2.0 {
		t.Errorf("2025-06-11 total = %v, want 2.0", s.Total)
	}
}

// TestSortedBuckets 输出按期间升序且重量保留一位小数.
func TestSortedBuckets(t *testing.T) {
	buckets := map[string]aggregate.Summary{
		"2025-06-11": {Count: 1, Total: 2.0, Recyclable: 2.0},
		"2025-06-10": {Count: 2, Total: 1.26, Recyclable: 1.26},
	}

	out := aggregate.SortedBuckets(buckets)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}

	if out[0].Period != "2025-06-10" || out[1].Period != "2025-06-11" {
		t.Errorf("periods not ascending: %v, %v", out[0].Period, out[1].Period)
	}

	if out[0].Total != 1.3 {
		t.Errorf("Total = %v, want 1.3 (one decimal)", out[0].Total)
	}
}

// TestTypeDistribution 全量类型分布.
func TestTypeDistribution(t *testing.T) {
	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "a", 1.0, baseDay),
		rec("u1", model.WasteTypeRecyclable, "a", 2.0, baseDay),
		rec("u1", model.WasteTypeNonRecyclable, "a", 5.0, baseDay),
	}

	out := aggregate.TypeDistribution(records)

	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}

	// recyclable 数量多，排在前面
	if out[0].Type != model.WasteTypeRecyclable || out[0].Count != 2 || out[0].Weight != 3.0 {
		t.Errorf("first = %+v, want recyclable count=2 weight=3.0", out[0])
	}
}

// TestTopLocations Top 榜按数量降序，并列时保持首次出现顺序.
func TestTopLocations(t *testing.T) {
	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "park", 1, baseDay),
		rec("u1", model.WasteTypeRecyclable, "beach", 1, baseDay),
		rec("u1", model.WasteTypeRecyclable, "beach", 1, baseDay),
		rec("u1", model.WasteTypeRecyclable, "mall", 1, baseDay),
		rec("u1", model.WasteTypeRecyclable, "pier", 1, baseDay),
		rec("u1", model.WasteTypeRecyclable, "dock", 1, baseDay),
		rec("u1", model.WasteTypeRecyclable, "yard", 1, baseDay),
	}

	out := aggregate.TopLocations(records, 5)

	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}

	if out[0].Location != "beach" || out[0].Count != 2 {
		t.Errorf("top = %+v, want beach count=2", out[0])
	}

	// 其余并列 1 次，按首次出现顺序：park, mall, pier, dock
	wantOrder := []string{"park", "mall", "pier", "dock"}
	for i, want := range wantOrder {
		if out[i+1].Location != want {
			t.Errorf("out[%d] = %s, want %s (stable tie order)", i+1, out[i+1].Location, want)
		}
	}
}

// TestOverall 全量汇总含首末采集时间.
func TestOverall(t *testing.T) {
	first := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	last := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "a", 2.0, last),
		rec("u1", model.WasteTypeRecyclable, "a", 1.0, first),
		rec("u1", model.WasteTypeNonRecyclable, "a", 3.05, time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)),
	}

	out := aggregate.Overall(records)

	if out.TotalCollections != 3 {
		t.Errorf("TotalCollections = %d, want 3", out.TotalCollections)
	}

	if out.TotalWeight != 6.1 {
		t.Errorf("TotalWeight = %v, want 6.1 (one decimal)", out.TotalWeight)
	}

	if out.AvgWeight != 2.0 {
		t.Errorf("AvgWeight = %v, want 2.0", out.AvgWeight)
	}

	if out.FirstCollection == nil || !out.FirstCollection.Equal(first) {
		t.Errorf("FirstCollection = %v, want %v", out.FirstCollection, first)
	}

	if out.LastCollection == nil || !out.LastCollection.Equal(last) {
		t.Errorf("LastCollection = %v, want %v", out.LastCollection, last)
	}
}

// TestOverallEmpty 空输入不产生首末时间.
func TestOverallEmpty(t *testing.T) {
	out := aggregate.Overall(nil)

	if out.TotalCollections != 0 || out.AvgWeight != 0 {
		t.Errorf("empty overall = %+v, want zero", out)
	}

	if out.FirstCollection != nil || out.LastCollection != nil {
		t.Error("empty overall should not carry first/last timestamps")
	}
}

// TestTypeDistributionWeightSum 类型分布的重量之和等于全量总重.
func TestTypeDistributionWeightSum(t *testing.T) {
	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "a", 1.2, baseDay),
		rec("u2", model.WasteTypeNonRecyclable, "b", 3.4, baseDay),
		rec("u1", model.WasteTypeRecyclable, "a", 0.4, baseDay),
		rec("u2", model.WasteTypeNonRecyclable, "b", 2.0, baseDay),
	}

	var sum float64
	for _, st := range aggregate.TypeDistribution(records) {
		sum += st.Weight
	}

	total := aggregate.Overall(records).TotalWeight
	if aggregate.Round1(sum) != total {
		t.Errorf("type distribution weight sum = %v, overall total = %v", sum, total)
	}
}

// TestAggregateIdempotent 同一快照重复聚合得到完全相同的结果.
func TestAggregateIdempotent(t *testing.T) {
	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "park", 1.5, baseDay),
		rec("u2", model.WasteTypeNonRecyclable, "pier", 2.5, baseDay.AddDate(0, 0, 1)),
		rec("u1", model.WasteTypeRecyclable, "pier", 0.5, baseDay.AddDate(0, 0, 2)),
	}

	if a, b := aggregate.Overall(records), aggregate.Overall(records); !reflect.DeepEqual(a, b) {
		t.Errorf("Overall not idempotent: %+v vs %+v", a, b)
	}

	if a, b := aggregate.TypeDistribution(records), aggregate.TypeDistribution(records); !reflect.DeepEqual(a, b) {
		t.Errorf("TypeDistribution not idempotent: %+v vs %+v", a, b)
	}

	if a, b := aggregate.TopLocations(records, 5), aggregate.TopLocations(records, 5); !reflect.DeepEqual(a, b) {
		t.Errorf("TopLocations not idempotent: %+v vs %+v", a, b)
	}

	a := aggregate.SortedBuckets(aggregate.GroupByDay(records))
	b := aggregate.SortedBuckets(aggregate.GroupByDay(records))

	if !reflect.DeepEqual(a, b) {
		t.Errorf("daily buckets not idempotent: %+v vs %+v", a, b)
	}
}

// TestRound1 重量保留一位小数.
func TestRound1(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.24, 1.2},
		{1.25, 1.3},
		{0, 0},
		{-1.25, -1.3},
	}

	for _, c := range cases {
		if got := aggregate.Round1(c.in); got != c.want {
			t.Errorf("Round1(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
