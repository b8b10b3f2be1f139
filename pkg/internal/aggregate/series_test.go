package aggregate_test

import (
	"testing"
	"time"

	"github.com/ecotrackhq/ecotrack/pkg/internal/aggregate"
	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
)

// TestBuildSeriesGapFill 缺数据的天输出零值点，序列连续.
func TestBuildSeriesGapFill(t *testing.T) {
	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "a", 1.5, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)),
		rec("u1", model.WasteTypeNonRecyclable, "a", 2.0, time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)),
	}

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)

	series := aggregate.BuildSeries(aggregate.GroupByDay(records), start, end)

	if len(series) != 4 {
		t.Fatalf("series length = %d, want 4", len(series))
	}

	wantDates := []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04"}
	for i, want := range wantDates {
		if series[i].Date != want {
			t.Errorf("series[%d].Date = %s, want %s", i, series[i].Date, want)
		}
	}

	if series[0].Recyclable != 1.5 || series[0].NonRecyclable != 0 {
		t.Errorf("series[0] = %+v, want recyclable=1.5", series[0])
	}

	// 间隙天补零
	if series[1].Recyclable != 0 || series[1].NonRecyclable != 0 {
		t.Errorf("series[1] = %+v, want zero point", series[1])
	}

	if series[2].NonRecyclable != 2.0 {
		t.Errorf("series[2] = %+v, want nonRecyclable=2.0", series[2])
	}

	if series[3].Recyclable != 0 || series[3].NonRecyclable != 0 {
		t.Errorf("series[3] = %+v, want zero point", series[3])
	}
}

// TestBuildSeriesNoRecords 完全无数据时仍输出完整的零值序列.
func TestBuildSeriesNoRecords(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)

	series := aggregate.BuildSeries(map[string]aggregate.Summary{}, start, end)

	if len(series) != 7 {
		t.Fatalf("series length = %d, want 7", len(series))
	}

	for i, p := range series {
		if p.Recyclable != 0 || p.NonRecyclable != 0 {
			t.Errorf("series[%d] = %+v, want zero point", i, p)
		}
	}
}

// TestBuildSeriesSingleDay start 与 end 同一天时输出一个点.
func TestBuildSeriesSingleDay(t *testing.T) {
	day := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)

	series := aggregate.BuildSeries(map[string]aggregate.Summary{}, day, day)

	if len(series) != 1 {
		t.Fatalf("series length = %d, want 1", len(series))
	}

	if series[0].Date != "2025-06-01" {
		t.Errorf("Date = %s, want 2025-06-01", series[0].Date)
	}
}

// TestBuildSeriesInvertedRange end 早于 start 时返回空序列.
func TestBuildSeriesInvertedRange(t *testing.T) {
	start := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	series := aggregate.BuildSeries(map[string]aggregate.Summary{}, start, end)

	if len(series) != 0 {
		t.Errorf("series length = %d, want 0", len(series))
	}
}

// TestBuildSeriesRounding 每个点的重量保留一位小数.
func TestBuildSeriesRounding(t *testing.T) {
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	records := []model.WasteRecord{
		rec("u1", model.WasteTypeRecyclable, "a", 1.11, day),
		rec("u1", model.WasteTypeRecyclable, "a", 1.14, day),
	}

	series := aggregate.BuildSeries(aggregate.GroupByDay(records), day, day)

	if len(series) != 1 {
		t.Fatalf("series length = %d, want 1", len(series))
	}

	if series[0].Recyclable != 2.3 {
		t.Errorf("Recyclable = %v, want 2.3", series[0].Recyclable)
	}
}

// TestDayStart 归一到 UTC 零点.
func TestDayStart(t *testing.T) {
	in := time.Date(2025, 6, 1, 23, 45, 0, 0, time.FixedZone("UTC+3", 3*3600))
	got := aggregate.DayStart(in)
	want := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
}
