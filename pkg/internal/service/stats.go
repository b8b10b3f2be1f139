package service

import (
	"context"
	"time"

	"github.com/ecotrackhq/ecotrack/pkg/configs"
	"github.com/ecotrackhq/ecotrack/pkg/internal/aggregate"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// StatsService 提供对比统计与趋势序列，均基于一次快照的纯函数聚合.
type StatsService struct{ *WasteService }

// NewStatsService 构造统计服务.
func NewStatsService(c context.Context) *StatsService { return &StatsService{NewWasteService(c)} }

// Comparative 计算当前窗口与上一窗口的对比统计.
// 窗口由配置策略决定：当前 [now-offset, now)，上一 [now-offset-span, now-offset).
func (s *StatsService) Comparative(ctx context.Context, caller types.Identity) (types.StatsResponse, error) {
	cfg := configs.GetConfig().Stats
	now := time.Now().UTC()

	curStart := now.AddDate(0, 0, -cfg.CompareOffsetDays)
	prevStart := curStart.AddDate(0, 0, -cfg.CompareSpanDays)

	// 一次快照覆盖两个窗口
	snapshot, err := s.Snapshot(ctx, caller, prevStart)
	if err != nil {
		return types.StatsResponse{}, err
	}

	cur := aggregate.Summarize(aggregate.FilterWindow(snapshot, curStart, now))
	prev := aggregate.Summarize(aggregate.FilterWindow(snapshot, prevStart, curStart))

	return types.StatsResponse{
		Stats:       aggregate.Compare(cur, prev),
		GeneratedAt: now,
	}, nil
}

// Trends 构建最近 days 天的逐日趋势序列，缺数据的天补零.
// days 非法时回落到默认值，超出上限时收敛到上限.
func (s *StatsService) Trends(ctx context.Context, caller types.Identity, days int) (types.TrendsResponse, error) {
	cfg := configs.GetConfig().Stats

	if days <= 0 {
		days = cfg.TrendDays
	}

	if days > cfg.MaxTrendDays {
		days = cfg.MaxTrendDays
	}

	now := time.Now().UTC()
	start := aggregate.DayStart(now.AddDate(0, 0, -(days - 1)))

	snapshot, err := s.Snapshot(ctx, caller, start)
	if err != nil {
		return types.TrendsResponse{}, err
	}

	series := aggregate.BuildSeries(aggregate.GroupByDay(snapshot), start, now)

	return types.TrendsResponse{Days: days, Series: series}, nil
}
