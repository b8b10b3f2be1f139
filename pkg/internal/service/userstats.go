package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ecotrackhq/ecotrack/pkg/internal/aggregate"
	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

const (
	userDailyDays    = 30
	userMonthlyCount = 12
	topLocationCount = 5
	latestRewards    = 10
)

// UserStatsService 生成单用户的综合统计报告.
type UserStatsService struct{ *WasteService }

// NewUserStatsService 构造用户统计服务.
func NewUserStatsService(c context.Context) *UserStatsService {
	return &UserStatsService{NewWasteService(c)}
}

// Report 生成综合统计报告：先拉取一次全量快照，再并发计算各统计面.
// 纯函数面在快照上并行执行，活动汇总与积分走独立查询；任一面失败则整份报告失败.
func (s *UserStatsService) Report(ctx context.Context, userID string) (types.UserStatsResponse, error) {
	snapshot, err := s.UserSnapshot(ctx, userID)
	if err != nil {
		return types.UserStatsResponse{}, err
	}

	now := time.Now().UTC()
	out := types.UserStatsResponse{UserID: userID, GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		out.Overall = aggregate.Overall(snapshot)
		return nil
	})

	g.Go(func() error {
		since := aggregate.DayStart(now.AddDate(0, 0, -(userDailyDays - 1)))
		out.Daily = aggregate.SortedBuckets(aggregate.GroupByDay(aggregate.FilterSince(snapshot, since)))

		return nil
	})

	g.Go(func() error {
		since := now.AddDate(0, -(userMonthlyCount - 1), 0)
		since = time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, time.UTC)
		out.Monthly = aggregate.SortedBuckets(aggregate.GroupByMonth(aggregate.FilterSince(snapshot, since)))

		return nil
	})

	g.Go(func() error {
		out.TypeDistribution = aggregate.TypeDistribution(snapshot)
		return nil
	})

	g.Go(func() error {
		out.TopLocations = aggregate.TopLocations(snapshot, topLocationCount)
		return nil
	})

	g.Go(func() error {
		activity, err := s.activitySummary(gctx, userID)
		if err != nil {
			return err
		}

		out.Activity = activity

		return nil
	})

	g.Go(func() error {
		rewards, err := s.latestRewards(gctx, userID)
		if err != nil {
			return err
		}

		out.Rewards = rewards

		return nil
	})

	if err := g.Wait(); err != nil {
		return types.UserStatsResponse{}, err
	}

	return out, nil
}

// activitySummary 按动作分组的活动汇总，次数降序.
func (s *UserStatsService) activitySummary(ctx context.Context, userID string) ([]types.ActivitySummary, error) {
	rows := []types.ActivitySummary{}

	if err := s.dbClient.GetDB().WithContext(ctx).
		Model(&model.ActivityLog{}).
		Select("action, COUNT(*) as count, MAX(created_at) as last_activity").
		Where("user_id = ?", userID).
		Group("action").
		Order("count DESC").
		Scan(&rows).Error; err != nil {
		return nil, storeErr(err)
	}

	return rows, nil
}

// latestRewards 最近的积分记录.
func (s *UserStatsService) latestRewards(ctx context.Context, userID string) ([]model.Reward, error) {
	rewards := []model.Reward{}

	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(latestRewards).
		Find(&rewards).Error; err != nil {
		return nil, storeErr(err)
	}

	return rewards, nil
}
