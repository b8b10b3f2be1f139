// Package jobs 负责注册与实现业务定时任务（基于 scheduler）。
package jobs

import (
	"context"
	"fmt"
	"time"

	ctxPkg "github.com/ecotrackhq/ecotrack/pkg/context"
	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
	"github.com/ecotrackhq/ecotrack/pkg/internal/storage"
	"github.com/ecotrackhq/ecotrack/pkg/log"
	"github.com/ecotrackhq/ecotrack/pkg/metrics"
	"github.com/ecotrackhq/ecotrack/pkg/queue"
	"github.com/ecotrackhq/ecotrack/pkg/scheduler"
)

// sweepWindow 巡检覆盖的时间窗口，略大于 24h 以覆盖任务自身的调度抖动.
const sweepWindow = 25 * time.Hour

// RegisterCronJobs 配置业务定时任务：
//   - 每天 02:30 执行审计一致性巡检（采集记录与活动日志核对）
//   - 每天 04:00 发布统计刷新事件，供下游报表订阅
func RegisterCronJobs(sched *scheduler.Scheduler, mgr *storage.Manager) error {
	if sched == nil {
		return fmt.Errorf("scheduler is nil")
	}

	if mgr == nil {
		return fmt.Errorf("storage manager is nil")
	}

	// 将 storage manager 注入到 context，便于任务内使用
	baseCtx := ctxPkg.WithStorageManager(context.Background(), mgr)

	if err := sched.AddCron(JobAuditSweep, CronAuditSweep, func(ctx context.Context) {
		runAuditSweep(ctx, mgr)
	}, baseCtx); err != nil {
		return err
	}

	if err := sched.AddCron(JobStatsRefresh, CronStatsRefresh, func(ctx context.Context) {
		runStatsRefresh(ctx, mgr)
	}, baseCtx); err != nil {
		return err
	}

	return nil
}

// runAuditSweep 巡检窗口内缺少活动日志的采集记录.
// 采集入库时活动日志是尽力而为写入的，巡检提供事后发现的通道：
// 记录日志、累加指标，并发布告警事件.
func runAuditSweep(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobAuditSweep).Logger()

	dbc := mgr.GetDBClient()
	if dbc == nil || dbc.GetDB() == nil {
		l.Error().Msg("db not initialized")
		return
	}

	dbx := dbc.GetDB().WithContext(ctx)
	since := time.Now().UTC().Add(-sweepWindow)

	records := []model.WasteRecord{}
	if err := dbx.Where("created_at >= ?", since).Find(&records).Error; err != nil {
		l.Error().Err(err).Msg("load waste records failed")
		return
	}

	missing := make([]queue.WasteRef, 0)

	for _, rec := range records {
		var cnt int64

		err := dbx.Model(&model.ActivityLog{}).
			Where("user_id = ? AND action = ? AND details_json LIKE ?",
				rec.UserID, model.ActionWasteCollection, "%"+rec.ID+"%").
			Count(&cnt).Error
		if err != nil {
			l.Error().Err(err).Str("waste_id", rec.ID).Msg("check activity log failed")
			continue
		}

		if cnt == 0 {
			missing = append(missing, queue.WasteRef{
				ID:       rec.ID,
				UserID:   rec.UserID,
				Type:     rec.Type,
				Weight:   rec.Weight,
				Location: rec.Location,
			})
		}
	}

	if len(missing) == 0 {
		l.Info().Int("checked", len(records)).Msg("audit sweep clean")
		return
	}

	metrics.AuditLogMissingCounter.Add(float64(len(missing)))
	l.Warn().Int("checked", len(records)).Int("missing", len(missing)).Msg("audit sweep found gaps")

	if mqc := mgr.GetMQClient(); mqc != nil {
		payload := queue.AuditMissingPayload{Records: missing, CheckedAt: time.Now().UTC()}
		if err := queue.PublishAuditMissing(mqc.Publisher(), payload, queue.WithProducer("ecotrack")); err != nil {
			l.Error().Err(err).Msg("publish audit missing event failed")
		}
	}
}

// runStatsRefresh 发布统计刷新事件，负载为近 30 天的记录数.
func runStatsRefresh(ctx context.Context, mgr *storage.Manager) {
	l := log.Logger().With().Str("job", JobStatsRefresh).Logger()

	dbc := mgr.GetDBClient()
	if dbc == nil || dbc.GetDB() == nil {
		l.Error().Msg("db not initialized")
		return
	}

	since := time.Now().UTC().AddDate(0, 0, -30)

	var cnt int64
	if err := dbc.GetDB().WithContext(ctx).
		Model(&model.WasteRecord{}).
		Where("created_at >= ?", since).
		Count(&cnt).Error; err != nil {
		l.Error().Err(err).Msg("count records failed")
		return
	}

	mqc := mgr.GetMQClient()
	if mqc == nil {
		l.Info().Int64("records", cnt).Msg("mq not initialized, skip publish")
		return
	}

	payload := queue.StatsRefreshedPayload{Window: "30d", Records: cnt}

	msg, err := queue.NewWatermillMessage(queue.TopicStatsRefreshed, payload, queue.WithProducer("ecotrack"))
	if err == nil {
		err = mqc.Publish(ctx, queue.TopicStatsRefreshed, msg)
	}

	if err != nil {
		l.Error().Err(err).Msg("publish stats refreshed event failed")
		return
	}

	l.Info().Int64("records", cnt).Msg("stats refreshed event published")
}
