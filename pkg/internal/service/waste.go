package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	ctxPkg "github.com/ecotrackhq/ecotrack/pkg/context"
	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
	"github.com/ecotrackhq/ecotrack/pkg/log"
	"github.com/ecotrackhq/ecotrack/pkg/metrics"
	"github.com/ecotrackhq/ecotrack/pkg/queue"
	"github.com/ecotrackhq/ecotrack/pkg/rule"
)

const (
	wastePageSize    = 100
	activityPageSize = 50
	dateLayout       = "2006-01-02"
)

// Record 写入一条采集记录.
// 记录本身是权威数据；活动日志与事件发布为尽力而为，失败只记录与计数，
// 不回滚已写入的记录.
func (s *WasteService) Record(ctx context.Context, caller types.Identity, req types.RecordWasteRequest) (types.RecordWasteResponse, error) {
	if err := rule.ValidateStruct(req); err != nil {
		return types.RecordWasteResponse{}, validationErr(err)
	}

	rec := model.WasteRecord{
		ID:       uuid.NewString(),
		UserID:   caller.ID,
		Weight:   *req.Weight,
		Type:     req.Type,
		Location: req.Location,
		Notes:    req.Notes,
	}

	dbx := s.dbClient.GetDB().WithContext(ctx)
	if err := dbx.Create(&rec).Error; err != nil {
		return types.RecordWasteResponse{}, storeErr(err)
	}

	metrics.IngestCounter.WithLabelValues(rec.Type).Inc()

	s.writeActivityLog(ctx, rec)
	s.publishRecorded(ctx, rec)

	return types.RecordWasteResponse{ID: rec.ID, CreatedAt: rec.CreatedAt}, nil
}

// writeActivityLog 尽力而为写入审计日志，失败时可通过指标与巡检任务发现.
func (s *WasteService) writeActivityLog(ctx context.Context, rec model.WasteRecord) {
	entry := model.ActivityLog{
		ID:     uuid.NewString(),
		UserID: rec.UserID,
		Action: model.ActionWasteCollection,
	}

	details := model.CollectionDetails{
		WasteID:  rec.ID,
		Weight:   rec.Weight,
		Type:     rec.Type,
		Location: rec.Location,
	}

	logger := ctxPkg.WithTraceContext(ctx, *log.Logger())

	if err := entry.SetDetails(details); err != nil {
		metrics.AuditLogMissingCounter.Inc()
		logger.Error().Err(err).Str("waste_id", rec.ID).Msg("activity log details marshal failed")

		return
	}

	if err := s.dbClient.GetDB().WithContext(ctx).Create(&entry).Error; err != nil {
		metrics.AuditLogMissingCounter.Inc()
		logger.Error().Err(err).Str("waste_id", rec.ID).Msg("activity log write failed")
	}
}

// publishRecorded 尽力而为发布领域事件.
func (s *WasteService) publishRecorded(ctx context.Context, rec model.WasteRecord) {
	if s.mqClient == nil {
		return
	}

	payload := queue.WasteRecordedPayload{
		Record: queue.WasteRef{
			ID:       rec.ID,
			UserID:   rec.UserID,
			Type:     rec.Type,
			Weight:   rec.Weight,
			Location: rec.Location,
		},
		Source: "api",
	}

	if err := queue.PublishWasteRecorded(s.mqClient.Publisher(), payload, queue.WithProducer(Producer)); err != nil {
		logger := ctxPkg.WithTraceContext(ctx, *log.Logger())
		logger.Warn().Err(err).Str("waste_id", rec.ID).Msg("publish waste recorded event failed")
	}
}

// List 按条件分页列出采集记录，归属作用域在查询构造处应用一次.
func (s *WasteService) List(ctx context.Context, caller types.Identity, q types.ListWasteQuery) (types.ListWasteResponse, error) {
	if q.Page <= 0 {
		q.Page = 1
	}

	if q.PageSize <= 0 {
		q.PageSize = wastePageSize
	}

	dbx := scoped(s.dbClient.GetDB().WithContext(ctx).Model(&model.WasteRecord{}), caller)

	if q.Type != "" {
		dbx = dbx.Where("type = ?", q.Type)
	}

	if q.Location != "" {
		dbx = dbx.Where("location = ?", q.Location)
	}

	if q.From != "" {
		from, err := time.ParseInLocation(dateLayout, q.From, time.UTC)
		if err != nil {
			return types.ListWasteResponse{}, validationErr(err)
		}

		dbx = dbx.Where("created_at >= ?", from)
	}

	if q.To != "" {
		to, err := time.ParseInLocation(dateLayout, q.To, time.UTC)
		if err != nil {
			return types.ListWasteResponse{}, validationErr(err)
		}
		// to 为闭区间日期，查询截止到次日零点
		dbx = dbx.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return types.ListWasteResponse{}, storeErr(err)
	}

	items := []model.WasteRecord{}
	if err := dbx.Order("created_at DESC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&items).Error; err != nil {
		return types.ListWasteResponse{}, storeErr(err)
	}

	return types.ListWasteResponse{Items: items, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
}

// Snapshot 拉取一次记录快照供聚合使用：作用域在此处应用一次，
// 之后所有统计面都在这份快照上计算，保证相互一致.
// since 为零值时拉取全量.
func (s *WasteService) Snapshot(ctx context.Context, caller types.Identity, since time.Time) ([]model.WasteRecord, error) {
	dbx := scoped(s.dbClient.GetDB().WithContext(ctx).Model(&model.WasteRecord{}), caller)

	if !since.IsZero() {
		dbx = dbx.Where("created_at >= ?", since)
	}

	records := []model.WasteRecord{}
	if err := dbx.Find(&records).Error; err != nil {
		return nil, storeErr(err)
	}

	return records, nil
}

// UserSnapshot 拉取指定用户的全量记录快照，调用方负责权限判断.
func (s *WasteService) UserSnapshot(ctx context.Context, userID string) ([]model.WasteRecord, error) {
	records := []model.WasteRecord{}

	if err := s.dbClient.GetDB().WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, storeErr(err)
	}

	return records, nil
}
