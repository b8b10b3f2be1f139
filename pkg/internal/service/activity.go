package service

import (
	"context"
	"time"

	"github.com/ecotrackhq/ecotrack/pkg/internal/model"
	"github.com/ecotrackhq/ecotrack/pkg/internal/types"
)

// ActivityService 提供活动日志查询.
type ActivityService struct{ *WasteService }

// NewActivityService 构造活动日志服务.
func NewActivityService(c context.Context) *ActivityService {
	return &ActivityService{NewWasteService(c)}
}

// List 按条件分页列出活动日志，归属作用域在查询构造处应用一次.
func (s *ActivityService) List(ctx context.Context, caller types.Identity, q types.ListActivityQuery) (types.ListActivityResponse, error) {
	if q.Page <= 0 {
		q.Page = 1
	}

	if q.PageSize <= 0 {
		q.PageSize = activityPageSize
	}

	dbx := scoped(s.dbClient.GetDB().WithContext(ctx).Model(&model.ActivityLog{}), caller)

	if q.Action != "" {
		dbx = dbx.Where("action = ?", q.Action)
	}

	if q.From != "" {
		from, err := time.ParseInLocation(dateLayout, q.From, time.UTC)
		if err != nil {
			return types.ListActivityResponse{}, validationErr(err)
		}

		dbx = dbx.Where("created_at >= ?", from)
	}

	if q.To != "" {
		to, err := time.ParseInLocation(dateLayout, q.To, time.UTC)
		if err != nil {
			return types.ListActivityResponse{}, validationErr(err)
		}
		// to 为闭区间日期，查询截止到次日零点
		dbx = dbx.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := dbx.Count(&total).Error; err != nil {
		return types.ListActivityResponse{}, storeErr(err)
	}

	items := []model.ActivityLog{}
	if err := dbx.Order("created_at DESC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&items).Error; err != nil {
		return types.ListActivityResponse{}, storeErr(err)
	}

	return types.ListActivityResponse{Items: items, Total: total, Page: q.Page, PageSize: q.PageSize}, nil
}
